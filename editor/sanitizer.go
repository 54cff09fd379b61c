package editor

import (
	"fmt"
	"sort"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans saved block fields according to each tool's sanitize rules.
type Sanitizer struct {
	fallback *bluemonday.Policy

	mu       sync.Mutex
	policies map[string]*bluemonday.Policy
}

// NewSanitizer creates a sanitizer whose fallback policy applies to fields a
// tool does not declare.
func NewSanitizer(policy SanitizePolicy) (*Sanitizer, error) {
	s := &Sanitizer{policies: make(map[string]*bluemonday.Policy)}

	switch policy {
	case SanitizeUGC:
		s.fallback = bluemonday.UGCPolicy()
	case SanitizeStrict:
		s.fallback = bluemonday.StrictPolicy()
	case SanitizeNone:
	default:
		return nil, fmt.Errorf("invalid sanitize policy %q", policy)
	}

	return s, nil
}

// Clean returns a copy of data with every string field sanitized. Fields
// declared with an empty rule set pass through untouched. The names of fields
// whose value changed are returned in sorted order.
func (s *Sanitizer) Clean(tool string, rules SanitizeConfig, data map[string]any) (map[string]any, []string) {
	if data == nil {
		return nil, nil
	}

	cleaned := make(map[string]any, len(data))
	var changed []string
	for field, value := range data {
		str, ok := value.(string)
		if !ok {
			cleaned[field] = value
			continue
		}

		policy := s.policyFor(tool, field, rules)
		if policy == nil {
			cleaned[field] = str
			continue
		}

		out := policy.Sanitize(str)
		if out != str {
			changed = append(changed, field)
		}
		cleaned[field] = out
	}

	sort.Strings(changed)
	return cleaned, changed
}

func (s *Sanitizer) policyFor(tool, field string, rules SanitizeConfig) *bluemonday.Policy {
	fieldRules, declared := rules[field]
	if !declared {
		return s.fallback
	}
	if len(fieldRules) == 0 {
		return nil
	}

	key := tool + "." + field
	s.mu.Lock()
	defer s.mu.Unlock()

	if policy, ok := s.policies[key]; ok {
		return policy
	}
	policy := buildPolicy(fieldRules)
	s.policies[key] = policy
	return policy
}

func buildPolicy(rules SanitizeRules) *bluemonday.Policy {
	policy := bluemonday.NewPolicy()
	for tag, rule := range rules {
		switch value := rule.(type) {
		case bool:
			if value {
				policy.AllowElements(tag)
			}
		case []string:
			policy.AllowElements(tag)
			if len(value) > 0 {
				policy.AllowAttrs(value...).OnElements(tag)
			}
		case []any:
			policy.AllowElements(tag)
			if attrs := stringValues(value); len(attrs) > 0 {
				policy.AllowAttrs(attrs...).OnElements(tag)
			}
		case map[string]any:
			policy.AllowElements(tag)
			var attrs []string
			for attr, allowed := range value {
				if b, ok := allowed.(bool); ok && b {
					attrs = append(attrs, attr)
				}
			}
			if len(attrs) > 0 {
				sort.Strings(attrs)
				policy.AllowAttrs(attrs...).OnElements(tag)
			}
		}
	}
	return policy
}

func stringValues(values []any) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if str, ok := value.(string); ok && str != "" {
			out = append(out, str)
		}
	}
	return out
}
