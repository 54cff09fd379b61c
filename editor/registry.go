package editor

import (
	"fmt"
	"sort"
	"strings"
)

// Registry holds the tool classes an editor can instantiate, keyed by name.
type Registry struct {
	classes map[string]ToolClass
}

// NewRegistry creates a registry and registers the given classes.
// It panics on invalid or duplicate names; use Register to handle errors.
func NewRegistry(classes ...ToolClass) *Registry {
	r := &Registry{classes: make(map[string]ToolClass, len(classes))}
	for _, class := range classes {
		if err := r.Register(class); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a tool class.
func (r *Registry) Register(class ToolClass) error {
	if class == nil {
		return fmt.Errorf("register tool: nil class")
	}
	name := class.Name()
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("register tool: empty name")
	}
	if _, exists := r.classes[name]; exists {
		return fmt.Errorf("register tool: %q already registered", name)
	}
	r.classes[name] = class
	return nil
}

// Lookup returns the class registered under name.
func (r *Registry) Lookup(name string) (ToolClass, bool) {
	class, ok := r.classes[name]
	return class, ok
}

// Names returns registered tool names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
