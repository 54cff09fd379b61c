package editor

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultBlockStyle = "cdx-block"
	DefaultInputStyle = "cdx-input"
	DefaultVersion    = "2.28.2"
)

// UnknownPolicy controls what happens to saved blocks whose type has no registered tool.
type UnknownPolicy string

const (
	UnknownError    UnknownPolicy = "error"
	UnknownSkip     UnknownPolicy = "skip"
	UnknownPreserve UnknownPolicy = "preserve"
)

// SanitizePolicy is the fallback applied to fields a tool does not declare.
type SanitizePolicy string

const (
	SanitizeUGC    SanitizePolicy = "ugc"
	SanitizeStrict SanitizePolicy = "strict"
	SanitizeNone   SanitizePolicy = "none"
)

// ToolSettings holds per-tool configuration handed to every instance.
type ToolSettings struct {
	Config map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
}

// Config holds all editor configuration options.
type Config struct {
	Styles       Styles                  `json:"styles,omitempty" yaml:"styles,omitempty"`
	UnknownTools UnknownPolicy           `json:"unknownTools,omitempty" yaml:"unknownTools,omitempty"`
	Sanitize     SanitizePolicy          `json:"sanitize,omitempty" yaml:"sanitize,omitempty"`
	Tools        map[string]ToolSettings `json:"tools,omitempty" yaml:"tools,omitempty"`
	Version      string                  `json:"version,omitempty" yaml:"version,omitempty"`
	Logger       *logrus.Logger          `json:"-" yaml:"-"`
	Now          func() time.Time        `json:"-" yaml:"-"`
}

func (c Config) applyDefaults() Config {
	if c.Styles.Block == "" {
		c.Styles.Block = DefaultBlockStyle
	}
	if c.Styles.Input == "" {
		c.Styles.Input = DefaultInputStyle
	}
	if c.UnknownTools == "" {
		c.UnknownTools = UnknownPreserve
	}
	if c.Sanitize == "" {
		c.Sanitize = SanitizeUGC
	}
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.Logger == nil {
		c.Logger = discardLogger()
	}
	if c.Now == nil {
		c.Now = time.Now
	}

	return c
}

// clone returns a deep copy of Config for map-backed fields.
func (c Config) clone() Config {
	cloned := c
	if c.Tools != nil {
		cloned.Tools = make(map[string]ToolSettings, len(c.Tools))
		for name, settings := range c.Tools {
			cloned.Tools[name] = ToolSettings{Config: cloneMap(settings.Config)}
		}
	}
	return cloned
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if strings.ContainsAny(c.Styles.Block, " \t\n") || strings.ContainsAny(c.Styles.Input, " \t\n") {
		return fmt.Errorf("styles must be single class names, got block=%q input=%q", c.Styles.Block, c.Styles.Input)
	}
	if c.UnknownTools != UnknownError && c.UnknownTools != UnknownSkip && c.UnknownTools != UnknownPreserve {
		return fmt.Errorf("invalid unknownTools policy %q", c.UnknownTools)
	}
	if c.Sanitize != SanitizeUGC && c.Sanitize != SanitizeStrict && c.Sanitize != SanitizeNone {
		return fmt.Errorf("invalid sanitize policy %q", c.Sanitize)
	}
	for name := range c.Tools {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("tools contains empty key")
		}
	}

	return nil
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func cloneMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}

	dst := make(map[string]any, len(src))
	for key, value := range src {
		dst[key] = value
	}

	return dst
}
