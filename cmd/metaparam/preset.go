package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rgonek/editorjs-metaparam/editor"
	"gopkg.in/yaml.v3"
)

const (
	presetBalanced = "balanced"
	presetStrict   = "strict"
	presetTrusted  = "trusted"
	presetLossy    = "lossy"
)

func presetConfig(preset string) (editor.Config, error) {
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetBalanced:
		return editor.Config{}, nil
	case presetStrict:
		return editor.Config{
			UnknownTools: editor.UnknownError,
			Sanitize:     editor.SanitizeStrict,
		}, nil
	case presetTrusted:
		return editor.Config{
			UnknownTools: editor.UnknownPreserve,
			Sanitize:     editor.SanitizeNone,
		}, nil
	case presetLossy:
		return editor.Config{
			UnknownTools: editor.UnknownSkip,
			Sanitize:     editor.SanitizeStrict,
		}, nil
	default:
		return editor.Config{}, fmt.Errorf("unknown preset %q (allowed: balanced, strict, trusted, lossy)", preset)
	}
}

func loadConfigFile(path string) (editor.Config, error) {
	if path == "" {
		return editor.Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return editor.Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg editor.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return editor.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveConfig layers the config file over the preset. The strict flag
// always wins for unknown tool handling.
func resolveConfig(preset string, file editor.Config, strict bool) (editor.Config, error) {
	cfg, err := presetConfig(preset)
	if err != nil {
		return editor.Config{}, err
	}

	if file.Styles.Block != "" {
		cfg.Styles.Block = file.Styles.Block
	}
	if file.Styles.Input != "" {
		cfg.Styles.Input = file.Styles.Input
	}
	if file.UnknownTools != "" {
		cfg.UnknownTools = file.UnknownTools
	}
	if file.Sanitize != "" {
		cfg.Sanitize = file.Sanitize
	}
	if file.Version != "" {
		cfg.Version = file.Version
	}
	if len(file.Tools) > 0 {
		cfg.Tools = file.Tools
	}

	if strict {
		cfg.UnknownTools = editor.UnknownError
	}

	return cfg, nil
}
