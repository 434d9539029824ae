// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package outpaint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// OptionsConfig is the loosely-typed form of Options found in host preset
// files. Convert it with Options, which validates every field.
//
//	direction = "left"
//	mode = "outside"
//	percentage = 0.25
type OptionsConfig struct {
	Direction  string  `toml:"direction" yaml:"direction"`
	Mode       string  `toml:"mode" yaml:"mode"`
	Percentage float64 `toml:"percentage" yaml:"percentage"`
}

// Options validates the record. An omitted (zero) percentage becomes
// DefaultPercentage; an empty mode becomes Outside. The direction is required.
func (c OptionsConfig) Options() (Options, error) {
	d, err := ParseDirection(c.Direction)
	if err != nil {
		return Options{}, err
	}
	m := Outside
	if strings.TrimSpace(c.Mode) != "" {
		if m, err = ParseMode(c.Mode); err != nil {
			return Options{}, err
		}
	}
	p := c.Percentage
	if p == 0 {
		p = DefaultPercentage
	}
	return NewOptions(d, m, p)
}

// ChainConfig describes a sequence of expansions applied with ExpandChain.
//
//	[[steps]]
//	direction = "top"
//
//	[[steps]]
//	direction = "right"
//	percentage = 0.3
type ChainConfig struct {
	Steps []OptionsConfig `toml:"steps" yaml:"steps"`
}

// Options validates every step in order.
func (c ChainConfig) Options() ([]Options, error) {
	out := make([]Options, 0, len(c.Steps))
	for i, s := range c.Steps {
		o, err := s.Options()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		out = append(out, o)
	}
	return out, nil
}

// DecodeOptionsTOML parses and validates a TOML options record.
func DecodeOptionsTOML(data []byte) (Options, error) {
	var cfg OptionsConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Options{}, fmt.Errorf("%w: parse toml: %v", ErrInvalidConfiguration, err)
	}
	return cfg.Options()
}

// DecodeOptionsYAML parses and validates a YAML options record.
func DecodeOptionsYAML(data []byte) (Options, error) {
	var cfg OptionsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Options{}, fmt.Errorf("%w: parse yaml: %v", ErrInvalidConfiguration, err)
	}
	return cfg.Options()
}

// DecodeChainTOML parses and validates a TOML chain of options.
func DecodeChainTOML(data []byte) ([]Options, error) {
	var cfg ChainConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parse toml: %v", ErrInvalidConfiguration, err)
	}
	return cfg.Options()
}

// DecodeChainYAML parses and validates a YAML chain of options.
func DecodeChainYAML(data []byte) ([]Options, error) {
	var cfg ChainConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parse yaml: %v", ErrInvalidConfiguration, err)
	}
	return cfg.Options()
}

// LoadOptions reads an options record from a .toml, .yaml or .yml file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Options{}, fmt.Errorf("outpaint: load options: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return DecodeOptionsTOML(data)
	case ".yaml", ".yml":
		return DecodeOptionsYAML(data)
	default:
		return Options{}, fmt.Errorf("%w: unsupported preset file %q", ErrInvalidConfiguration, path)
	}
}

// LoadChain reads a chain of options from a .toml, .yaml or .yml file.
func LoadChain(path string) ([]Options, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("outpaint: load chain: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return DecodeChainTOML(data)
	case ".yaml", ".yml":
		return DecodeChainYAML(data)
	default:
		return nil, fmt.Errorf("%w: unsupported preset file %q", ErrInvalidConfiguration, path)
	}
}
