package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decode parses a configuration file body. Files ending in .toml are TOML;
// everything else is read as YAML, which covers JSON too.
func Decode(path string, data []byte) (*Config, error) {
	cfg := &Config{}
	if filepath.Ext(path) == ".toml" {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse TOML: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if cfg.Rules == nil {
		cfg.Rules = make(map[string]RuleConfig)
	}
	return cfg, nil
}

// Encode renders the file-level settings of c as "yaml", "toml" or "json".
// CLI-only fields are left out.
func (c *Config) Encode(format string) ([]byte, error) {
	if c == nil {
		c = &Config{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	switch format {
	case "", "yaml":
		return buf.Bytes(), nil
	case "toml", "json":
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}

	// The YAML field names are the file keys, so the other encoders start
	// from the YAML document.
	var doc map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if format == "toml" {
		out, err := toml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encode config: %w", err)
		}
		return out, nil
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return append(out, '\n'), nil
}

// Clone returns a deep copy of c, CLI-only fields included. Nested values
// inside rule options stay shared.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	out := *c
	out.Ignore = slices.Clone(c.Ignore)
	out.Languages = slices.Clone(c.Languages)
	out.EnableRules = slices.Clone(c.EnableRules)
	out.DisableRules = slices.Clone(c.DisableRules)
	if c.Rules != nil {
		out.Rules = make(map[string]RuleConfig, len(c.Rules))
		for id, rule := range c.Rules {
			out.Rules[id] = rule.Clone()
		}
	}
	return &out
}

// Clone returns a copy of r that shares no pointers with it.
func (r RuleConfig) Clone() RuleConfig {
	out := RuleConfig{Options: maps.Clone(r.Options)}
	if r.Enabled != nil {
		enabled := *r.Enabled
		out.Enabled = &enabled
	}
	if r.Severity != nil {
		severity := *r.Severity
		out.Severity = &severity
	}
	return out
}
