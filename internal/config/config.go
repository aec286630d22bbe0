// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config is the YAML-backed operational configuration for the
// handful of tunables this library exposes beyond per-call ParsingOptions:
// the default region, the default log level, and the regex cache capacity.
// Grounded in internal/config/config.go's LoadConfig/Config shape from the
// teacher repo, trimmed from an entire scanning application's configuration
// surface (redaction strategies, preprocessor toggles, per-platform paths,
// scan profiles) down to what a parsing/formatting library actually needs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration record.
type Config struct {
	Defaults struct {
		DefaultRegion string `yaml:"default_region"`
		LogLevel      string `yaml:"log_level"`
	} `yaml:"defaults"`

	RegexCache struct {
		Capacity int `yaml:"capacity"`
	} `yaml:"regex_cache"`
}

// Default returns the built-in configuration: default_region "ZZ" (spec
// §9), log level "warn" (see DESIGN.md Open Question decisions), and a
// regex cache capacity of 128 (spec §4.2's "typical: 64-128").
func Default() *Config {
	c := &Config{}
	c.Defaults.DefaultRegion = "ZZ"
	c.Defaults.LogLevel = "warn"
	c.RegexCache.Capacity = 128
	return c
}

// Load reads a YAML configuration file, falling back to Default() values
// for any field the file does not set. There is no implicit file access on
// this library's hot path: Load is only ever called when a caller asks for
// it by name, never automatically.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("telnumber/config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("telnumber/config: parsing %s: %w", path, err)
	}

	if cfg.RegexCache.Capacity <= 0 {
		cfg.RegexCache.Capacity = Default().RegexCache.Capacity
	}
	if cfg.Defaults.DefaultRegion == "" {
		cfg.Defaults.DefaultRegion = Default().Defaults.DefaultRegion
	}
	if cfg.Defaults.LogLevel == "" {
		cfg.Defaults.LogLevel = Default().Defaults.LogLevel
	}

	return cfg, nil
}
