// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration. Only output and check
// selection defaults are configurable; the validation rules themselves
// (length gates, reserved ranges) are fixed constants of the checks.
type Config struct {
	Defaults struct {
		Checks    string `yaml:"checks" env:"CANDIDATE_CHECK_CHECKS"`
		Format    string `yaml:"format" env:"CANDIDATE_CHECK_FORMAT"`
		NoColor   bool   `yaml:"no_color" env:"CANDIDATE_CHECK_NO_COLOR"`
		Quiet     bool   `yaml:"quiet" env:"CANDIDATE_CHECK_QUIET"`
		ShowMatch bool   `yaml:"show_match" env:"CANDIDATE_CHECK_SHOW_MATCH"`
	} `yaml:"defaults"`
}

// LoadConfig loads configuration from the specified file path. An empty
// path returns the built-in defaults. Environment variables override file
// values; command line flags are resolved on top of both by the caller.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set default values
	config.Defaults.Checks = "all"
	config.Defaults.Format = "text"

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}

	// An explicitly empty value in the file falls back to the default
	if config.Defaults.Checks == "" {
		config.Defaults.Checks = "all"
	}
	if config.Defaults.Format == "" {
		config.Defaults.Format = "text"
	}

	return config, nil
}

// LoadConfigOrDefault loads configuration from the specified path, falling
// back to the built-in defaults on any error rather than failing.
func LoadConfigOrDefault(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg = &Config{}
		cfg.Defaults.Checks = "all"
		cfg.Defaults.Format = "text"
	}
	return cfg
}

// FindConfigFile looks for a configuration file in standard locations and
// returns the first one found, or an empty string.
func FindConfigFile() string {
	candidates := []string{
		"candidate-check.yaml",
		".candidate-check.yaml",
	}
	for _, name := range candidates {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".candidate-check.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
