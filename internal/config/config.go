// Package config loads drgrep configuration from YAML with sensible
// defaults. Settings in the file can be overridden per invocation by CLI
// flags; the merge order is defaults, then file, then environment, then
// flags (applied by the command layer).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the config file location relative to the working
// directory.
const DefaultConfigPath = ".drgrep/config.yaml"

// SensitiveEnvVar, when set at all, forces case-sensitive key search.
const SensitiveEnvVar = "DRGREP_SENSITIVE_CASE"

// Config holds drgrep configuration options.
type Config struct {
	// Sensitive makes key searches case sensitive.
	Sensitive bool `yaml:"sensitive"`

	// Color controls colored output; auto-disabled on non-TTY writers.
	Color bool `yaml:"color"`

	// LogLevel sets logging verbosity (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// IgnoreFile names the ignore-rule file read from the search root.
	IgnoreFile string `yaml:"ignore_file"`

	// NoIgnore disables ignore rules entirely.
	NoIgnore bool `yaml:"no_ignore"`
}

// DefaultConfig returns a Config with default values. The
// DRGREP_SENSITIVE_CASE environment variable, if set, turns on
// case-sensitive search.
func DefaultConfig() *Config {
	cfg := &Config{
		Sensitive:  false,
		Color:      true,
		LogLevel:   "info",
		IgnoreFile: ".gitignore",
		NoIgnore:   false,
	}
	if _, ok := os.LookupEnv(SensitiveEnvVar); ok {
		cfg.Sensitive = true
	}
	return cfg
}

// LoadConfig loads configuration from the specified file path. A missing
// file returns the defaults without error; a malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigFromDir loads the default config file relative to dir.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DefaultConfigPath))
}

// Validate checks field values that have a constrained domain.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "", "trace", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log_level %q: must be trace, debug, info, warn, or error", c.LogLevel)
	}
}
