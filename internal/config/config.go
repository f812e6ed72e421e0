// Package config provides configuration management for katex-parse.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gglin/KaTeX/parser"
)

// Config holds the katex-parse configuration.
type Config struct {
	GlobalGroup      bool   `yaml:"global_group,omitempty"`
	ColorIsTextColor bool   `yaml:"color_is_text_color,omitempty"`
	ThrowOnError     bool   `yaml:"throw_on_error,omitempty"`
	Strict           string `yaml:"strict,omitempty"`
	ErrorColor       string `yaml:"error_color,omitempty"`
	NoColor          bool   `yaml:"no_color,omitempty"`
}

// Validate checks that Strict, if set, names a recognized strictness
// policy and that ErrorColor, if set, starts with '#'.
func (c *Config) Validate() error {
	switch parser.StrictMode(c.Strict) {
	case "", parser.StrictIgnore, parser.StrictWarn, parser.StrictError:
	default:
		return fmt.Errorf("strict must be one of ignore, warn, error (got %q)", c.Strict)
	}
	if c.ErrorColor != "" && c.ErrorColor[0] != '#' {
		return errors.New("error_color must be a #-prefixed hex color")
	}
	return nil
}

// ToSettings converts a loaded Config into the parser.Settings the
// core parser consumes, filling in parser.DefaultSettings for any
// field left at its zero value.
func (c *Config) ToSettings() parser.Settings {
	s := parser.DefaultSettings()
	s.GlobalGroup = c.GlobalGroup
	s.ColorIsTextColor = c.ColorIsTextColor
	s.ThrowOnError = c.ThrowOnError
	if c.Strict != "" {
		s.Strict = parser.StrictMode(c.Strict)
	}
	if c.ErrorColor != "" {
		s.ErrorColor = c.ErrorColor
	}
	return s
}

// LoadFromEnv loads configuration overrides from environment
// variables. Environment variables override existing values only if
// set and non-empty. Precedence: KATEX_* → existing config value.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("KATEX_STRICT"); v != "" {
		c.Strict = v
	}
	if v := os.Getenv("KATEX_ERROR_COLOR"); v != "" {
		c.ErrorColor = v
	}
	if v := os.Getenv("KATEX_THROW_ON_ERROR"); v != "" {
		c.ThrowOnError = v == "1" || v == "true"
	}
	if v := os.Getenv("KATEX_NO_COLOR"); v != "" {
		c.NoColor = v == "1" || v == "true"
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "katex-parse", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".katex-parse", "config.yml")
	}

	return filepath.Join(home, ".config", "katex-parse", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with
// environment variables. A missing file is not an error: it yields
// the zero Config, then applies env overrides on top.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
