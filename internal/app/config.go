package app

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the CLI.
const (
	OutputText   = "text"
	OutputAlfred = "alfred"
)

// History size bounds.
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 500
)

// Config holds radix configuration read from config.yaml.
type Config struct {
	// Output is the default renderer: "text" or "alfred".
	Output string `yaml:"output"`

	History HistoryConfig `yaml:"history"`

	Log LogConfig `yaml:"log"`
}

// HistoryConfig controls the recent-query log.
type HistoryConfig struct {
	Enabled bool `yaml:"enabled"`
	Limit   int  `yaml:"limit"`
}

// LogConfig controls stderr logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputText,
		History: HistoryConfig{
			Enabled: true,
			Limit:   DefaultHistoryLimit,
		},
		Log: LogConfig{Level: "warn"},
	}
}

// LoadConfig reads path over the defaults. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects unknown output formats and clamps the history limit.
func (c *Config) Validate() error {
	switch c.Output {
	case "":
		c.Output = OutputText
	case OutputText, OutputAlfred:
	default:
		return fmt.Errorf("unknown output %q (want %s or %s)", c.Output, OutputText, OutputAlfred)
	}

	if c.History.Limit < 1 {
		c.History.Limit = 1
	}
	if c.History.Limit > MaxHistoryLimit {
		c.History.Limit = MaxHistoryLimit
	}
	return nil
}

// Save writes c to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
