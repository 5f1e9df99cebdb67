package app

import (
	"errors"
	"fmt"
)

// Defaults applied when neither a flag nor the settings file sets a value.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Program string // name shown in diagnostics
	Path    string // input text file
	Count   int    // number of lines to sample

	SettingsPath string // optional HCL settings file
	LogFormat    string
	LogLevel     string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Path == "" {
		return nil, errors.New("Path is a required configuration field and cannot be empty")
	}
	if cfg.Count < 0 {
		return nil, fmt.Errorf("Count must not be negative, got %d", cfg.Count)
	}
	return &cfg, nil
}

func (c Config) withDefaults() Config {
	c.LogLevel = orDefault(c.LogLevel, DefaultLogLevel)
	c.LogFormat = orDefault(c.LogFormat, DefaultLogFormat)
	return c
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
