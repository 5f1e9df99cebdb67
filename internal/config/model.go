package config

import (
	"fmt"
	"strings"
)

// Accepted values for the logging settings. Flags and settings files share them.
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"text", "json"}
)

// Settings is the unified, format-agnostic representation of an optional
// settings file. An empty field means the file did not set it.
type Settings struct {
	LogLevel  string
	LogFormat string
}

// Validate checks every non-empty field against its accepted values.
func (s *Settings) Validate() error {
	if err := CheckLogLevel(s.LogLevel); err != nil {
		return err
	}
	return CheckLogFormat(s.LogFormat)
}

// CheckLogLevel reports whether level is empty or one of LogLevels.
func CheckLogLevel(level string) error {
	return checkOneOf("log level", level, LogLevels)
}

// CheckLogFormat reports whether format is empty or one of LogFormats.
func CheckLogFormat(format string) error {
	return checkOneOf("log format", format, LogFormats)
}

func checkOneOf(what, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q: must be one of %s", what, value, strings.Join(allowed, ", "))
}
