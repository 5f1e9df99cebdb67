package app

import (
	"io"
	"log/slog"
)

// newLogger builds an isolated logger for cfg's level and format. It does
// not touch the global logger. Unrecognised levels fall back to warn.
func newLogger(cfg Config, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if cfg.LogLevel != "" {
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			level = slog.LevelWarn
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
