package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/predictable-shuf/internal/config"
	"github.com/vk/predictable-shuf/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config Config
}

// NewApp is the constructor for the main application. Sampled lines go to
// outW and log records to logW. When the config names a settings file it is
// loaded through loader, and its values fill in whatever the flags left unset.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	cfg := *appConfig

	if cfg.SettingsPath != "" {
		if loader == nil {
			return nil, errors.New("a settings file was given but no loader is configured")
		}
		ctx := ctxlog.WithLogger(context.Background(), newLogger(cfg.withDefaults(), logW))
		settings, err := loader.Load(ctx, cfg.SettingsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		cfg.LogLevel = orDefault(cfg.LogLevel, settings.LogLevel)
		cfg.LogFormat = orDefault(cfg.LogFormat, settings.LogFormat)
	}

	cfg = cfg.withDefaults()
	logger := newLogger(cfg, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}, nil
}

// Config returns the effective configuration after settings and defaults
// were applied. This is primarily for testing.
func (a *App) Config() Config {
	return a.config
}
