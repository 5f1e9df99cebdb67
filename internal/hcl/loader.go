package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/predictable-shuf/internal/config"
	"github.com/vk/predictable-shuf/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot lists every top-level block a settings file may contain. Anything
// else is rejected by the decoder.
type fileRoot struct {
	Logging *loggingBlock `hcl:"logging,block"`
}

// loggingBlock holds the raw expressions of the `logging` block. Missing
// attributes decode to a null expression.
type loggingBlock struct {
	Level  hcl.Expression `hcl:"level,optional"`
	Format hcl.Expression `hcl:"format,optional"`
}

// Load parses the settings file at path and translates it into the
// format-agnostic model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL settings loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	settings := &config.Settings{}
	if root.Logging != nil {
		if err := l.translateLogging(ctx, root.Logging, settings); err != nil {
			return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
		}
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	logger.Debug("HCL settings loading complete.", "log_level", settings.LogLevel, "log_format", settings.LogFormat)
	return settings, nil
}
