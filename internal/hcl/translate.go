package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/predictable-shuf/internal/config"
	"github.com/vk/predictable-shuf/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translateLogging copies the `logging` block into the agnostic model.
func (l *Loader) translateLogging(ctx context.Context, b *loggingBlock, s *config.Settings) error {
	level, err := stringAttr(ctx, "level", b.Level)
	if err != nil {
		return err
	}
	format, err := stringAttr(ctx, "format", b.Format)
	if err != nil {
		return err
	}

	s.LogLevel = level
	s.LogFormat = format
	return nil
}

// stringAttr evaluates a literal expression and converts it to a Go string.
// A null value yields the empty string.
func stringAttr(ctx context.Context, name string, expr hcl.Expression) (string, error) {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		return "", nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() {
		logger.Debug("Attribute not set.", "attribute", name)
		return "", nil
	}

	strVal, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("%s: attribute %q must be a string: %w", expr.Range(), name, err)
	}
	if !strVal.IsWhollyKnown() || strVal.IsNull() {
		return "", fmt.Errorf("%s: attribute %q must be a known string", expr.Range(), name)
	}

	logger.Debug("Attribute decoded.", "attribute", name, "value", strVal.AsString())
	return strVal.AsString(), nil
}
