package app

import (
	"bufio"
	"context"
	"fmt"

	"github.com/vk/predictable-shuf/internal/ctxlog"
	"github.com/vk/predictable-shuf/internal/fsutil"
	"github.com/vk/predictable-shuf/internal/sampler"
)

// Run reads the input file, samples it and writes the chosen lines.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "path", a.config.Path)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.", "count", a.config.Count)

	lines, err := fsutil.ReadLines(a.config.Path)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	logger.Debug("Input read.", "lines", len(lines))

	picked, err := sampler.Sample(sampler.New(), lines, a.config.Count)
	if err != nil {
		return fmt.Errorf("failed to sample lines: %w", err)
	}

	if err := a.write(picked); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Debug("App.Run method finished.", "lines_written", len(picked))
	return nil
}

// write emits the lines exactly as read, with nothing added between them.
func (a *App) write(lines []string) error {
	w := bufio.NewWriter(a.outW)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
	}
	return w.Flush()
}
