package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vk/predictable-shuf/internal/app"
	"github.com/vk/predictable-shuf/internal/cli"
	"github.com/vk/predictable-shuf/internal/hcl"
)

// main is the entrypoint for the predictable-shuf application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, filepath.Base(os.Args[0]), os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, program string, args []string) error {
	appConfig, shouldExit, err := cli.Parse(program, args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete HCL loader to pass to the app.
	loader := hcl.NewLoader()
	shufApp, err := app.NewApp(outW, errW, appConfig, loader)
	if err != nil {
		return err
	}

	return shufApp.Run(context.Background())
}
