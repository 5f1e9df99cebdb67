package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vk/predictable-shuf/internal/app"
	"github.com/vk/predictable-shuf/internal/config"
)

// ExitCodeUsage is the process exit code for invalid invocations.
const ExitCodeUsage = 2

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the error that caused the exit, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// UsageError reports missing or malformed command-line arguments. Its
// message is the one-line usage string; Reason says what was wrong.
type UsageError struct {
	Program string
	Reason  string
}

// Error implements the error interface for UsageError.
func (e *UsageError) Error() string {
	return fmt.Sprintf("Usage: %s path number", e.Program)
}

func usageFailure(program, reason string) error {
	slog.Debug("Invalid invocation.", "reason", reason)
	usage := &UsageError{Program: program, Reason: reason}
	return &ExitError{Code: ExitCodeUsage, Message: usage.Error(), Err: usage}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError
// wrapping a UsageError.
func Parse(program string, args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet(program, flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {}

	configFlag := flagSet.String("config", "", "Path to an optional HCL settings file.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'. (default \"text\")")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. (default \"warn\")")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printHelp(program, flagSet, output)
			return nil, true, nil
		}
		return nil, false, usageFailure(program, err.Error())
	}
	slog.Debug("Flags parsed successfully.")

	logFormat := strings.ToLower(*logFormatFlag)
	if err := config.CheckLogFormat(logFormat); err != nil {
		return nil, false, usageFailure(program, err.Error())
	}
	logLevel := strings.ToLower(*logLevelFlag)
	if err := config.CheckLogLevel(logLevel); err != nil {
		return nil, false, usageFailure(program, err.Error())
	}

	switch {
	case flagSet.NArg() < 2:
		return nil, false, usageFailure(program, fmt.Sprintf("expected 2 arguments, got %d", flagSet.NArg()))
	case flagSet.NArg() > 2:
		return nil, false, usageFailure(program, fmt.Sprintf("unexpected extra arguments: %q", flagSet.Args()[2:]))
	}

	path := flagSet.Arg(0)
	count, err := strconv.Atoi(flagSet.Arg(1))
	if err != nil {
		return nil, false, usageFailure(program, fmt.Sprintf("count %q is not an integer", flagSet.Arg(1)))
	}
	slog.Debug("Positional arguments determined.", "path", path, "count", count)

	cfg, err := app.NewConfig(app.Config{
		Program:      program,
		Path:         path,
		Count:        count,
		SettingsPath: *configFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, usageFailure(program, err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

func printHelp(program string, flagSet *flag.FlagSet, output io.Writer) {
	fmt.Fprintf(output, `
%[1]s - print a reproducible random sample of lines from a text file.

Usage:
  %[1]s [options] PATH COUNT

Arguments:
  PATH
    Text file to sample from.
  COUNT
    Number of distinct lines to print. Must not exceed the number of lines.

Options:
`, program)
	flagSet.SetOutput(output)
	flagSet.PrintDefaults()
	flagSet.SetOutput(io.Discard)
}
