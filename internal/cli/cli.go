package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/patrolgrid/internal/app"
	"github.com/specialistvlad/patrolgrid/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// defaults are the settings used when no layer sets a value.
var defaults = app.Config{
	Part:      0,
	LogFormat: "text",
	LogLevel:  "info",
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Settings are layered: defaults, then the -config HCL file, then
// PATROLGRID_* environment variables (and -env-file), then explicit flags.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("patrolgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
PatrolGrid - Simulates a patrol walking a map and counts the obstacle
placements that trap it in a loop.

Usage:
  patrolgrid [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    Path to the map file.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the map file.")
	iFlag := flagSet.String("i", "", "Path to the map file (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an HCL config file.")
	envFileFlag := flagSet.String("env-file", "", "Path to a .env file with PATROLGRID_* variables. Defaults to ./.env when present.")
	partFlag := flagSet.Int("part", defaults.Part, "Part to solve: 1, 2, or 0 for both.")
	workersFlag := flagSet.Int("workers", defaults.WorkerCount, "Number of concurrent workers for the obstruction search. 0 uses one per CPU.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	healthPortFlag := flagSet.Int("healthcheck-port", defaults.HealthcheckPort, "Port for the HTTP health check server. 0 is disabled.")
	viewFlag := flagSet.Bool("view", defaults.View, "Show the map and the part 1 route in the terminal.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	// Only flags given explicitly override the lower layers.
	set := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	fromFlags := &config.Overrides{}
	if *inputFlag != "" {
		fromFlags.Input = inputFlag
	} else if *iFlag != "" {
		fromFlags.Input = iFlag
	} else if flagSet.NArg() > 0 {
		arg := flagSet.Arg(0)
		fromFlags.Input = &arg
	}
	if set["part"] {
		fromFlags.Part = partFlag
	}
	if set["workers"] {
		fromFlags.Workers = workersFlag
	}
	if set["log-format"] {
		fromFlags.LogFormat = logFormatFlag
	}
	if set["log-level"] {
		fromFlags.LogLevel = logLevelFlag
	}
	if set["healthcheck-port"] {
		fromFlags.HealthcheckPort = healthPortFlag
	}
	if set["view"] {
		fromFlags.View = viewFlag
	}

	ctx := context.Background()
	var fromFile *config.Overrides
	if *configFlag != "" {
		var err error
		if fromFile, err = config.LoadFile(ctx, *configFlag); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	var envFiles []string
	if *envFileFlag != "" {
		envFiles = append(envFiles, *envFileFlag)
	}
	fromEnv, err := config.LoadEnv(ctx, envFiles...)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	merged := fromFile.Merge(fromEnv).Merge(fromFlags)
	slog.Debug("Configuration layers merged.")

	if merged.Input == nil || *merged.Input == "" {
		slog.Debug("No input path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	cfg := defaults
	cfg.InputPath = *merged.Input
	if merged.Part != nil {
		cfg.Part = *merged.Part
	}
	if merged.Workers != nil {
		cfg.WorkerCount = *merged.Workers
	}
	if merged.LogFormat != nil {
		cfg.LogFormat = strings.ToLower(*merged.LogFormat)
	}
	if merged.LogLevel != nil {
		cfg.LogLevel = strings.ToLower(*merged.LogLevel)
	}
	if merged.HealthcheckPort != nil {
		cfg.HealthcheckPort = *merged.HealthcheckPort
	}
	if merged.View != nil {
		cfg.View = *merged.View
	}

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", validated)
	return validated, false, nil
}

// IsExitError reports whether err carries an ExitError and returns it.
func IsExitError(err error) (*ExitError, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}
