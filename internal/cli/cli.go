// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/tsmtype/internal/app"
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

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// listFlag collects a repeatable, comma-separated flag in order.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}

	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Flags may appear before, between or after the two positionals.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("tsmtype", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
tsmtype - validate and inspect time series containers.

Usage:
  tsmtype [options] <check|infer|profile> FILE

Commands:
  check    Validate FILE against -mtype (or every mtype of -scitype).
  infer    Report the mtype of FILE for -scitype, or for every scitype.
  profile  Compute the matrix profile of a univariate series in FILE.

Options:
`)
		flagSet.PrintDefaults()
	}

	var mtypes listFlag
	flagSet.Var(&mtypes, "mtype", "Mtype to check against. Repeatable or comma-separated; tried in order.")
	scitypeFlag := flagSet.String("scitype", "", "Scitype to check or infer as, e.g. 'Series' or 'Panel'.")
	windowFlag := flagSet.Int("window", 3, "Subsequence length for 'profile'.")
	metricFlag := flagSet.String("metric", "znorm", "Distance for 'profile'. Options: 'znorm' or 'dtw'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	dumpFlag := flagSet.Bool("dump", false, "Dump the decoded container before running the command.")
	configFlag := flagSet.String("config", "", "Optional YAML file with defaults for the options above.")

	var positional []string
	for rest := args; ; {
		if err := flagSet.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, true, nil
			}
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		if flagSet.NArg() == 0 {
			break
		}
		positional = append(positional, flagSet.Arg(0))
		rest = flagSet.Args()[1:]
	}
	slog.Debug("Arguments parsed successfully.", "positional", positional)

	if len(positional) == 0 {
		slog.Debug("No command provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if len(positional) != 2 {
		return nil, false, usageError("expected a command and a FILE, got %d arguments", len(positional))
	}

	cfg := app.Config{
		Command:   positional[0],
		InputPath: positional[1],
		Mtypes:    mtypes,
		Scitype:   *scitypeFlag,
		Window:    *windowFlag,
		Metric:    *metricFlag,
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
		Dump:      *dumpFlag,
	}

	if *configFlag != "" {
		defaults, err := app.LoadDefaults(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		set := make(map[string]bool)
		flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })
		merge(&cfg, defaults, set)
		slog.Debug("Config file defaults merged.", "path", *configFlag)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// merge fills cfg from d for every option not set on the command line.
// Zero values in d are ignored.
func merge(cfg *app.Config, d *app.Defaults, set map[string]bool) {
	if !set["mtype"] && len(d.Mtypes) > 0 {
		cfg.Mtypes = append([]string(nil), d.Mtypes...)
	}
	if !set["scitype"] && d.Scitype != "" {
		cfg.Scitype = d.Scitype
	}
	if !set["window"] && d.Window != 0 {
		cfg.Window = d.Window
	}
	if !set["metric"] && d.Metric != "" {
		cfg.Metric = d.Metric
	}
	if !set["log-format"] && d.LogFormat != "" {
		cfg.LogFormat = strings.ToLower(d.LogFormat)
	}
	if !set["log-level"] && d.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(d.LogLevel)
	}
	if !set["dump"] && d.Dump {
		cfg.Dump = true
	}
}
