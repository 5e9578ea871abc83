// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tsmtype/check"
	"github.com/katalvlaran/tsmtype/datatypes"
	"github.com/katalvlaran/tsmtype/internal/load"
)

// ErrNotConforming reports a container that failed its check or matched no
// mtype. The command exits with status 1.
var ErrNotConforming = errors.New("object does not conform")

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *datatypes.Registry
	config   *Config
}

// NewApp returns an App writing results to outW and logs to logW. It builds
// its own registry so that registry debug logs reach the configured logger.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: check.New(nil, datatypes.WithLogger(logger)),
		config:   cfg,
	}
}

// Run loads the input container and executes the configured command.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.", "command", a.config.Command, "input", a.config.InputPath)
	obj, err := load.File(a.config.InputPath)
	if err != nil {
		return err
	}
	a.logger.Debug("Input decoded.", "type", fmt.Sprintf("%T", obj))
	if a.config.Dump {
		spew.Fdump(a.outW, obj)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	switch a.config.Command {
	case CommandCheck:
		return a.runCheck(obj)
	case CommandInfer:
		return a.runInfer(obj)
	default:
		return a.runProfile(obj)
	}
}

func (a *App) emit(v any) error {
	enc := yaml.NewEncoder(a.outW)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	return enc.Close()
}
