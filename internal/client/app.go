// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/go-utils/internal/config"
	"github.com/MKhiriev/go-utils/internal/logger"
	"github.com/MKhiriev/go-utils/internal/paths"
	"github.com/MKhiriev/go-utils/models"
	"github.com/MKhiriev/go-utils/settings"
)

// DefaultSourceName is the file looked up in the data folder when no source
// is configured.
const DefaultSourceName = "config.toml"

// App is the confstore command-line application.
type App struct {
	cli *cli.App

	settings *config.StructuredConfig
	log      *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp builds the application writing command output to out and
// diagnostics to errOut.
func NewApp(out, errOut io.Writer, info models.AppBuildInfo) *App {
	a := &App{log: logger.Nop()}

	a.cli = &cli.App{
		Name:                      "confstore",
		Usage:                     "inspect and edit layered configuration sources",
		Version:                   info.String(),
		Flags:                     config.Flags(),
		DisableSliceFlagSeparator: true,
		Writer:                    out,
		ErrWriter:                 errOut,
		Before:                    a.before,
		Commands:                  a.commands(),
	}

	return a
}

// Run executes args, args[0] being the program name.
func (a *App) Run(ctx context.Context, args []string) error {
	return a.cli.RunContext(ctx, args)
}

// before resolves the tool settings and the logger for every command.
func (a *App) before(c *cli.Context) error {
	flags, err := config.ParseFlags(c)
	if err != nil {
		return err
	}

	cfg, err := config.GetStructuredConfig(flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log, err := logger.NewLogger("confstore").SetLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	a.settings = cfg
	a.log = log
	return nil
}

// sourcePath returns the configured source or config.toml in the data folder.
func (a *App) sourcePath() (string, error) {
	if a.settings.Source.Path != "" {
		return a.settings.Source.Path, nil
	}

	dataFolder, err := paths.DataFolder()
	if err != nil {
		return "", fmt.Errorf("no source given and %w", err)
	}
	return filepath.Join(dataFolder, DefaultSourceName), nil
}

// overrides converts the textual overrides of the settings.
func (a *App) overrides() models.Parameters {
	params := make(models.Parameters, len(a.settings.Source.Overrides))
	for name, text := range a.settings.Source.Overrides {
		params[name] = models.ParseValue(text)
	}
	return params
}

// open creates the configuration with the settings' overrides applied. The
// returned context is bounded by the storage timeout and carries the logger.
func (a *App) open(c *cli.Context) (*settings.Config, context.Context, context.CancelFunc, error) {
	ctx, cancel := a.withTimeout(c.Context)
	ctx = a.log.WithContext(ctx)

	source, err := a.sourcePath()
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}

	cfg, err := settings.Create(ctx, source, a.overrides())
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}

	return cfg, ctx, cancel, nil
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a.settings.Storage.Timeout > 0 {
		return context.WithTimeout(ctx, a.settings.Storage.Timeout)
	}
	return context.WithCancel(ctx)
}
