// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/go-utils/internal/paths"
	"github.com/MKhiriev/go-utils/models"
	"github.com/MKhiriev/go-utils/settings"
)

func (a *App) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "get",
			Usage:     "print the value of a parameter",
			ArgsUsage: "NAME",
			Action:    a.get,
		},
		{
			Name:    "list",
			Aliases: []string{"ls"},
			Usage:   "print every parameter as a table",
			Action:  a.list,
		},
		{
			Name:      "set",
			Usage:     "store a parameter in the source; integer text is stored as an integer",
			ArgsUsage: "NAME VALUE",
			Action:    a.set,
		},
		{
			Name:   "reserved",
			Usage:  "print the names no parameter may use",
			Action: a.reserved,
		},
		{
			Name:   "data-folder",
			Usage:  "print the data folder holding the default source",
			Action: a.dataFolder,
		},
	}
}

func (a *App) get(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("%w: get NAME", ErrUsage)
	}

	cfg, _, cancel, err := a.open(c)
	if err != nil {
		return err
	}
	defer cancel()
	defer cfg.Close()

	v, err := cfg.Get(c.Args().First())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, v.String())
	return err
}

func (a *App) list(c *cli.Context) error {
	cfg, _, cancel, err := a.open(c)
	if err != nil {
		return err
	}
	defer cancel()
	defer cfg.Close()

	rows, err := describeAll(cfg)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, renderParameters(rows))
	return err
}

func (a *App) set(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("%w: set NAME VALUE", ErrUsage)
	}

	cfg, ctx, cancel, err := a.open(c)
	if err != nil {
		return err
	}
	defer cancel()
	defer cfg.Close()

	name := c.Args().Get(0)
	if err = cfg.AddOverrides(models.Parameters{name: models.ParseValue(c.Args().Get(1))}); err != nil {
		return err
	}

	if err = cfg.Save(ctx); err != nil {
		return err
	}

	a.log.Info().Str("name", name).Str("source", cfg.Source()).Msg("parameter stored")
	return nil
}

func (a *App) reserved(c *cli.Context) error {
	cfg, _, cancel, err := a.open(c)
	if err != nil {
		return err
	}
	defer cancel()
	defer cfg.Close()

	for _, name := range cfg.Reserved() {
		if _, err = fmt.Fprintln(c.App.Writer, name); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) dataFolder(c *cli.Context) error {
	folder, err := paths.DataFolder()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, folder)
	return err
}

// parameterRow is one line of the list output.
type parameterRow struct {
	Name  string
	Value models.Value

	// described is set when the backend keeps metadata.
	described   bool
	Description string
	Group       string
}

func describeAll(cfg *settings.Config) ([]parameterRow, error) {
	values := cfg.Values()
	rows := make([]parameterRow, 0, len(values))

	for _, name := range values.Names() {
		row := parameterRow{Name: name, Value: values[name]}

		p, err := cfg.Describe(name)
		switch {
		case err == nil:
			row.described = true
			row.Description = p.Description
			row.Group = p.Group
		case !errors.Is(err, settings.ErrNotDescribable):
			return nil, err
		}

		rows = append(rows, row)
	}
	return rows, nil
}
