// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

// Global flag names.
const (
	FlagSource   = "source"
	FlagSet      = "set"
	FlagConfig   = "config"
	FlagLogLevel = "log-level"
	FlagTimeout  = "timeout"
)

// Flags returns the global command-line flags read by [ParseFlags].
//
// Flags:
//
//	-s/--source     configuration source (.toml, .ini or .txt)
//	-o/--set        override as name=value, repeatable (one form per call)
//	-c/--config     json file path with tool settings
//	--log-level     log level (debug, info, warn, ...)
//	--timeout       timeout of a single load or save (e.g., "5s", "1m")
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagSource,
			Aliases: []string{"s"},
			Usage:   "configuration `FILE` (.toml, or .ini/.txt database pointer)",
		},
		&cli.StringSliceFlag{
			Name:    FlagSet,
			Aliases: []string{"o"},
			Usage:   "override a parameter as `NAME=VALUE`; repeatable, but -o and --set cannot be mixed in one call",
		},
		&cli.StringFlag{
			Name:    FlagConfig,
			Aliases: []string{"c"},
			Usage:   "JSON `FILE` with tool settings",
		},
		&cli.StringFlag{
			Name:  FlagLogLevel,
			Usage: "log `LEVEL` (debug, info, warn, error)",
		},
		&cli.DurationFlag{
			Name:  FlagTimeout,
			Usage: "timeout of a single load or save",
		},
	}
}

// ParseFlags reads the flags of [Flags] from c. Unset flags stay zero so they
// do not override other layers.
func ParseFlags(c *cli.Context) (*StructuredConfig, error) {
	overrides, err := parseOverrides(c.StringSlice(FlagSet))
	if err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Source: Source{
			Path:      c.String(FlagSource),
			Overrides: overrides,
		},
		Log: Log{
			Level: c.String(FlagLogLevel),
		},
		Storage: Storage{
			Timeout: c.Duration(FlagTimeout),
		},
		JSONFilePath: c.String(FlagConfig),
	}, nil
}

// parseOverrides splits name=value pairs. The value may itself contain "=".
func parseOverrides(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	overrides := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("%w: %q, want NAME=VALUE", ErrInvalidFlag, pair)
		}
		overrides[name] = value
	}
	return overrides, nil
}
