// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// runFlags parses args with the global flags and returns what ParseFlags saw.
func runFlags(t *testing.T, args ...string) (*StructuredConfig, error) {
	t.Helper()
	var (
		cfg      *StructuredConfig
		parseErr error
	)
	app := &cli.App{
		Name:                      "confstore",
		Flags:                     Flags(),
		DisableSliceFlagSeparator: true,
		Action: func(c *cli.Context) error {
			cfg, parseErr = ParseFlags(c)
			return nil
		},
	}
	require.NoError(t, app.Run(append([]string{"confstore"}, args...)))
	return cfg, parseErr
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := runFlags(t,
		"-s", "app.toml",
		"--set", "retries=3",
		"--set", "query=a=b,c",
		"-c", "tool.json",
		"--log-level", "debug",
		"--timeout", "5s",
	)
	require.NoError(t, err)

	assert.Equal(t, "app.toml", cfg.Source.Path)
	assert.Equal(t, map[string]string{"retries": "3", "query": "a=b,c"}, cfg.Source.Overrides)
	assert.Equal(t, "tool.json", cfg.JSONFilePath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5*time.Second, cfg.Storage.Timeout)
}

func TestParseFlags_NothingSet(t *testing.T) {
	cfg, err := runFlags(t)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_MalformedOverride(t *testing.T) {
	for _, arg := range []string{"novalue", "=3"} {
		t.Run(arg, func(t *testing.T) {
			_, err := runFlags(t, "--set", arg)
			assert.ErrorIs(t, err, ErrInvalidFlag)
		})
	}
}

func TestParseFlags_ShortOverrideForm(t *testing.T) {
	cfg, err := runFlags(t, "-o", "a=1", "-o", "b=2")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, cfg.Source.Overrides)
}

func TestParseFlags_MixedOverrideFormsRejected(t *testing.T) {
	app := &cli.App{
		Name:                      "confstore",
		Flags:                     Flags(),
		DisableSliceFlagSeparator: true,
		Action:                    func(*cli.Context) error { return nil },
	}

	err := app.Run([]string{"confstore", "-o", "a=1", "--set", "b=2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "two forms of the same flag")
}
