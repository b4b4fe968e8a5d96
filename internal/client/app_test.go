// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-utils/models"
	"github.com/MKhiriev/go-utils/settings"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "app.toml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

// run executes confstore with args against a quiet logger and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := NewApp(&out, &errOut, models.NewAppBuildInfo("test", "", ""))

	full := append([]string{"confstore", "--log-level", "disabled"}, args...)
	err := app.Run(context.Background(), full)
	return out.String(), err
}

func TestApp_Get(t *testing.T) {
	source := writeSource(t, "x = 1\ntitle = \"Planning\"\n")

	out, err := run(t, "-s", source, "get", "title")
	require.NoError(t, err)
	assert.Equal(t, "Planning\n", out)
}

func TestApp_GetOverride(t *testing.T) {
	source := writeSource(t, "x = 1\n")

	out, err := run(t, "-s", source, "-o", "x=5", "get", "x")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestApp_GetMissing(t *testing.T) {
	source := writeSource(t, "x = 1\n")

	_, err := run(t, "-s", source, "get", "nope")
	assert.ErrorIs(t, err, settings.ErrParameterNotFound)
}

func TestApp_GetUsage(t *testing.T) {
	source := writeSource(t, "x = 1\n")

	_, err := run(t, "-s", source, "get")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestApp_UnsupportedSource(t *testing.T) {
	_, err := run(t, "-s", "values.csv", "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, settings.ErrUnsupportedSource)
	assert.Contains(t, err.Error(), ".csv")
}

func TestApp_ReservedOverride(t *testing.T) {
	source := writeSource(t, "x = 1\n")

	_, err := run(t, "-s", source, "--set", "data=1", "list")
	assert.ErrorIs(t, err, settings.ErrReservedName)
}

func TestApp_List(t *testing.T) {
	source := writeSource(t, "x = 1\ndir = \"PathObject:/srv/data\"\n")

	out, err := run(t, "-s", source, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "/srv/data")
	assert.Contains(t, out, "path")
	assert.NotContains(t, out, "DESCRIPTION")
}

func TestApp_SetPersists(t *testing.T) {
	source := writeSource(t, "# tuned by hand\nx = 1\n")

	_, err := run(t, "-s", source, "set", "retries", "3")
	require.NoError(t, err)

	data, err := os.ReadFile(source)
	require.NoError(t, err)
	assert.Equal(t, "# tuned by hand\nx = 1\nretries = 3\n", string(data))

	out, err := run(t, "-s", source, "get", "retries")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestApp_SetReserved(t *testing.T) {
	source := writeSource(t, "x = 1\n")

	_, err := run(t, "-s", source, "set", "backend", "sqlite")
	assert.ErrorIs(t, err, settings.ErrReservedName)
}

func TestApp_Reserved(t *testing.T) {
	source := writeSource(t, "x = 1\n")

	out, err := run(t, "-s", source, "reserved")
	require.NoError(t, err)
	assert.Equal(t, []string{"backend", "config_file", "data", "reserved_attribute_names"},
		strings.Fields(out))
}

func TestApp_InvalidLogLevel(t *testing.T) {
	var out bytes.Buffer
	app := NewApp(&out, &out, models.AppBuildInfo{})

	err := app.Run(context.Background(), []string{"confstore", "--log-level", "loud", "list"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting configs")
}

func TestApp_SourceFromEnv(t *testing.T) {
	source := writeSource(t, "x = 7\n")
	t.Setenv("CONFSTORE_SOURCE_PATH", source)

	out, err := run(t, "get", "x")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestRenderParameters(t *testing.T) {
	out := renderParameters([]parameterRow{
		{Name: "retries", Value: models.Int(3), described: true, Description: "how often", Group: "network"},
		{Name: "title", Value: models.String("Planning"), described: true},
	})

	for _, want := range []string{"DESCRIPTION", "GROUP", "retries", "how often", "network", "Planning", "int", "string"} {
		assert.Contains(t, out, want)
	}

	assert.Contains(t, renderParameters(nil), "no parameters")
}

func TestApp_Version(t *testing.T) {
	var out bytes.Buffer
	app := NewApp(&out, &out, models.NewAppBuildInfo("1.4.0", "2026-10-01", ""))

	require.NoError(t, app.Run(context.Background(), []string{"confstore", "--version"}))
	assert.Contains(t, out.String(), "1.4.0 (built 2026-10-01, commit N/A)")
}

func TestApp_DefaultSource(t *testing.T) {
	out, err := run(t, "get", "max_workers")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	out, err = run(t, "data-folder")
	require.NoError(t, err)
	assert.Equal(t, "data", filepath.Base(strings.TrimSpace(out)))
	assert.FileExists(t, filepath.Join(strings.TrimSpace(out), DefaultSourceName))
}
