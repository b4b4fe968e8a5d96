// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	p := filepath.Join(t.TempDir(), "confstore.json")
	require.NoError(t, os.WriteFile(p, []byte(`{
		"source":  {"path": "app.toml", "overrides": {"retries": 3, "title": "Planning", "ratio": 0.5}},
		"log":     {"level": "warn"},
		"storage": {"timeout": "1m"}
	}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "app.toml", cfg.Source.Path)
	assert.Equal(t, map[string]string{"retries": "3", "title": "Planning", "ratio": "0.5"}, cfg.Source.Overrides)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, time.Minute, cfg.Storage.Timeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_NoOverrides(t *testing.T) {
	p := writeTempJSONConfig(t, map[string]any{"log": map[string]any{"level": "info"}})

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Nil(t, cfg.Source.Overrides)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"log": `), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{`"30s"`, 30 * time.Second, false},
		{`"1h30m"`, 90 * time.Minute, false},
		{`1000000000`, time.Second, false},
		{`"later"`, 0, true},
		{`true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))
}
