// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
//
//	{
//	  "source":  {"path": "app.toml", "overrides": {"retries": 3, "title": "Planning"}},
//	  "log":     {"level": "debug"},
//	  "storage": {"timeout": "5s"}
//	}
type StructuredJSONConfig struct {
	Source struct {
		Path      string                     `json:"path"`
		Overrides map[string]json.RawMessage `json:"overrides"`
	} `json:"source,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`

	Storage struct {
		Timeout Duration `json:"timeout"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	var overrides map[string]string
	if len(jsonCfg.Source.Overrides) > 0 {
		overrides = make(map[string]string, len(jsonCfg.Source.Overrides))
		for name, raw := range jsonCfg.Source.Overrides {
			overrides[name] = overrideText(raw)
		}
	}

	cfg := &StructuredConfig{
		Source: Source{
			Path:      jsonCfg.Source.Path,
			Overrides: overrides,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		Storage: Storage{
			Timeout: time.Duration(jsonCfg.Storage.Timeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// overrideText returns JSON strings unquoted and any other JSON value as
// written.
func overrideText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
