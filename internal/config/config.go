// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CONFSTORE_"

// Defaults applied before any other layer.
const (
	DefaultLogLevel = "info"
	DefaultTimeout  = 30 * time.Second
)

// StructuredConfig is the top-level settings container of the confstore
// tool.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Source selects the configuration source and the overrides applied to it.
	Source Source `envPrefix:"SOURCE_"`

	// Log controls the tool's own logging.
	Log Log `envPrefix:"LOG_"`

	// Storage holds settings for blocking backend operations.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON settings file.
	// Env: CONFSTORE_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Source describes the configuration source to open.
type Source struct {
	// Path is a .toml file or a .ini/.txt database pointer file. Empty means
	// config.toml inside the data folder.
	// Env: CONFSTORE_SOURCE_PATH
	Path string `env:"PATH"`

	// Overrides are applied on top of the source values. Values are kept as
	// text; integer text becomes an integer parameter.
	// Env: CONFSTORE_SOURCE_OVERRIDES (e.g. "retries:3,title:Planning")
	Overrides map[string]string `env:"OVERRIDES"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: CONFSTORE_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Storage holds settings for backend I/O.
type Storage struct {
	// Timeout bounds a single load or save (e.g. "5s", "1m").
	// Env: CONFSTORE_STORAGE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Log:     Log{Level: DefaultLogLevel},
		Storage: Storage{Timeout: DefaultTimeout},
	}
}

// GetStructuredConfig loads, merges and validates the tool settings. flags
// holds the values given on the command line, see [ParseFlags]; it may be
// nil.
//
// The JSON file named by the flags, or else by the environment, is merged
// between the defaults and the environment layer.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	if flags == nil {
		flags = &StructuredConfig{}
	}

	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	jsonPath := flags.JSONFilePath
	if jsonPath == "" {
		jsonPath = envCfg.JSONFilePath
	}

	return newConfigBuilder().
		withDefaults().
		withJSON(jsonPath).
		with(envCfg).
		with(flags).
		build()
}
