// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a configuration group is invalid.
var (
	// ErrInvalidSourceConfigs indicates invalid source settings
	// (for example, an override without a name).
	ErrInvalidSourceConfigs = errors.New("invalid source configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, a negative timeout).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidFlag indicates a malformed command-line value.
	ErrInvalidFlag = errors.New("invalid flag value")
)
