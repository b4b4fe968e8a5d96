// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Use [errors.Is] to match them; the typed errors below
// match their sentinel as well.
var (
	// ErrUnsupportedSource is returned by [Create] and [NewBackend] when the
	// source extension has no registered backend.
	ErrUnsupportedSource = errors.New("unsupported configuration source")

	// ErrReservedName is returned when a value would overwrite a name
	// reserved by the configuration object.
	ErrReservedName = errors.New("reserved parameter name")

	// ErrParameterNotFound is returned on lookup of an absent parameter.
	ErrParameterNotFound = errors.New("parameter not found")

	// ErrTypeMismatch is returned by the typed accessors when the stored
	// value has another kind.
	ErrTypeMismatch = errors.New("parameter type mismatch")

	// ErrInvalidOverride is returned for overrides that are neither
	// integers nor strings, or have an empty name.
	ErrInvalidOverride = errors.New("invalid override")

	// ErrAlreadyFinalized is returned when backend values are merged twice.
	ErrAlreadyFinalized = errors.New("configuration already finalized")

	// ErrNotFinalized is returned when overrides are added before the
	// backend values were merged.
	ErrNotFinalized = errors.New("configuration not finalized")

	// ErrNotDescribable is returned by [Config.Describe] when the backend
	// keeps no metadata.
	ErrNotDescribable = errors.New("backend keeps no parameter metadata")
)

// UnsupportedSourceError names a source whose type has no backend.
type UnsupportedSourceError struct {
	Source    string
	Ext       string
	Supported []string
}

func (e *UnsupportedSourceError) Error() string {
	kind := fmt.Sprintf("of type %s", e.Ext)
	if e.Ext == "" {
		kind = "without extension"
	}
	return fmt.Sprintf("%s is %s. The only acceptable types are %s",
		e.Source, kind, strings.Join(e.Supported, ", "))
}

func (e *UnsupportedSourceError) Is(target error) bool {
	return target == ErrUnsupportedSource
}

// ReservedNameError names a configuration value that collides with a
// reserved name.
type ReservedNameError struct {
	Name string
}

func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("the parameter name %q is reserved by the configuration object "+
		"and cannot be given to any configuration value. "+
		"Please rename it before restarting the application", e.Name)
}

func (e *ReservedNameError) Is(target error) bool {
	return target == ErrReservedName
}

// ParameterNotFoundError names a parameter missing from a configuration.
type ParameterNotFoundError struct {
	Name   string
	Source string
}

func (e *ParameterNotFoundError) Error() string {
	return fmt.Sprintf("parameter %q not found in configuration %s", e.Name, e.Source)
}

func (e *ParameterNotFoundError) Is(target error) bool {
	return target == ErrParameterNotFound
}
