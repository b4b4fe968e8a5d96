// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Target names a database: its dialect and the DSN handed to the driver.
type Target struct {
	Dialect Dialect
	DSN     string
}

// ReadPointerFile reads the database location stored in a pointer file.
//
// The trimmed content is either a PostgreSQL URL (postgres:// or
// postgresql://) or the path of a SQLite file. Relative SQLite paths are
// resolved against the directory of the pointer file.
func ReadPointerFile(pointerPath string) (Target, error) {
	data, err := os.ReadFile(pointerPath)
	if err != nil {
		return Target{}, fmt.Errorf("error reading pointer file: %w", err)
	}

	location := strings.TrimSpace(string(data))
	if location == "" {
		return Target{}, fmt.Errorf("%w: %s", ErrEmptyPointerFile, pointerPath)
	}

	if strings.HasPrefix(location, "postgres://") || strings.HasPrefix(location, "postgresql://") {
		return Target{Dialect: Postgres, DSN: location}, nil
	}

	if !filepath.IsAbs(location) {
		location = filepath.Join(filepath.Dir(pointerPath), location)
	}
	return Target{Dialect: SQLite, DSN: location}, nil
}
