// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-utils/internal/logger"
	"github.com/MKhiriev/go-utils/migrations"
)

// Dialect bundles what differs between the supported SQL engines.
type Dialect struct {
	// Name is the label used in logs.
	Name string
	// Goose is the goose dialect used for migrations.
	Goose string
	// Placeholder is the squirrel placeholder format of the driver.
	Placeholder sq.PlaceholderFormat
}

var (
	// SQLite is the dialect of file databases opened with mattn/go-sqlite3.
	SQLite = Dialect{Name: "sqlite", Goose: migrations.DialectSQLite, Placeholder: sq.Question}
	// Postgres is the dialect of PostgreSQL databases opened with pgx.
	Postgres = Dialect{Name: "postgres", Goose: migrations.DialectPostgres, Placeholder: sq.Dollar}
)

// DB is an open database handle together with its dialect.
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.Goose)
}

// Dialect returns the SQL dialect of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Open connects to the database named by target.
func Open(ctx context.Context, target Target, log *logger.Logger) (*DB, error) {
	switch target.Dialect.Name {
	case SQLite.Name:
		return NewConnectSQLite(ctx, target.DSN, log)
	case Postgres.Name:
		return NewConnectPostgres(ctx, target.DSN, log)
	default:
		return nil, fmt.Errorf("unknown database dialect %q", target.Dialect.Name)
	}
}
