// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-utils/internal/logger"
	"github.com/MKhiriev/go-utils/models"
)

// DatabaseBackend persists parameters as rows of the "parameter" table. The
// database is located through a pointer file and opened on first use.
type DatabaseBackend struct {
	pointerPath string

	db         *DB
	repository ParameterRepository
	rows       map[string]models.Parameter

	logger *logger.Logger
}

// NewDatabaseBackend constructs a backend for the pointer file at
// pointerPath. Nothing is read or opened until Load or Save is called.
func NewDatabaseBackend(pointerPath string, log *logger.Logger) *DatabaseBackend {
	if log == nil {
		log = logger.Nop()
	}
	return &DatabaseBackend{
		pointerPath: pointerPath,
		rows:        make(map[string]models.Parameter),
		logger:      log,
	}
}

func (b *DatabaseBackend) connect(ctx context.Context) error {
	if b.repository != nil {
		return nil
	}

	target, err := ReadPointerFile(b.pointerPath)
	if err != nil {
		b.logger.Err(err).Str("func", "DatabaseBackend.connect").Str("pointer", b.pointerPath).Msg("error reading pointer file")
		return err
	}

	db, err := Open(ctx, target, b.logger)
	if err != nil {
		return fmt.Errorf("%s connection error: %w", target.Dialect.Name, err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return fmt.Errorf("migration failed: %w", err)
	}

	b.db = db
	b.repository = NewParameterRepository(db, b.logger)
	return nil
}

// Load reads every row and decodes its JSON value.
func (b *DatabaseBackend) Load(ctx context.Context) (models.Parameters, error) {
	if err := b.connect(ctx); err != nil {
		return nil, err
	}

	rows, err := b.repository.GetAllParameters(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading parameters: %w", err)
	}

	params := make(models.Parameters, len(rows))
	for _, row := range rows {
		v, decodeErr := DecodeJSONValue(row.Value)
		if decodeErr != nil {
			b.logger.Err(decodeErr).Str("func", "DatabaseBackend.Load").Str("name", row.Name).Msg("error decoding parameter value")
			return nil, fmt.Errorf("parameter %q: %w", row.Name, decodeErr)
		}
		params[row.Name] = v
		b.rows[row.Name] = row
	}

	b.logger.Debug().Int("count", len(params)).Msg("database parameters loaded")
	return params, nil
}

// Save upserts every parameter. Rows absent from params are left untouched.
func (b *DatabaseBackend) Save(ctx context.Context, params models.Parameters) error {
	if err := b.connect(ctx); err != nil {
		return err
	}

	rows := make([]models.Parameter, 0, len(params))
	for _, name := range params.Names() {
		encoded, err := EncodeJSONValue(params[name])
		if err != nil {
			return fmt.Errorf("parameter %q: %w", name, err)
		}

		row := b.rows[name]
		row.Name = name
		row.Value = encoded
		rows = append(rows, row)
	}

	if err := b.repository.SaveParameters(ctx, rows...); err != nil {
		return fmt.Errorf("error saving parameters: %w", err)
	}

	for _, row := range rows {
		b.rows[row.Name] = row
	}
	return nil
}

// Describe returns the stored row of name as last loaded or saved.
func (b *DatabaseBackend) Describe(name string) (models.Parameter, bool) {
	row, ok := b.rows[name]
	return row, ok
}

// Close releases the database connection, if one was opened.
func (b *DatabaseBackend) Close() error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	b.repository = nil
	return err
}

// ReservedNames lists the names a database-backed configuration keeps for
// itself.
func (b *DatabaseBackend) ReservedNames() []string {
	return []string{"database"}
}
