// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-utils/internal/logger"
	"github.com/MKhiriev/go-utils/models"
)

// parameterRepository is the SQL implementation of [ParameterRepository].
// Queries are rendered by squirrel with the placeholder format of the
// connection's dialect.
type parameterRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewParameterRepository constructs a [ParameterRepository] over db.
func NewParameterRepository(db *DB, logger *logger.Logger) ParameterRepository {
	logger.Debug().Str("dialect", db.dialect.Name).Msg("creating parameter repository")
	return &parameterRepository{
		db:     db,
		logger: logger,
	}
}

func (r *parameterRepository) GetAllParameters(ctx context.Context) ([]models.Parameter, error) {
	query, args, err := buildSelectAllParametersQuery(r.db.dialect.Placeholder)
	if err != nil {
		r.logger.Err(err).Str("func", "parameterRepository.GetAllParameters").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "parameterRepository.GetAllParameters").Msg("failed to query parameters")
		return nil, classifyError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	var params []models.Parameter
	for rows.Next() {
		var p models.Parameter
		if err = rows.Scan(&p.Name, &p.Value, &p.Description, &p.Group); err != nil {
			r.logger.Err(err).Str("func", "parameterRepository.GetAllParameters").Msg("failed to scan parameter row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		params = append(params, p)
	}

	if err = rows.Err(); err != nil {
		r.logger.Err(err).Str("func", "parameterRepository.GetAllParameters").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return params, nil
}

func (r *parameterRepository) SaveParameters(ctx context.Context, params ...models.Parameter) error {
	if len(params) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Err(err).Str("func", "parameterRepository.SaveParameters").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, p := range params {
		query, args, buildErr := buildUpsertParameterQuery(r.db.dialect.Placeholder, p)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).
				Str("func", "parameterRepository.SaveParameters").
				Str("name", p.Name).
				Msg("failed to upsert parameter")
			return fmt.Errorf("failed to save parameter %q: %w", p.Name, classifyError(err, ErrExecutingStatement))
		}
	}

	if err = tx.Commit(); err != nil {
		r.logger.Err(err).Str("func", "parameterRepository.SaveParameters").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
