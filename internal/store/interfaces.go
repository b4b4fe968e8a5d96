// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-utils/models"
)

// ParameterRepository is the low-level access layer over the "parameter"
// table. Values travel as their JSON-encoded text; decoding belongs to
// [DatabaseBackend].
type ParameterRepository interface {
	// GetAllParameters returns every row ordered by name.
	GetAllParameters(ctx context.Context) ([]models.Parameter, error)

	// SaveParameters upserts all rows in a single transaction. Existing rows
	// only get their value replaced; description and group are kept.
	SaveParameters(ctx context.Context, params ...models.Parameter) error
}
