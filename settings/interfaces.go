// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"context"

	"github.com/MKhiriev/go-utils/models"
)

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/settings_mock.go -package=mock

// Backend turns a persisted source into a flat mapping and back.
type Backend interface {
	Load(ctx context.Context) (models.Parameters, error)
	Save(ctx context.Context, params models.Parameters) error
}

// Describer is implemented by backends that keep per-parameter metadata.
type Describer interface {
	Describe(name string) (models.Parameter, bool)
}

// Extension carries state specific to one kind of configuration. Setup runs
// before reserved names are captured, so the extension's own names are
// protected from configuration values.
type Extension interface {
	Setup(ctx context.Context, cfg *Config) error
}

// ReservedNamer lists reserved names explicitly instead of having them
// derived from struct fields.
type ReservedNamer interface {
	ReservedNames() []string
}
