// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-utils/models"
)

const parameterTable = "parameter"

// "group" is a keyword in both dialects and must stay quoted.
var parameterColumns = []string{"name", "value", "description", `"group"`}

const upsertParameterSuffix = "ON CONFLICT (name) DO UPDATE SET value = excluded.value"

func buildSelectAllParametersQuery(ph sq.PlaceholderFormat) (string, []any, error) {
	return sq.Select(parameterColumns...).
		From(parameterTable).
		OrderBy("name").
		PlaceholderFormat(ph).
		ToSql()
}

func buildUpsertParameterQuery(ph sq.PlaceholderFormat, p models.Parameter) (string, []any, error) {
	return sq.Insert(parameterTable).
		Columns(parameterColumns...).
		Values(p.Name, p.Value, p.Description, p.Group).
		Suffix(upsertParameterSuffix).
		PlaceholderFormat(ph).
		ToSql()
}
