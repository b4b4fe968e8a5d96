// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the backends to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmptyPointerFile is returned when the pointer file of a relational
	// source does not name any database.
	ErrEmptyPointerFile = errors.New("database pointer file is empty")

	// ErrParameterTableMissing is returned when the database has no
	// "parameter" table, e.g. because migrations were not applied.
	ErrParameterTableMissing = errors.New("parameter table does not exist")

	// ErrReadOnlyDatabase is returned when the database refuses writes.
	ErrReadOnlyDatabase = errors.New("database is read-only")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT/UPDATE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning a parameter row fails.
	ErrScanningRows = errors.New("failed to scan parameter rows")
)
