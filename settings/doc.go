// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package settings provides a layered configuration store.
//
// A [Config] merges the values of a persisted source with caller-supplied
// overrides. Sources are matched to a backend by file extension:
//   - .toml:       a flat TOML file, rewritten line by line on save;
//   - .ini, .txt:  a pointer file naming a SQLite file or PostgreSQL URL
//     whose "parameter" table holds JSON-encoded values.
//
// Construction is two-phase. [New] runs the setup of every [Extension] and
// then captures the reserved names of the configuration object;
// [Config.FinalizeWithBackendValues] loads the backend afterwards. A backend
// value or an override whose name is reserved fails with a [ReservedNameError].
// [Create] performs all steps, including the overrides.
package settings
