// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the confstore command-line application.
//
// It resolves the tool settings, opens the configuration source through
// [settings.Create] and runs one command against it: get, list, set,
// reserved or data-folder.
package client
