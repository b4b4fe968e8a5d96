// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config assembles the settings of the confstore tool itself: which
// configuration source to open, the overrides to apply on top of it, the log
// level and the storage timeout.
//
// Settings are merged from several layers, later layers overriding earlier
// non-zero fields:
//  1. Built-in defaults
//  2. JSON config file (path from the -c flag or CONFSTORE_CONFIG)
//  3. Environment variables prefixed with CONFSTORE_
//  4. Command-line flags
//
// Override maps are merged key by key across the layers.
package config
