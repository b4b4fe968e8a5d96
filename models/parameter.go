// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sort"

// Parameters is a flat set of named configuration values. Keys are unique;
// iteration order carries no meaning, use Names for a stable order.
type Parameters map[string]Value

// Names returns the keys of p in ascending order.
func (p Parameters) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a shallow copy of p. A nil receiver yields an empty map.
func (p Parameters) Clone() Parameters {
	out := make(Parameters, len(p))
	for name, v := range p {
		out[name] = v
	}
	return out
}

// Parameter is one row of the relational parameter table.
type Parameter struct {
	// Name is the unique key of the parameter.
	Name string

	// Value holds the JSON-encoded value as stored in the table.
	Value string

	// Description is free text shown to users editing the parameter.
	Description string

	// Group clusters related parameters for display.
	Group string
}
