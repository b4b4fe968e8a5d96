// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type plannerState struct {
	DatabaseVersion int
	HTTPAddress     string
	Owner           string `reserved:"owner_name"`
	scratch         []byte `reserved:"-"`
}

type listedNames []string

func (l listedNames) ReservedNames() []string { return l }

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Name":            "name",
		"DatabaseVersion": "database_version",
		"HTTPAddress":     "http_address",
		"UserID":          "user_id",
		"Level2Cache":     "level2_cache",
		"already_snake":   "already_snake",
		"x":               "x",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, snakeCase(in))
		})
	}
}

func TestCapture_StructFields(t *testing.T) {
	r := Capture(&plannerState{})

	assert.Equal(t, []string{"database_version", "http_address", "owner_name"}, r.Sorted())
	assert.True(t, r.Contains("owner_name"))
	assert.False(t, r.Contains("owner"), "tag replaces the field name")
	assert.False(t, r.Contains("scratch"))
}

func TestCapture_NamerAndIgnoredValues(t *testing.T) {
	var nilPtr *plannerState
	r := Capture(listedNames{"database"}, 42, "text", nil, nilPtr)

	assert.Equal(t, []string{"database", "database_version", "http_address", "owner_name"}, r.Sorted())
	assert.Equal(t, 4, r.Len())
}

func TestCapture_Empty(t *testing.T) {
	var r ReservedNames
	assert.False(t, r.Contains("anything"))
	assert.Empty(t, r.Sorted())
}

func TestCapture_ConfigFields(t *testing.T) {
	r := Capture(&Config{})

	assert.Equal(t, []string{"backend", "config_file", "data", "reserved_attribute_names"}, r.Sorted())
}
