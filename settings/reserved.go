// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"reflect"
	"sort"
	"strings"
	"unicode"
)

// reservedTag overrides the name a struct field reserves. "-" reserves nothing.
const reservedTag = "reserved"

// ReservedNames is an immutable set of names configuration values must not use.
type ReservedNames struct {
	names map[string]struct{}
}

// Capture collects the reserved names of objs.
//
// A value implementing [ReservedNamer] contributes exactly the names it
// lists. Otherwise a struct, or pointer to struct, contributes every field:
// the `reserved` tag when present, the snake_case field name when not.
// Other values contribute nothing.
func Capture(objs ...any) ReservedNames {
	set := make(map[string]struct{})

	for _, obj := range objs {
		if obj == nil {
			continue
		}
		if namer, ok := obj.(ReservedNamer); ok {
			for _, name := range namer.ReservedNames() {
				set[name] = struct{}{}
			}
			continue
		}

		t := reflect.TypeOf(obj)
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			continue
		}

		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			name := field.Tag.Get(reservedTag)
			switch name {
			case "-":
				continue
			case "":
				name = snakeCase(field.Name)
			}
			set[name] = struct{}{}
		}
	}

	return ReservedNames{names: set}
}

// Contains reports whether name is reserved.
func (r ReservedNames) Contains(name string) bool {
	_, ok := r.names[name]
	return ok
}

// Len returns the number of reserved names.
func (r ReservedNames) Len() int {
	return len(r.names)
}

// Sorted returns the reserved names in ascending order.
func (r ReservedNames) Sorted() []string {
	out := make([]string, 0, len(r.names))
	for name := range r.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// snakeCase converts a Go identifier such as "HTTPAddress" to "http_address".
func snakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
