// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind defines the semantic type of a configuration [Value].
// The kind determines which accessor returns the payload and how the value
// is written back by the persistence backends.
type Kind uint8

const (
	// KindInvalid is the zero Kind. A Value of this kind was never assigned.
	KindInvalid Kind = iota

	// KindInt represents a signed 64-bit integer.
	KindInt

	// KindFloat represents a 64-bit floating point number.
	KindFloat

	// KindBool represents a boolean flag.
	KindBool

	// KindString represents free-form text.
	KindString

	// KindPath represents a filesystem path. Backends persist it as a string
	// tagged with [PathPrefix] so that it is decoded back as a path.
	KindPath
)

// PathPrefix tags path values inside their persisted string form.
const PathPrefix = "PathObject:"

// ErrUnsupportedValue is returned when a Go value or a persisted value cannot
// be represented as a configuration [Value].
var ErrUnsupportedValue = errors.New("unsupported configuration value")

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindPath:
		return "path"
	default:
		return "invalid"
	}
}

// Value is a single configuration scalar. Values are comparable with ==.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

// Int returns an integer Value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float returns a floating point Value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// String returns a text Value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Path returns a path Value.
func Path(p string) Value { return Value{kind: KindPath, s: p} }

// Kind reports the kind of v.
func (v Value) Kind() Kind { return v.kind }

// Equal reports whether v and o have the same kind and payload.
func (v Value) Equal(o Value) bool { return v == o }

// IsValid reports whether v was built by one of the constructors.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

func (v Value) AsInt() (int64, bool)     { return v.i, v.kind == KindInt }
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }
func (v Value) AsBool() (bool, bool)     { return v.b, v.kind == KindBool }
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }
func (v Value) AsPath() (string, bool)   { return v.s, v.kind == KindPath }

// Interface returns the payload as a plain Go value: int64, float64, bool or
// string. Paths are returned as their string form.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	case KindString, KindPath:
		return v.s
	default:
		return nil
	}
}

// String formats v for display.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString, KindPath:
		return v.s
	default:
		return "<invalid>"
	}
}

// ValueOf converts a Go scalar into a Value.
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case Value:
		return t, nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint:
		return uintValue(uint64(t))
	case uint64:
		return uintValue(t)
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, x)
	}
}

func uintValue(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: %d overflows int64", ErrUnsupportedValue, u)
	}
	return Int(int64(u)), nil
}

// ParseValue interprets command-line text: integers become Int values,
// anything else is kept as a String.
func ParseValue(s string) Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}
	return String(s)
}

// EncodeString returns the persisted string form of a String or Path value.
func EncodeString(v Value) string {
	if v.kind == KindPath {
		return PathPrefix + v.s
	}
	return v.s
}

// DecodeString is the inverse of [EncodeString].
func DecodeString(s string) Value {
	if p, ok := strings.CutPrefix(s, PathPrefix); ok {
		return Path(p)
	}
	return String(s)
}
