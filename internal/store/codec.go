// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-utils/models"
)

// EncodeJSONValue renders v as the JSON text stored in the value column.
// Paths become JSON strings carrying [models.PathPrefix]; whole floats keep a
// decimal point so they decode as floats again.
func EncodeJSONValue(v models.Value) (string, error) {
	switch v.Kind() {
	case models.KindString, models.KindPath:
		data, err := json.Marshal(models.EncodeString(v))
		if err != nil {
			return "", fmt.Errorf("error encoding value: %w", err)
		}
		return string(data), nil
	case models.KindInt, models.KindBool:
		data, err := json.Marshal(v.Interface())
		if err != nil {
			return "", fmt.Errorf("error encoding value: %w", err)
		}
		return string(data), nil
	case models.KindFloat:
		f, _ := v.AsFloat()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%w: %v has no JSON form", models.ErrUnsupportedValue, f)
		}
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s, nil
	default:
		return "", fmt.Errorf("%w: kind %s", models.ErrUnsupportedValue, v.Kind())
	}
}

// DecodeJSONValue is the inverse of [EncodeJSONValue].
func DecodeJSONValue(raw string) (models.Value, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return models.Value{}, fmt.Errorf("error decoding value %q: %w", raw, err)
	}

	switch t := payload.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return models.Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return models.Value{}, fmt.Errorf("error decoding number %q: %w", raw, err)
		}
		return models.Float(f), nil
	case string:
		return models.DecodeString(t), nil
	case bool:
		return models.Bool(t), nil
	default:
		return models.Value{}, fmt.Errorf("%w: JSON %s", models.ErrUnsupportedValue, raw)
	}
}
