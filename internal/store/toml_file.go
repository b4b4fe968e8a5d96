// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/MKhiriev/go-utils/internal/logger"
	"github.com/MKhiriev/go-utils/models"
)

// TOMLFileBackend persists a flat set of parameters in a TOML file.
//
// Save rewrites the original file line by line: comments, blank lines and
// lines of untouched keys are written back verbatim, changed keys get a
// freshly encoded line and new keys are appended.
type TOMLFileBackend struct {
	path   string
	loaded models.Parameters
	logger *logger.Logger
}

// NewTOMLFileBackend constructs a backend over the TOML file at path. The file
// is not read until Load is called.
func NewTOMLFileBackend(path string, log *logger.Logger) *TOMLFileBackend {
	if log == nil {
		log = logger.Nop()
	}
	return &TOMLFileBackend{path: path, logger: log}
}

// Load parses the file into a flat mapping.
func (b *TOMLFileBackend) Load(ctx context.Context) (models.Parameters, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(b.path)
	if err != nil {
		b.logger.Err(err).Str("func", "TOMLFileBackend.Load").Str("path", b.path).Msg("error reading toml file")
		return nil, fmt.Errorf("error reading toml file: %w", err)
	}

	var raw map[string]any
	if _, err = toml.Decode(string(data), &raw); err != nil {
		b.logger.Err(err).Str("func", "TOMLFileBackend.Load").Str("path", b.path).Msg("error decoding toml file")
		return nil, fmt.Errorf("error decoding toml file %s: %w", b.path, err)
	}

	params := make(models.Parameters, len(raw))
	for name, value := range raw {
		v, convErr := fromTOML(name, value)
		if convErr != nil {
			return nil, convErr
		}
		params[name] = v
	}

	b.loaded = params.Clone()
	b.logger.Debug().Str("path", b.path).Int("count", len(params)).Msg("toml parameters loaded")

	return params, nil
}

// Save writes params back into the file.
func (b *TOMLFileBackend) Save(ctx context.Context, params models.Parameters) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	perm := fs.FileMode(0o644)
	original, err := os.ReadFile(b.path)
	switch {
	case err == nil:
		if info, statErr := os.Stat(b.path); statErr == nil {
			perm = info.Mode().Perm()
		}
	case errors.Is(err, fs.ErrNotExist):
		original = nil
	default:
		return fmt.Errorf("error reading toml file: %w", err)
	}

	content, err := b.render(string(original), params)
	if err != nil {
		return err
	}

	if err = os.WriteFile(b.path, []byte(content), perm); err != nil {
		b.logger.Err(err).Str("func", "TOMLFileBackend.Save").Str("path", b.path).Msg("error writing toml file")
		return fmt.Errorf("error writing toml file: %w", err)
	}

	b.loaded = params.Clone()
	return nil
}

// render produces the new file content from the original one.
func (b *TOMLFileBackend) render(original string, params models.Parameters) (string, error) {
	lines := strings.SplitAfter(original, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	out := make([]string, 0, len(lines)+len(params))
	saved := make(map[string]bool, len(params))
	insertAt := -1

	// open is the multi-line string delimiter still open after the previous
	// line; dropping is set while the body of a rewritten value is skipped.
	open := ""
	dropping := false

	for _, line := range lines {
		if open != "" {
			open = scanMultiline(line, open)
			if !dropping {
				out = append(out, line)
			}
			if open == "" {
				dropping = false
			}
			continue
		}

		next := scanMultiline(line, "")
		if insertAt < 0 && isTableHeader(line) {
			insertAt = len(out)
		}
		if insertAt >= 0 {
			out = append(out, line)
			open = next
			continue
		}

		name, ok := lineKey(line)
		value, present := params[name]
		if !ok || !present {
			out = append(out, line)
			open = next
			continue
		}
		saved[name] = true

		if b.unchanged(name, line, value) {
			out = append(out, line)
			open = next
			continue
		}

		encoded, err := encodeTOMLLine(name, value)
		if err != nil {
			return "", err
		}
		out = append(out, encoded+lineEnding(line))
		open = next
		dropping = next != ""
	}

	eol := fileLineEnding(lines)
	var added []string
	for _, name := range params.Names() {
		if saved[name] {
			continue
		}
		encoded, err := encodeTOMLLine(name, params[name])
		if err != nil {
			return "", err
		}
		added = append(added, encoded+eol)
	}

	if insertAt < 0 {
		if n := len(out); n > 0 && len(added) > 0 && lineEnding(out[n-1]) == "" {
			out[n-1] += eol
		}
		out = append(out, added...)
	} else {
		out = append(out[:insertAt], append(added, out[insertAt:]...)...)
	}

	return strings.Join(out, ""), nil
}

// unchanged reports whether line already holds value. The snapshot taken by
// Load is authoritative; without one the line itself is parsed.
func (b *TOMLFileBackend) unchanged(name, line string, value models.Value) bool {
	if old, ok := b.loaded[name]; ok {
		return old == value
	}

	var raw map[string]any
	if _, err := toml.Decode(line, &raw); err != nil {
		return false
	}
	current, ok := raw[name]
	if !ok {
		return false
	}
	v, err := fromTOML(name, current)
	return err == nil && v == value
}

func fromTOML(name string, value any) (models.Value, error) {
	switch t := value.(type) {
	case int64:
		return models.Int(t), nil
	case float64:
		return models.Float(t), nil
	case bool:
		return models.Bool(t), nil
	case string:
		return models.DecodeString(t), nil
	default:
		return models.Value{}, fmt.Errorf("%w: key %q holds a TOML %T", models.ErrUnsupportedValue, name, value)
	}
}

func toTOML(v models.Value) (any, error) {
	switch v.Kind() {
	case models.KindString, models.KindPath:
		return models.EncodeString(v), nil
	case models.KindInt, models.KindFloat, models.KindBool:
		return v.Interface(), nil
	default:
		return nil, fmt.Errorf("%w: kind %s", models.ErrUnsupportedValue, v.Kind())
	}
}

// encodeTOMLLine renders a single `name = value` line without line ending.
func encodeTOMLLine(name string, v models.Value) (string, error) {
	payload, err := toTOML(v)
	if err != nil {
		return "", fmt.Errorf("error encoding %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err = toml.NewEncoder(&buf).Encode(map[string]any{name: payload}); err != nil {
		return "", fmt.Errorf("error encoding %q: %w", name, err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// lineKey extracts the key of a `key = value` line. Comments, blank lines
// and table headers have no key.
func lineKey(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
		return "", false
	}

	key, _, found := strings.Cut(trimmed, "=")
	if !found {
		return "", false
	}
	key = strings.TrimSpace(key)
	if len(key) >= 2 && (key[0] == '"' || key[0] == '\'') && key[len(key)-1] == key[0] {
		key = key[1 : len(key)-1]
	}
	return key, key != ""
}

// scanMultiline returns the multi-line string delimiter (""" or ''') still
// open at the end of line, given the one open at its start.
func scanMultiline(line, open string) string {
	for i := 0; i < len(line); {
		if open != "" {
			if open == `"""` && line[i] == '\\' {
				i += 2
				continue
			}
			if strings.HasPrefix(line[i:], open) {
				// up to two quotes may precede the closing delimiter
				i += len(open)
				for i < len(line) && line[i] == open[0] {
					i++
				}
				open = ""
				continue
			}
			i++
			continue
		}

		switch c := line[i]; {
		case c == '#':
			return ""
		case strings.HasPrefix(line[i:], `"""`), strings.HasPrefix(line[i:], "'''"):
			open = line[i : i+3]
			i += 3
		case c == '"' || c == '\'':
			i = skipQuoted(line, i)
		default:
			i++
		}
	}
	return open
}

// skipQuoted returns the index just past the single-line string starting at i.
func skipQuoted(line string, i int) int {
	quote := line[i]
	for j := i + 1; j < len(line); j++ {
		switch {
		case quote == '"' && line[j] == '\\':
			j++
		case line[j] == quote:
			return j + 1
		}
	}
	return len(line)
}

func isTableHeader(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "[")
}

// fileLineEnding returns the ending of the last terminated line, "\n" when
// there is none.
func fileLineEnding(lines []string) string {
	for i := len(lines) - 1; i >= 0; i-- {
		if eol := lineEnding(lines[i]); eol != "" {
			return eol
		}
	}
	return "\n"
}

func lineEnding(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	default:
		return ""
	}
}
