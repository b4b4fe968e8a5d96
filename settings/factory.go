// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"context"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/go-utils/internal/logger"
	"github.com/MKhiriev/go-utils/internal/store"
	"github.com/MKhiriev/go-utils/models"
)

// BackendFactory builds the backend of a source.
type BackendFactory func(source string, log *logger.Logger) (Backend, error)

var (
	backendsMu sync.RWMutex
	backends   = map[string]BackendFactory{
		".toml": func(source string, log *logger.Logger) (Backend, error) {
			return store.NewTOMLFileBackend(source, log), nil
		},
		".ini": newDatabaseBackend,
		".txt": newDatabaseBackend,
	}
)

func newDatabaseBackend(source string, log *logger.Logger) (Backend, error) {
	return store.NewDatabaseBackend(source, log), nil
}

// RegisterBackend maps a file extension such as ".yaml" to a backend factory.
// An existing mapping is replaced.
func RegisterBackend(ext string, factory BackendFactory) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends[strings.ToLower(ext)] = factory
}

// SupportedExtensions returns the registered extensions in ascending order.
func SupportedExtensions() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()

	exts := make([]string, 0, len(backends))
	for ext := range backends {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// NewBackend returns the backend registered for the extension of source.
func NewBackend(source string, log *logger.Logger) (Backend, error) {
	ext := strings.ToLower(filepath.Ext(source))

	backendsMu.RLock()
	factory, ok := backends[ext]
	backendsMu.RUnlock()

	if !ok {
		return nil, &UnsupportedSourceError{
			Source:    source,
			Ext:       filepath.Ext(source),
			Supported: SupportedExtensions(),
		}
	}
	return factory(source, log)
}

// Create builds a Config for source: it picks the backend, runs extension
// setup, merges the backend values and applies overrides on top.
func Create(ctx context.Context, source string, overrides models.Parameters, opts ...Option) (*Config, error) {
	o := newOptions(ctx, opts)

	backend, err := NewBackend(source, o.logger)
	if err != nil {
		o.logger.Err(err).Str("func", "settings.Create").Msg("no backend for source")
		return nil, err
	}

	cfg, err := New(ctx, source, backend, opts...)
	if err != nil {
		closeBackend(backend)
		return nil, err
	}

	if err = cfg.FinalizeWithBackendValues(ctx); err != nil {
		closeBackend(backend)
		return nil, err
	}

	if err = cfg.AddOverrides(overrides); err != nil {
		closeBackend(backend)
		return nil, err
	}

	cfg.logger.Info().Int("count", len(cfg.values)).Int("overrides", len(overrides)).Msg("configuration created")
	return cfg, nil
}

func closeBackend(b Backend) {
	if closer, ok := b.(io.Closer); ok {
		_ = closer.Close()
	}
}

// Option customizes [New] and [Create].
type Option func(*options)

type options struct {
	logger     *logger.Logger
	extensions []Extension
}

func newOptions(ctx context.Context, opts []Option) options {
	o := options{logger: logger.FromContext(ctx)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger. The default is the logger attached to the
// context passed to [New] or [Create], if any.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithExtensions appends extensions whose Setup runs during construction.
func WithExtensions(exts ...Extension) Option {
	return func(o *options) {
		o.extensions = append(o.extensions, exts...)
	}
}
