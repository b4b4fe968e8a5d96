// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-utils/internal/logger"
	"github.com/MKhiriev/go-utils/models"
)

// Config is the merged view of a configuration source and its overrides.
//
// The struct fields double as the configuration object's own reserved names:
// a parameter called "config_file", "backend", "data" or
// "reserved_attribute_names" is rejected. A Config is not safe for concurrent
// mutation.
type Config struct {
	source   string            `reserved:"config_file"`
	backend  Backend           `reserved:"backend"`
	values   models.Parameters `reserved:"data"`
	reserved ReservedNames     `reserved:"reserved_attribute_names"`

	id         string      `reserved:"-"`
	extensions []Extension `reserved:"-"`
	finalized  bool        `reserved:"-"`

	logger *logger.Logger `reserved:"-"`
}

// New runs the setup of every extension and captures the reserved names.
// The returned Config holds no values until [Config.FinalizeWithBackendValues].
func New(ctx context.Context, source string, backend Backend, opts ...Option) (*Config, error) {
	o := newOptions(ctx, opts)

	id := uuid.Must(uuid.NewV7()).String()
	log := &logger.Logger{Logger: o.logger.With().
		Str("config_id", id).
		Str("source", source).
		Logger()}

	c := &Config{
		source:     source,
		backend:    backend,
		values:     make(models.Parameters),
		id:         id,
		extensions: o.extensions,
		logger:     log,
	}

	for _, ext := range c.extensions {
		if err := ext.Setup(ctx, c); err != nil {
			log.Err(err).Str("func", "settings.New").Msgf("extension %T setup failed", ext)
			return nil, fmt.Errorf("extension %T setup: %w", ext, err)
		}
	}

	objs := make([]any, 0, len(c.extensions)+2)
	objs = append(objs, c)
	if namer, ok := backend.(ReservedNamer); ok {
		objs = append(objs, namer)
	}
	for _, ext := range c.extensions {
		objs = append(objs, ext)
	}
	c.reserved = Capture(objs...)

	log.Debug().Strs("reserved", c.reserved.Sorted()).Msg("reserved names captured")
	return c, nil
}

// FinalizeWithBackendValues loads the backend and merges its values. It may
// be called once.
func (c *Config) FinalizeWithBackendValues(ctx context.Context) error {
	if c.finalized {
		return ErrAlreadyFinalized
	}

	params, err := c.backend.Load(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "Config.FinalizeWithBackendValues").Msg("error loading backend values")
		return fmt.Errorf("error loading %s: %w", c.source, err)
	}

	for _, name := range params.Names() {
		if err = c.checkName(name); err != nil {
			c.logger.Err(err).Str("func", "Config.FinalizeWithBackendValues").Str("name", name).Msg("backend value rejected")
			return err
		}
	}
	for name, v := range params {
		c.values[name] = v
	}

	c.finalized = true
	c.logger.Debug().Int("count", len(params)).Msg("backend values merged")
	return nil
}

// AddOverrides merges caller-supplied values over the backend ones. Only
// integers and strings are accepted. Nothing is applied when any override
// is rejected.
func (c *Config) AddOverrides(overrides models.Parameters) error {
	if !c.finalized {
		return ErrNotFinalized
	}

	for _, name := range overrides.Names() {
		switch kind := overrides[name].Kind(); kind {
		case models.KindInt, models.KindString:
		default:
			return fmt.Errorf("%w: %q is of kind %s, want int or string", ErrInvalidOverride, name, kind)
		}
		if err := c.checkName(name); err != nil {
			c.logger.Err(err).Str("func", "Config.AddOverrides").Str("name", name).Msg("override rejected")
			return err
		}
	}

	for name, v := range overrides {
		c.values[name] = v
	}
	return nil
}

func (c *Config) checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty parameter name", ErrInvalidOverride)
	}
	if c.reserved.Contains(name) {
		return &ReservedNameError{Name: name}
	}
	return nil
}

// Get returns the value of name.
func (c *Config) Get(name string) (models.Value, error) {
	v, ok := c.values[name]
	if !ok {
		return models.Value{}, &ParameterNotFoundError{Name: name, Source: c.source}
	}
	return v, nil
}

func (c *Config) lookup(name string, want models.Kind) (models.Value, error) {
	v, err := c.Get(name)
	if err != nil {
		return v, err
	}
	if v.Kind() != want {
		return v, fmt.Errorf("%w: %q is %s, not %s", ErrTypeMismatch, name, v.Kind(), want)
	}
	return v, nil
}

// Int returns the integer value of name.
func (c *Config) Int(name string) (int64, error) {
	v, err := c.lookup(name, models.KindInt)
	i, _ := v.AsInt()
	return i, err
}

// Float returns the floating point value of name.
func (c *Config) Float(name string) (float64, error) {
	v, err := c.lookup(name, models.KindFloat)
	f, _ := v.AsFloat()
	return f, err
}

// Bool returns the boolean value of name.
func (c *Config) Bool(name string) (bool, error) {
	v, err := c.lookup(name, models.KindBool)
	b, _ := v.AsBool()
	return b, err
}

// String returns the text value of name.
func (c *Config) String(name string) (string, error) {
	v, err := c.lookup(name, models.KindString)
	s, _ := v.AsString()
	return s, err
}

// Path returns the path value of name.
func (c *Config) Path(name string) (string, error) {
	v, err := c.lookup(name, models.KindPath)
	p, _ := v.AsPath()
	return p, err
}

// Set assigns a single value after the collision check. Like
// [Config.AddOverrides] it fails with [ErrNotFinalized] before the backend
// values are merged.
func (c *Config) Set(name string, v models.Value) error {
	if !c.finalized {
		return ErrNotFinalized
	}
	if !v.IsValid() {
		return fmt.Errorf("%w: %q", models.ErrUnsupportedValue, name)
	}
	if err := c.checkName(name); err != nil {
		return err
	}
	c.values[name] = v
	return nil
}

func (c *Config) Has(name string) bool {
	_, ok := c.values[name]
	return ok
}

// Names returns the parameter names in ascending order.
func (c *Config) Names() []string { return c.values.Names() }

// Values returns a copy of the merged mapping.
func (c *Config) Values() models.Parameters { return c.values.Clone() }

// Source returns the path the configuration was created from.
func (c *Config) Source() string { return c.source }

// ID returns the identifier attached to the configuration's log entries.
func (c *Config) ID() string { return c.id }

func (c *Config) IsReserved(name string) bool { return c.reserved.Contains(name) }

// Reserved returns the reserved names in ascending order.
func (c *Config) Reserved() []string { return c.reserved.Sorted() }

// Logger returns the configuration's logger, tagged with its id and source.
func (c *Config) Logger() *logger.Logger { return c.logger }

// Describe returns the stored metadata of name.
func (c *Config) Describe(name string) (models.Parameter, error) {
	d, ok := c.backend.(Describer)
	if !ok {
		return models.Parameter{}, ErrNotDescribable
	}
	if !c.Has(name) {
		return models.Parameter{}, &ParameterNotFoundError{Name: name, Source: c.source}
	}

	p, found := d.Describe(name)
	if !found {
		p = models.Parameter{Name: name}
	}
	return p, nil
}

// Save writes the merged mapping, overrides included, through the backend.
func (c *Config) Save(ctx context.Context) error {
	if err := c.backend.Save(ctx, c.values.Clone()); err != nil {
		c.logger.Err(err).Str("func", "Config.Save").Msg("error saving configuration")
		return fmt.Errorf("error saving %s: %w", c.source, err)
	}
	c.logger.Info().Int("count", len(c.values)).Msg("configuration saved")
	return nil
}

// Close releases the backend when it holds resources.
func (c *Config) Close() error {
	if closer, ok := c.backend.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
