// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the merged [StructuredConfig] can be used.
func (cfg *StructuredConfig) validate() error {
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	if cfg.Storage.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %s", ErrInvalidStorageConfigs, cfg.Storage.Timeout)
	}

	for name := range cfg.Source.Overrides {
		if name == "" {
			return fmt.Errorf("%w: override with empty name", ErrInvalidSourceConfigs)
		}
	}

	return nil
}
