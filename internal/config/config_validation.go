// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig] before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Files.ConfigPath == "" || cfg.Files.OutputPath == "" {
		return ErrInvalidFilesConfigs
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout %s", ErrInvalidAdapterConfigs, cfg.Adapter.RequestTimeout)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
	}

	return nil
}
