// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// parseSettingsFile decodes a YAML settings file into a [StructuredConfig].
// Durations are written as Go duration strings ("30s", "1m").
func parseSettingsFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading settings file: %w", err)
	}

	cfg := &StructuredConfig{}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error decoding settings file: %w", err)
	}

	return cfg, nil
}
