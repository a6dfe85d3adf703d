// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level container for the provisioner's tool
// settings. It is populated by merging a YAML settings file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//   - yaml      — key in the settings file.
type StructuredConfig struct {
	// Files holds the locations of the provisioning document, its schema,
	// the token output file and the log file.
	Files Files `envPrefix:"FILES_" yaml:"files"`

	// Adapter holds options of the HTTP client talking to the
	// device-management API.
	Adapter Adapter `envPrefix:"ADAPTER_" yaml:"adapter"`

	// App holds run-level options.
	App App `envPrefix:"APP_" yaml:"app"`

	// SettingsFilePath is the optional path to a YAML settings file.
	// Populated via PROVISIONER_SETTINGS or the --settings flag.
	SettingsFilePath string `env:"SETTINGS" yaml:"-"`
}

// Files groups file-system locations.
type Files struct {
	// ConfigPath is the provisioning document (default "config.yaml").
	// Env: PROVISIONER_FILES_CONFIG_PATH
	ConfigPath string `env:"CONFIG_PATH" yaml:"config_path"`

	// SchemaPath is the JSON Schema (in YAML) the provisioning document is
	// validated against (default "config_schema.yaml"). When the default file
	// does not exist the schema built into the binary is used.
	// Env: PROVISIONER_FILES_SCHEMA_PATH
	SchemaPath string `env:"SCHEMA_PATH" yaml:"schema_path"`

	// OutputPath is the token file records are appended to
	// (default "tokens.yaml").
	// Env: PROVISIONER_FILES_OUTPUT_PATH
	OutputPath string `env:"OUTPUT_PATH" yaml:"output_path"`

	// LogPath is the file JSON log lines are written to
	// (default "provisioner.log").
	// Env: PROVISIONER_FILES_LOG_PATH
	LogPath string `env:"LOG_PATH" yaml:"log_path"`
}

// Adapter holds HTTP client options.
type Adapter struct {
	// VerifyTLS enables server certificate verification. It is off unless
	// explicitly requested.
	// Env: PROVISIONER_ADAPTER_VERIFY_TLS
	VerifyTLS bool `env:"VERIFY_TLS" yaml:"verify_tls"`

	// RequestTimeout bounds every API call (e.g. "30s"). Zero means no
	// timeout.
	// Env: PROVISIONER_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" yaml:"request_timeout"`
}

// App holds run-level options.
type App struct {
	// FriendlyName skips the interactive prompt when set.
	// Env: PROVISIONER_APP_FRIENDLY_NAME
	FriendlyName string `env:"FRIENDLY_NAME" yaml:"friendly_name"`

	// CopyToken copies the issued token to the system clipboard.
	// Env: PROVISIONER_APP_COPY_TOKEN
	CopyToken bool `env:"COPY_TOKEN" yaml:"copy_token"`

	// PlainPrompt forces the line-based prompt even on a terminal.
	// Env: PROVISIONER_APP_PLAIN_PROMPT
	PlainPrompt bool `env:"PLAIN_PROMPT" yaml:"plain_prompt"`

	// LogLevel is a zerolog level name (default "info").
	// Env: PROVISIONER_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" yaml:"log_level"`
}

// Defaults applied after all sources have been merged.
const (
	DefaultConfigPath = "config.yaml"
	DefaultSchemaPath = "config_schema.yaml"
	DefaultOutputPath = "tokens.yaml"
	DefaultLogPath    = "provisioner.log"
	DefaultLogLevel   = "info"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Files: Files{
			ConfigPath: DefaultConfigPath,
			SchemaPath: DefaultSchemaPath,
			OutputPath: DefaultOutputPath,
			LogPath:    DefaultLogPath,
		},
		App: App{LogLevel: DefaultLogLevel},
	}
}

// GetStructuredConfig loads, merges, and validates the tool settings from all
// available sources. args are the command-line arguments without the program
// name.
//
// Returns [pflag.ErrHelp] (wrapped) when help was requested.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withSettingsFile().
		build()
}
