package config

import (
	"fmt"
	"time"
)

// ClientFiles holds the files a provisioning run reads and writes.
type ClientFiles struct {
	// ConfigPath is the provisioning document.
	ConfigPath string
	// SchemaPath is the schema document; empty selects [DefaultSchema].
	// A missing [DefaultSchemaPath] falls back to it as well.
	SchemaPath string
	// OutputPath is the token file.
	OutputPath string
}

// ClientAdapter holds settings of the HTTP client.
type ClientAdapter struct {
	// VerifyTLS turns on server certificate verification.
	VerifyTLS bool
	// RequestTimeout bounds each request; zero means none.
	RequestTimeout time.Duration
}

// ClientApp holds run-level options.
type ClientApp struct {
	// FriendlyName, when non-empty, is used instead of prompting.
	FriendlyName string
	// CopyToken copies the issued token to the clipboard.
	CopyToken bool
	// PlainPrompt selects the line prompt on terminals too.
	PlainPrompt bool
}

// ClientLog holds logger settings.
type ClientLog struct {
	// Path is the log file.
	Path string
	// Level is a zerolog level name.
	Level string
}

// ClientConfig is the settings view consumed by the provisioner runtime,
// assembled from [StructuredConfig].
type ClientConfig struct {
	Files   ClientFiles
	Adapter ClientAdapter
	App     ClientApp
	Log     ClientLog
}

// GetClientConfig builds and validates the client settings from the
// settings file, environment and args.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.ClientConfig(), nil
}

// ClientConfig maps the merged settings to a [ClientConfig].
func (cfg *StructuredConfig) ClientConfig() *ClientConfig {
	return &ClientConfig{
		Files: ClientFiles{
			ConfigPath: cfg.Files.ConfigPath,
			SchemaPath: cfg.Files.SchemaPath,
			OutputPath: cfg.Files.OutputPath,
		},
		Adapter: ClientAdapter{
			VerifyTLS:      cfg.Adapter.VerifyTLS,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		App: ClientApp{
			FriendlyName: cfg.App.FriendlyName,
			CopyToken:    cfg.App.CopyToken,
			PlainPrompt:  cfg.App.PlainPrompt,
		},
		Log: ClientLog{
			Path:  cfg.Files.LogPath,
			Level: cfg.App.LogLevel,
		},
	}
}
