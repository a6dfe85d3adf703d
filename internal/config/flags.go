package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// ParseFlags parses the provisioner's command-line flags. args must not
// include the program name.
//
// Flags:
//
//	-c/--config           provisioning document path
//	-s/--schema           JSON Schema path (YAML)
//	-o/--output           token output file path
//	-n/--name             endpoint friendly name (skips the prompt)
//	--settings            YAML settings file path
//	--verify-tls          verify the server TLS certificate
//	--request-timeout     per-request timeout (e.g. "30s"), 0 disables it
//	--copy                copy the issued token to the clipboard
//	--plain               use the line prompt even on a terminal
//	--log-file            log file path
//	--log-level           log level (debug, info, warn, error)
//
// Returns [pflag.ErrHelp] (wrapped) when -h/--help is given.
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	flagSet := pflag.NewFlagSet("provisioner", pflag.ContinueOnError)
	flagSet.SetOutput(os.Stderr)

	flagSet.StringVarP(&cfg.Files.ConfigPath, "config", "c", "", "provisioning config file (default "+DefaultConfigPath+")")
	flagSet.StringVarP(&cfg.Files.SchemaPath, "schema", "s", "", "config schema file (default "+DefaultSchemaPath+", built-in schema when absent)")
	flagSet.StringVarP(&cfg.Files.OutputPath, "output", "o", "", "token output file (default "+DefaultOutputPath+")")
	flagSet.StringVarP(&cfg.App.FriendlyName, "name", "n", "", "endpoint friendly name, skips the prompt")
	flagSet.StringVar(&cfg.SettingsFilePath, "settings", "", "YAML settings file")
	flagSet.BoolVar(&cfg.Adapter.VerifyTLS, "verify-tls", false, "verify the server TLS certificate")
	flagSet.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "per-request timeout (e.g. 30s), 0 disables it")
	flagSet.BoolVar(&cfg.App.CopyToken, "copy", false, "copy the issued token to the clipboard")
	flagSet.BoolVar(&cfg.App.PlainPrompt, "plain", false, "use a plain line prompt even on a terminal")
	flagSet.StringVar(&cfg.Files.LogPath, "log-file", "", "log file (default "+DefaultLogPath+")")
	flagSet.StringVar(&cfg.App.LogLevel, "log-level", "", "log level: debug, info, warn, error (default "+DefaultLogLevel+")")

	if err := flagSet.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if rest := flagSet.Args(); len(rest) > 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnexpectedArgument, rest[0])
	}

	return cfg, nil
}
