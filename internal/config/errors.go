package config

import "errors"

// Settings errors returned while building [ClientConfig].
var (
	// ErrUnexpectedArgument indicates a positional argument; the
	// provisioner only takes flags.
	ErrUnexpectedArgument = errors.New("unexpected argument")

	// ErrInvalidFilesConfigs indicates an empty config or output path.
	ErrInvalidFilesConfigs = errors.New("invalid files configuration")

	// ErrInvalidAdapterConfigs indicates invalid HTTP client settings
	// (for example, a negative request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidAppConfigs indicates invalid run-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)

// Provisioning document errors. Each of them aborts the run before any
// request is sent.
var (
	// ErrConfigParse indicates the provisioning document could not be read
	// or is not well-formed YAML.
	ErrConfigParse = errors.New("cannot read config file")

	// ErrSchemaParse indicates the schema document could not be read or is
	// not well-formed YAML.
	ErrSchemaParse = errors.New("cannot read config schema file")

	// ErrSchemaDefinition indicates the schema is not a valid JSON Schema.
	ErrSchemaDefinition = errors.New("the config schema file format is not valid")

	// ErrConfigValidation indicates the provisioning document does not
	// conform to the schema.
	ErrConfigValidation = errors.New("the config file format is not valid")
)
