// Package config loads everything the provisioner reads before it talks to
// the remote service.
//
// Two kinds of configuration live here:
//
//   - tool settings ([StructuredConfig], [ClientConfig]): file locations,
//     TLS and timeout options, logging. They are assembled from a YAML
//     settings file, environment variables and command-line flags; later
//     sources override earlier non-zero fields:
//     1. settings file
//     2. environment variables (PROVISIONER_ prefix)
//     3. command-line flags
//     Defaults fill whatever is still empty.
//
//   - the provisioning document ([Document]) describing the endpoint to
//     create, together with the JSON Schema ([Schema]) it must satisfy.
//
// The main entry points are [GetClientConfig], [LoadDocument], [LoadSchema]
// and [Schema.Validate].
package config
