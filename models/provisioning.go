// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "maps"

// ClientCertProperty is the custom property holding the path of the client
// certificate the provisioned endpoint will use. The configured value is a
// prefix; the endpoint UUID and ".p12" are appended to it verbatim.
const ClientCertProperty = "ch.hevs.cloudio.endpoint.ssl.clientCert"

// ClientCertSuffix is appended after the endpoint UUID in the client
// certificate path.
const ClientCertSuffix = ".p12"

// Provisioning is the typed view of the provisioning configuration document.
// It is loaded once per run and never mutated afterwards.
type Provisioning struct {
	// Host is the base URL of the device-management API
	// (e.g. "https://cloudio.example.com").
	Host string `yaml:"host"`

	// Username and Password are the HTTP Basic credentials used for every
	// API call.
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// Metadata is a free-form mapping copied into the endpoint's metaData.
	Metadata map[string]any `yaml:"metadata"`

	// Banned is copied into the endpoint's banned flag.
	Banned bool `yaml:"banned"`

	// EndpointGroups lists the endpoint groups the endpoint becomes a member of.
	EndpointGroups []string `yaml:"endpointGroups"`

	// CustomProperties are forwarded to the token endpoint.
	CustomProperties CustomProperties `yaml:"customProperties"`
}

// CustomProperties is a free-form key/value mapping passed through to the
// remote service when a provisioning token is requested. Values keep the
// scalar type they were configured with.
type CustomProperties map[string]any

// ClientCert returns the configured client certificate path prefix and
// whether it is present as a string.
func (c CustomProperties) ClientCert() (string, bool) {
	v, ok := c[ClientCertProperty].(string)
	return v, ok
}

// WithClientCert returns a copy of c in which the client certificate path is
// extended with uuid and [ClientCertSuffix]. The concatenation is literal:
// no separator is inserted, so "/certs/" + "abc-123" yields
// "/certs/abc-123.p12". The receiver is left untouched.
func (c CustomProperties) WithClientCert(uuid string) CustomProperties {
	out := make(CustomProperties, len(c)+1)
	maps.Copy(out, c)
	prefix, _ := c.ClientCert()
	out[ClientCertProperty] = prefix + uuid + ClientCertSuffix
	return out
}
