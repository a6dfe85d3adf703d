// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCustomProperties_WithClientCert(t *testing.T) {
	tests := []struct {
		name  string
		props CustomProperties
		uuid  string
		want  string
	}{
		{"trailing slash prefix", CustomProperties{ClientCertProperty: "/certs/"}, "abc-123", "/certs/abc-123.p12"},
		{"no separator is added", CustomProperties{ClientCertProperty: "/certs"}, "abc-123", "/certsabc-123.p12"},
		{"empty prefix", CustomProperties{ClientCertProperty: ""}, "abc-123", "abc-123.p12"},
		{"missing property", CustomProperties{}, "abc-123", "abc-123.p12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.props.WithClientCert(tt.uuid)
			assert.Equal(t, tt.want, got[ClientCertProperty])
		})
	}
}

func TestCustomProperties_WithClientCert_DoesNotAlias(t *testing.T) {
	props := CustomProperties{
		ClientCertProperty:                 "/certs/",
		"ch.hevs.cloudio.endpoint.hostUri": "mqtt.example.com",
	}

	got := props.WithClientCert("abc-123")
	got["ch.hevs.cloudio.endpoint.hostUri"] = "changed"

	assert.Equal(t, "/certs/", props[ClientCertProperty])
	assert.Equal(t, "mqtt.example.com", props["ch.hevs.cloudio.endpoint.hostUri"])
	assert.Equal(t, "/certs/abc-123.p12", got[ClientCertProperty])
}

func TestCustomProperties_ClientCert(t *testing.T) {
	v, ok := CustomProperties{ClientCertProperty: "/certs/"}.ClientCert()
	assert.True(t, ok)
	assert.Equal(t, "/certs/", v)

	_, ok = CustomProperties{}.ClientCert()
	assert.False(t, ok)

	_, ok = CustomProperties{ClientCertProperty: 42}.ClientCert()
	assert.False(t, ok, "a non-string path is not a prefix")
}

func TestCustomProperties_KeepScalarTypes(t *testing.T) {
	const doc = `
ch.hevs.cloudio.endpoint.ssl.clientCert: /certs/
ch.hevs.cloudio.endpoint.ssl.verifyHostname: false
ch.hevs.cloudio.endpoint.port: 8883
ch.hevs.cloudio.endpoint.qos: 1.5
`
	var props CustomProperties
	require.NoError(t, yaml.Unmarshal([]byte(doc), &props))

	body, err := json.Marshal(ProvisionTokenRequest{CustomProperties: props.WithClientCert("abc-123")})
	require.NoError(t, err)

	assert.JSONEq(t, `{"customProperties": {
		"ch.hevs.cloudio.endpoint.ssl.clientCert": "/certs/abc-123.p12",
		"ch.hevs.cloudio.endpoint.ssl.verifyHostname": false,
		"ch.hevs.cloudio.endpoint.port": 8883,
		"ch.hevs.cloudio.endpoint.qos": 1.5
	}}`, string(body))
}
