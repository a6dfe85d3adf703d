// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the operator-facing wording of provisioning failures.
//
// All Msg* constants are short human-readable headlines printed to stderr
// above the full error chain. Keeping them in one place ensures consistent
// wording between the runtime and its documentation.
package app

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-endpoint-provisioner/internal/adapter"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/config"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/service"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/store"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/tui"
)

const (
	// MsgConfigParse is shown when the provisioning document cannot be read
	// or is not well-formed YAML.
	MsgConfigParse = "Cannot read config file"

	// MsgSchemaParse is shown when the schema document cannot be read or is
	// not well-formed YAML.
	MsgSchemaParse = "Cannot read config schema file"

	// MsgSchemaDefinition is shown when the schema document is not a valid
	// JSON Schema.
	MsgSchemaDefinition = "The config_schema file format is not valid"

	// MsgConfigValidation is shown when the provisioning document does not
	// conform to the schema.
	MsgConfigValidation = "The config file format is not valid"

	// MsgMissingClientCert is shown when customProperties lacks the
	// client-certificate path.
	MsgMissingClientCert = "The config file has no client certificate path"

	// MsgFriendlyName is shown when no friendly name could be read.
	MsgFriendlyName = "No friendlyName was entered"

	MsgCreateEndpoint = "Error while creating endpoint"
	MsgUpdateEndpoint = "Error while modifying endpoints data"
	MsgProvisionToken = "Error while generating token"

	// MsgOutputParse and MsgOutputWrite are shown when the token file cannot
	// be updated. The token was issued and is printed above.
	MsgOutputParse = "Cannot read tokens output file"
	MsgOutputWrite = "Cannot write tokens output file"

	// MsgServerUnavailable is appended when the server could not be reached.
	MsgServerUnavailable = "Network unavailable or server unreachable"

	MsgUnexpected = "Provisioning failed"
)

// messages is checked in order; the first match wins. Store errors come
// before the service step that wraps them.
var messages = []struct {
	target error
	msg    string
}{
	{config.ErrConfigParse, MsgConfigParse},
	{config.ErrSchemaParse, MsgSchemaParse},
	{config.ErrSchemaDefinition, MsgSchemaDefinition},
	{config.ErrConfigValidation, MsgConfigValidation},
	{service.ErrMissingClientCert, MsgMissingClientCert},
	{service.ErrFriendlyName, MsgFriendlyName},
	{store.ErrOutputParse, MsgOutputParse},
	{store.ErrOutputWrite, MsgOutputWrite},
	{service.ErrCreateEndpoint, MsgCreateEndpoint},
	{service.ErrUpdateEndpoint, MsgUpdateEndpoint},
	{service.ErrProvisionToken, MsgProvisionToken},
}

// UserMessage returns the headline for err. Quitting the prompt yields an
// empty string: the operator already knows.
func UserMessage(err error) string {
	if err == nil || errors.Is(err, tui.ErrUserQuit) {
		return ""
	}

	msg := MsgUnexpected
	for _, m := range messages {
		if errors.Is(err, m.target) {
			msg = m.msg
			break
		}
	}

	if serverUnavailable(err) {
		msg += ": " + MsgServerUnavailable
	}

	return msg
}

func serverUnavailable(err error) bool {
	if !errors.Is(err, adapter.ErrTransport) {
		return false
	}

	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
