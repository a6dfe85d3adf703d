// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// GenerationTimeLayout is the layout of [TokenRecord.GenerationTime].
const GenerationTimeLayout = "2006-01-02 15:04:05.000000"

// TokenRecord describes one issued provisioning token. Records are appended
// to the token file and never modified afterwards.
type TokenRecord struct {
	// UUID is the server-assigned identifier of the provisioned endpoint.
	UUID string `yaml:"uuid"`

	// FriendlyName is the label entered for the endpoint.
	FriendlyName string `yaml:"friendlyName"`

	// GenerationTime is the local time the token was received, formatted
	// with [GenerationTimeLayout].
	GenerationTime string `yaml:"generationTime"`

	// Token is the opaque credential string returned by the service.
	Token string `yaml:"token"`

	// Extra keeps keys added to a record by hand so rewriting the file does
	// not drop them. It is nil for records built by [NewTokenRecord].
	Extra map[string]any `yaml:",inline"`
}

// NewTokenRecord builds a record stamped with at.
func NewTokenRecord(endpoint Endpoint, friendlyName, token string, at time.Time) TokenRecord {
	return TokenRecord{
		UUID:           endpoint.UUID,
		FriendlyName:   friendlyName,
		GenerationTime: at.Format(GenerationTimeLayout),
		Token:          token,
	}
}

// TokenFile is the document stored in the token output file.
type TokenFile struct {
	Tokens []TokenRecord `yaml:"tokens"`

	// Extra keeps top-level keys other than "tokens" so rewriting the file
	// does not drop them.
	Extra map[string]any `yaml:",inline"`
}
