// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to the
// device-management API.
//
// The primary abstraction is [CloudAdapter], which decouples the
// provisioning service from HTTP. The package ships an HTTP/REST
// implementation built on resty ([NewHTTPCloudAdapter]).
//
// Non-success statuses are mapped by mapHTTPError to [ErrHTTPStatus] plus a
// status-specific sentinel (e.g. [ErrUnauthorized] for 401), so callers use
// [errors.Is] instead of inspecting status codes. Faults below HTTP are
// reported as [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-endpoint-provisioner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cloud_adapter_mock.go -package=mock

// CloudAdapter defines the three calls a provisioning run makes. None of
// them retries.
type CloudAdapter interface {
	// CreateEndpoint registers a new endpoint labelled friendlyName and
	// returns the entity the server created, including its UUID.
	CreateEndpoint(ctx context.Context, friendlyName string) (models.Endpoint, error)

	// UpdateEndpoint replaces the endpoint identified by endpoint.UUID with
	// endpoint.
	UpdateEndpoint(ctx context.Context, endpoint models.Endpoint) error

	// ProvisionToken requests a provisioning token for the endpoint uuid,
	// passing props through to the server. The response body is returned
	// verbatim as the token.
	ProvisionToken(ctx context.Context, uuid string, props models.CustomProperties) (string, error)
}
