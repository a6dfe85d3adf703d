// Package store persists issued provisioning tokens.
//
// The only backend is a YAML file rewritten on every append. Concurrent
// writers are not coordinated: one provisioner instance is expected to use a
// given output file at a time.
package store

import (
	"context"

	"github.com/MKhiriev/go-endpoint-provisioner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/token_store_mock.go -package=mock

// TokenStore records issued tokens.
type TokenStore interface {
	// Append adds record to the end of the stored token list, creating the
	// backing storage when it does not exist yet.
	Append(ctx context.Context, record models.TokenRecord) error

	// Load returns the stored document. Absent or empty storage yields a
	// document with no tokens.
	Load(ctx context.Context) (models.TokenFile, error)

	// Path reports where the tokens are stored.
	Path() string
}
