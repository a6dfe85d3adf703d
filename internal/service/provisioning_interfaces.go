package service

import (
	"context"

	"github.com/MKhiriev/go-endpoint-provisioner/models"
)

// FriendlyNameLabel is the prompt shown when no friendly name was configured.
const FriendlyNameLabel = "Enter a friendlyName: "

// ProvisioningService runs the provisioning sequence for one endpoint.
type ProvisioningService interface {
	// Provision creates an endpoint, applies the configured settings to it,
	// obtains a provisioning token and records it. Steps run strictly in that
	// order and the first failure stops the sequence; remote changes already
	// made are not rolled back.
	Provision(ctx context.Context, p models.Provisioning) (models.TokenRecord, error)
}
