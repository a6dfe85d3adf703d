package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-endpoint-provisioner/internal/config"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/logger"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/utils"
	"github.com/MKhiriev/go-endpoint-provisioner/models"
)

const (
	endpointsPath      = "/api/v1/endpoints"
	endpointPath       = "/api/v1/endpoints/{uuid}"
	provisionTokenPath = "/api/v1/endpoints/{uuid}/provisionToken"
)

type httpCloudAdapter struct {
	client *utils.HTTPClient
}

// NewHTTPCloudAdapter constructs an HTTP/REST implementation of
// [CloudAdapter] for the API at p.Host, authenticating every request with
// HTTP Basic credentials p.Username and p.Password.
//
// Certificate verification is disabled unless adapterCfg.VerifyTLS is set.
// A zero adapterCfg.RequestTimeout leaves requests unbounded.
//
// Returns an error if p.Host is empty or cannot be parsed as a URL.
func NewHTTPCloudAdapter(p models.Provisioning, adapterCfg config.ClientAdapter, logger *logger.Logger) (CloudAdapter, error) {
	baseURL, err := normalizeBaseURL(p.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid host: %w", err)
	}

	client := utils.NewHTTPClient().
		WithInsecureTLS(!adapterCfg.VerifyTLS).
		WithTimeout(adapterCfg.RequestTimeout).
		WithLogging(logger)

	client.
		SetBaseURL(baseURL).
		SetBasicAuth(p.Username, p.Password)

	if !adapterCfg.VerifyTLS {
		logger.Warn().Str("host", baseURL).Msg("TLS certificate verification is disabled")
	}

	return &httpCloudAdapter{client: client}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateEndpoint implements [CloudAdapter]. It POSTs to
// POST /api/v1/endpoints?friendlyName=<name> and decodes the returned
// entity. Returns [ErrInvalidEndpoint] (wrapped) if the body is empty, is
// not an endpoint, or carries no uuid.
func (h *httpCloudAdapter) CreateEndpoint(ctx context.Context, friendlyName string) (models.Endpoint, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam("friendlyName", friendlyName).
		Post(endpointsPath)
	if err != nil {
		return models.Endpoint{}, fmt.Errorf("%w: create endpoint request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Endpoint{}, err
	}

	if len(resp.Body()) == 0 {
		return models.Endpoint{}, fmt.Errorf("%w: empty body (status %d)", ErrInvalidEndpoint, resp.StatusCode())
	}

	var endpoint models.Endpoint
	if err = json.Unmarshal(resp.Body(), &endpoint); err != nil {
		return models.Endpoint{}, fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	if endpoint.UUID == "" {
		return models.Endpoint{}, fmt.Errorf("%w: missing uuid", ErrInvalidEndpoint)
	}
	if !utils.IsUUID(endpoint.UUID) {
		logger.FromContext(ctx).Warn().Str("uuid", endpoint.UUID).Msg("server returned an endpoint id that is not a UUID")
	}

	logger.FromContext(ctx).Debug().
		Str("uuid", endpoint.UUID).
		Int("status", resp.StatusCode()).
		Msg("endpoint created")

	return endpoint, nil
}

// UpdateEndpoint implements [CloudAdapter]. It PUTs the full entity as JSON
// to PUT /api/v1/endpoints/{uuid}.
func (h *httpCloudAdapter) UpdateEndpoint(ctx context.Context, endpoint models.Endpoint) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("uuid", endpoint.UUID).
		SetBody(endpoint).
		Put(endpointPath)
	if err != nil {
		return fmt.Errorf("%w: update endpoint request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("uuid", endpoint.UUID).
		Int("status", resp.StatusCode()).
		Msg("endpoint updated")

	return nil
}

// ProvisionToken implements [CloudAdapter]. It POSTs
// {"customProperties": props} to POST /api/v1/endpoints/{uuid}/provisionToken
// and returns the response body as the token.
func (h *httpCloudAdapter) ProvisionToken(ctx context.Context, uuid string, props models.CustomProperties) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("uuid", uuid).
		SetBody(models.ProvisionTokenRequest{CustomProperties: props}).
		Post(provisionTokenPath)
	if err != nil {
		return "", fmt.Errorf("%w: provision token request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	logger.FromContext(ctx).Debug().
		Str("uuid", uuid).
		Int("status", resp.StatusCode()).
		Int("token_length", len(resp.Body())).
		Msg("provisioning token issued")

	return string(resp.Body()), nil
}
