// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-endpoint-provisioner/internal/adapter"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/logger"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/store"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/tui"
	"github.com/MKhiriev/go-endpoint-provisioner/models"
)

// ProvisioningOptions tunes a [ProvisioningService].
type ProvisioningOptions struct {
	// FriendlyName skips the prompt when not blank.
	FriendlyName string

	// Out receives the progress lines. Nil discards them.
	Out io.Writer

	// Now stamps token records. Nil means time.Now.
	Now func() time.Time
}

type provisioningService struct {
	adapter  adapter.CloudAdapter
	store    store.TokenStore
	prompter tui.Prompter
	logger   *logger.Logger

	friendlyName string
	out          io.Writer
	now          func() time.Time
}

func NewProvisioningService(cloudAdapter adapter.CloudAdapter, tokenStore store.TokenStore, prompter tui.Prompter, logger *logger.Logger, opts ProvisioningOptions) ProvisioningService {
	svc := &provisioningService{
		adapter:      cloudAdapter,
		store:        tokenStore,
		prompter:     prompter,
		logger:       logger,
		friendlyName: strings.TrimSpace(opts.FriendlyName),
		out:          opts.Out,
		now:          opts.Now,
	}
	if svc.out == nil {
		svc.out = io.Discard
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	return svc
}

func (s *provisioningService) Provision(ctx context.Context, p models.Provisioning) (models.TokenRecord, error) {
	// checked up front so a predictable config fault leaves no endpoint behind
	if _, ok := p.CustomProperties.ClientCert(); !ok {
		return models.TokenRecord{}, fmt.Errorf("%w: %q", ErrMissingClientCert, models.ClientCertProperty)
	}

	friendlyName, err := s.resolveFriendlyName(ctx)
	if err != nil {
		return models.TokenRecord{}, fmt.Errorf("%w: %w", ErrFriendlyName, err)
	}

	log := s.logger.With().Str("friendly_name", friendlyName).Logger()
	ctx = log.WithContext(ctx)

	endpoint, err := s.adapter.CreateEndpoint(ctx, friendlyName)
	if err != nil {
		log.Err(err).Msg("create endpoint failed")
		return models.TokenRecord{}, fmt.Errorf("%w: %w", ErrCreateEndpoint, err)
	}
	s.printf("Endpoint created with uuid %s\n", endpoint.UUID)
	log = log.With().Str("uuid", endpoint.UUID).Logger()
	ctx = log.WithContext(ctx)

	if err = s.adapter.UpdateEndpoint(ctx, endpoint.WithSettings(p)); err != nil {
		log.Err(err).Msg("update endpoint failed")
		return models.TokenRecord{}, fmt.Errorf("%w: %w", ErrUpdateEndpoint, err)
	}
	s.printf("Endpoint data modified\n")

	token, err := s.adapter.ProvisionToken(ctx, endpoint.UUID, p.CustomProperties.WithClientCert(endpoint.UUID))
	if err != nil {
		log.Err(err).Msg("provision token failed")
		return models.TokenRecord{}, fmt.Errorf("%w: %w", ErrProvisionToken, err)
	}
	s.printf("Token created: %s\n", token)

	record := models.NewTokenRecord(endpoint, friendlyName, token, s.now())
	if err = s.store.Append(ctx, record); err != nil {
		log.Err(err).Msg("record token failed")
		return models.TokenRecord{}, fmt.Errorf("%w: %w", ErrRecordToken, err)
	}
	s.printf("Token added to %s\n", s.store.Path())

	log.Info().Msg("endpoint provisioned")
	return record, nil
}

func (s *provisioningService) resolveFriendlyName(ctx context.Context) (string, error) {
	if s.friendlyName != "" {
		return s.friendlyName, nil
	}
	return s.prompter.Prompt(ctx, FriendlyNameLabel)
}

func (s *provisioningService) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
