package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/MKhiriev/go-endpoint-provisioner/internal/adapter"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/config"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/logger"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/service"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/store"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/tui"
	"github.com/MKhiriev/go-endpoint-provisioner/models"
	"github.com/atotto/clipboard"
)

const banner = "---------------------------------------\n" +
	"------cloud.iO provisioning script-----\n" +
	"---------------------------------------\n"

// App provisions one endpoint per Run.
type App struct {
	cfg      *config.ClientConfig
	prompter tui.Prompter
	out      io.Writer
	logger   *logger.Logger

	copyToClipboard func(string) error
}

// NewApp constructs an [App]. Progress is written to out; prompter is asked
// for the friendly name unless cfg.App.FriendlyName is set.
func NewApp(cfg *config.ClientConfig, prompter tui.Prompter, out io.Writer, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	if prompter == nil {
		return nil, fmt.Errorf("nil prompter")
	}

	return &App{
		cfg:             cfg,
		prompter:        prompter,
		out:             out,
		logger:          logger,
		copyToClipboard: clipboard.WriteAll,
	}, nil
}

// Run implements [Client]. Any configuration problem stops the run before
// the first request is sent.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprint(a.out, banner)

	p, err := a.loadProvisioning()
	if err != nil {
		return err
	}

	cloudAdapter, err := adapter.NewHTTPCloudAdapter(p, a.cfg.Adapter, a.logger)
	if err != nil {
		return fmt.Errorf("create cloud adapter: %w", err)
	}

	tokenStore := store.NewFileTokenStore(a.cfg.Files.OutputPath, a.logger)

	svc := service.NewProvisioningService(cloudAdapter, tokenStore, a.prompter, a.logger, service.ProvisioningOptions{
		FriendlyName: a.cfg.App.FriendlyName,
		Out:          a.out,
	})

	record, err := svc.Provision(ctx, p)
	if err != nil {
		return err
	}

	if a.cfg.App.CopyToken {
		a.copyToken(record)
	}

	return nil
}

func (a *App) loadProvisioning() (models.Provisioning, error) {
	doc, err := config.LoadDocument(a.cfg.Files.ConfigPath)
	if err != nil {
		return models.Provisioning{}, err
	}

	schema, err := a.loadSchema()
	if err != nil {
		return models.Provisioning{}, err
	}

	if err = schema.Validate(doc); err != nil {
		return models.Provisioning{}, err
	}

	a.logger.Info().
		Str("config", doc.Path()).
		Str("schema", schema.Path()).
		Msg("config validated")

	return doc.Provisioning()
}

// loadSchema reads the configured schema. An explicitly configured file must
// exist; the default one may be absent, the built-in schema is used then.
func (a *App) loadSchema() (*config.Schema, error) {
	path := a.cfg.Files.SchemaPath
	if path == "" {
		return config.DefaultSchema()
	}

	schema, err := config.LoadSchema(path)
	if errors.Is(err, fs.ErrNotExist) && path == config.DefaultSchemaPath {
		a.logger.Info().Str("path", path).Msg("schema file not found, using built-in schema")
		return config.DefaultSchema()
	}
	return schema, err
}

// copyToken never fails the run: the token is already recorded.
func (a *App) copyToken(record models.TokenRecord) {
	if err := a.copyToClipboard(record.Token); err != nil {
		a.logger.Warn().Err(err).Msg("copy token to clipboard")
		fmt.Fprintf(a.out, "Could not copy token to clipboard: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Token copied to clipboard")
}
