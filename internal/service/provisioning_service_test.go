package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-endpoint-provisioner/internal/adapter"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/logger"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/mock"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/store"
	"github.com/MKhiriev/go-endpoint-provisioner/internal/tui"
	"github.com/MKhiriev/go-endpoint-provisioner/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 10, 18, 9, 30, 15, 123456000, time.Local)

type testDeps struct {
	adapter  *mock.MockCloudAdapter
	store    *mock.MockTokenStore
	prompter *mock.MockPrompter
	out      *bytes.Buffer
}

func newTestProvisioningSvc(t *testing.T, ctrl *gomock.Controller, friendlyName string) (ProvisioningService, testDeps) {
	t.Helper()

	deps := testDeps{
		adapter:  mock.NewMockCloudAdapter(ctrl),
		store:    mock.NewMockTokenStore(ctrl),
		prompter: mock.NewMockPrompter(ctrl),
		out:      &bytes.Buffer{},
	}

	svc := NewProvisioningService(deps.adapter, deps.store, deps.prompter, logger.Nop(), ProvisioningOptions{
		FriendlyName: friendlyName,
		Out:          deps.out,
		Now:          func() time.Time { return fixedNow },
	})
	return svc, deps
}

func testProvisioning() models.Provisioning {
	return models.Provisioning{
		Host:           "https://cloudio.example.com",
		Username:       "admin",
		Password:       "secret",
		Metadata:       map[string]any{"site": "lab"},
		Banned:         false,
		EndpointGroups: []string{"sensors"},
		CustomProperties: models.CustomProperties{
			models.ClientCertProperty:                    "/certs/",
			"ch.hevs.cloudio.endpoint.ssl.authorityCert": "/certs/authority.pem",
		},
	}
}

// ── Provision ────────────────────────────────────────────────────────────────

func TestProvisioningService_Provision_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestProvisioningSvc(t, ctrl, "")
	ctx := context.Background()
	p := testProvisioning()

	created := models.Endpoint{UUID: "abc-123", FriendlyName: "boiler room", MetaData: map[string]any{}}

	gomock.InOrder(
		deps.prompter.EXPECT().Prompt(ctx, FriendlyNameLabel).Return("boiler room", nil),
		deps.adapter.EXPECT().CreateEndpoint(ctx, "boiler room").Return(created, nil),
		deps.adapter.EXPECT().UpdateEndpoint(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, e models.Endpoint) error {
				assert.Equal(t, "abc-123", e.UUID)
				assert.Equal(t, p.Metadata, e.MetaData)
				assert.Equal(t, p.Banned, e.Banned)
				assert.Equal(t, p.EndpointGroups, e.GroupMemberships)
				return nil
			},
		),
		deps.adapter.EXPECT().ProvisionToken(ctx, "abc-123", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, props models.CustomProperties) (string, error) {
				assert.Equal(t, "/certs/abc-123.p12", props[models.ClientCertProperty])
				assert.Equal(t, "/certs/authority.pem", props["ch.hevs.cloudio.endpoint.ssl.authorityCert"])
				return "tok-1", nil
			},
		),
		deps.store.EXPECT().Append(ctx, models.TokenRecord{
			UUID:           "abc-123",
			FriendlyName:   "boiler room",
			GenerationTime: "2026-10-18 09:30:15.123456",
			Token:          "tok-1",
		}).Return(nil),
		deps.store.EXPECT().Path().Return("tokens.yaml"),
	)

	record, err := svc.Provision(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", record.UUID)
	assert.Equal(t, "boiler room", record.FriendlyName)
	assert.Equal(t, "tok-1", record.Token)

	assert.Equal(t, "/certs/", p.CustomProperties[models.ClientCertProperty], "configuration must not be mutated")

	assert.Equal(t,
		"Endpoint created with uuid abc-123\n"+
			"Endpoint data modified\n"+
			"Token created: tok-1\n"+
			"Token added to tokens.yaml\n",
		deps.out.String())
}

func TestProvisioningService_Provision_ConfiguredFriendlyNameSkipsPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestProvisioningSvc(t, ctrl, "  pump-7 ")
	ctx := context.Background()

	deps.prompter.EXPECT().Prompt(gomock.Any(), gomock.Any()).Times(0)
	deps.adapter.EXPECT().CreateEndpoint(ctx, "pump-7").Return(models.Endpoint{UUID: "u-1"}, nil)
	deps.adapter.EXPECT().UpdateEndpoint(ctx, gomock.Any()).Return(nil)
	deps.adapter.EXPECT().ProvisionToken(ctx, "u-1", gomock.Any()).Return("tok", nil)
	deps.store.EXPECT().Append(ctx, gomock.Any()).Return(nil)
	deps.store.EXPECT().Path().Return("tokens.yaml")

	record, err := svc.Provision(ctx, testProvisioning())
	require.NoError(t, err)
	assert.Equal(t, "pump-7", record.FriendlyName)
}

func TestProvisioningService_Provision_MissingClientCert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestProvisioningSvc(t, ctrl, "")
	p := testProvisioning()
	delete(p.CustomProperties, models.ClientCertProperty)

	_, err := svc.Provision(context.Background(), p)
	require.ErrorIs(t, err, ErrMissingClientCert)
	assert.Empty(t, deps.out.String())
}

func TestProvisioningService_Provision_PromptError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestProvisioningSvc(t, ctrl, "")
	ctx := context.Background()

	deps.prompter.EXPECT().Prompt(ctx, FriendlyNameLabel).Return("", tui.ErrUserQuit)

	_, err := svc.Provision(ctx, testProvisioning())
	require.ErrorIs(t, err, ErrFriendlyName)
	assert.ErrorIs(t, err, tui.ErrUserQuit)
}

func TestProvisioningService_Provision_CreateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestProvisioningSvc(t, ctrl, "lab")
	ctx := context.Background()

	serverErr := errors.Join(adapter.ErrHTTPStatus, adapter.ErrInternalServerError)
	deps.adapter.EXPECT().CreateEndpoint(ctx, "lab").Return(models.Endpoint{}, serverErr)
	deps.adapter.EXPECT().UpdateEndpoint(gomock.Any(), gomock.Any()).Times(0)
	deps.adapter.EXPECT().ProvisionToken(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	deps.store.EXPECT().Append(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Provision(ctx, testProvisioning())
	require.ErrorIs(t, err, ErrCreateEndpoint)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
	assert.Contains(t, err.Error(), "error while creating endpoint")
	assert.Empty(t, deps.out.String())
}

func TestProvisioningService_Provision_UpdateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestProvisioningSvc(t, ctrl, "lab")
	ctx := context.Background()

	deps.adapter.EXPECT().CreateEndpoint(ctx, "lab").Return(models.Endpoint{UUID: "u-1"}, nil)
	deps.adapter.EXPECT().UpdateEndpoint(ctx, gomock.Any()).Return(adapter.ErrNotFound)
	deps.adapter.EXPECT().ProvisionToken(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	deps.store.EXPECT().Append(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Provision(ctx, testProvisioning())
	require.ErrorIs(t, err, ErrUpdateEndpoint)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Equal(t, "Endpoint created with uuid u-1\n", deps.out.String())
}

func TestProvisioningService_Provision_TokenFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestProvisioningSvc(t, ctrl, "lab")
	ctx := context.Background()

	deps.adapter.EXPECT().CreateEndpoint(ctx, "lab").Return(models.Endpoint{UUID: "u-1"}, nil)
	deps.adapter.EXPECT().UpdateEndpoint(ctx, gomock.Any()).Return(nil)
	deps.adapter.EXPECT().ProvisionToken(ctx, "u-1", gomock.Any()).Return("", adapter.ErrTransport)
	deps.store.EXPECT().Append(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Provision(ctx, testProvisioning())
	require.ErrorIs(t, err, ErrProvisionToken)
	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.NotContains(t, deps.out.String(), "Token created")
}

func TestProvisioningService_Provision_RecordFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestProvisioningSvc(t, ctrl, "lab")
	ctx := context.Background()

	deps.adapter.EXPECT().CreateEndpoint(ctx, "lab").Return(models.Endpoint{UUID: "u-1"}, nil)
	deps.adapter.EXPECT().UpdateEndpoint(ctx, gomock.Any()).Return(nil)
	deps.adapter.EXPECT().ProvisionToken(ctx, "u-1", gomock.Any()).Return("tok", nil)
	deps.store.EXPECT().Append(ctx, gomock.Any()).Return(store.ErrOutputParse)

	_, err := svc.Provision(ctx, testProvisioning())
	require.ErrorIs(t, err, ErrRecordToken)
	assert.ErrorIs(t, err, store.ErrOutputParse)
	assert.Contains(t, deps.out.String(), "Token created: tok\n")
	assert.NotContains(t, deps.out.String(), "Token added")
}

func TestProvisioningService_Provision_ContextCarriesLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var logs bytes.Buffer
	adapterMock := mock.NewMockCloudAdapter(ctrl)
	storeMock := mock.NewMockTokenStore(ctrl)
	svc := NewProvisioningService(adapterMock, storeMock, mock.NewMockPrompter(ctrl),
		logger.NewLogger("test", &logs, zerolog.DebugLevel), ProvisioningOptions{
			FriendlyName: "lab",
			Out:          &bytes.Buffer{},
			Now:          func() time.Time { return fixedNow },
		})

	adapterMock.EXPECT().CreateEndpoint(gomock.Any(), "lab").DoAndReturn(
		func(ctx context.Context, _ string) (models.Endpoint, error) {
			logger.FromContext(ctx).Info().Msg("from create")
			return models.Endpoint{UUID: "abc-123"}, nil
		})
	adapterMock.EXPECT().UpdateEndpoint(gomock.Any(), gomock.Any()).Return(nil)
	adapterMock.EXPECT().ProvisionToken(gomock.Any(), "abc-123", gomock.Any()).Return("tok", nil)
	storeMock.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ models.TokenRecord) error {
			logger.FromContext(ctx).Info().Msg("from append")
			return nil
		})
	storeMock.EXPECT().Path().Return("tokens.yaml")

	_, err := svc.Provision(context.Background(), testProvisioning())
	require.NoError(t, err)

	var create, appendLine string
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		switch {
		case strings.Contains(line, "from create"):
			create = line
		case strings.Contains(line, "from append"):
			appendLine = line
		}
	}
	require.NotEmpty(t, create)
	require.NotEmpty(t, appendLine)

	assert.Contains(t, create, `"friendly_name":"lab"`)
	assert.NotContains(t, create, `"uuid"`)
	assert.Contains(t, appendLine, `"friendly_name":"lab"`)
	assert.Contains(t, appendLine, `"uuid":"abc-123"`)
}

func TestNewProvisioningService_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewProvisioningService(mock.NewMockCloudAdapter(ctrl), mock.NewMockTokenStore(ctrl), mock.NewMockPrompter(ctrl), logger.Nop(), ProvisioningOptions{})
	impl, ok := svc.(*provisioningService)
	require.True(t, ok)
	assert.NotNil(t, impl.out)
	assert.NotNil(t, impl.now)
}
