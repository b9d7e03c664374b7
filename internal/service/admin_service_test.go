package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"ai-humanizer-be/internal/dto"
	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/pkg/logger"
	"ai-humanizer-be/internal/repository/memory"
	"ai-humanizer-be/internal/service"
	"ai-humanizer-be/pkg/admin/addon"
	"ai-humanizer-be/pkg/admin/dashboard"
	adminEvents "ai-humanizer-be/pkg/admin/events"
	"ai-humanizer-be/pkg/admin/plan"
	"ai-humanizer-be/pkg/admin/settings"
	"ai-humanizer-be/pkg/admin/user"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTopic = "ADMIN_AUDIT_EVENTS_TEST"

type serviceFixture struct {
	store   *memory.Store
	service service.IAdminService
}

// newFixture wires the full service graph against the in-memory backend,
// including the audit consumer so emitted events land in the store.
func newFixture(t *testing.T) *serviceFixture {
	t.Helper()

	store := memory.NewStore()
	factory := memory.NewRepositoryFactory(store)
	sysLogger := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { pubSub.Close() })

	publisherService := service.NewPublisherService(pubSub, testTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		testTopic,
		factory,
		adminEvents.NewNatsPublisher(nil, sysLogger),
	)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, consumerService.Consume(ctx))

	adminService := service.NewAdminService(
		factory,
		plan.NewManager(),
		addon.NewManager(),
		user.NewManager(sysLogger),
		settings.NewManager(),
		dashboard.NewAggregator(sysLogger),
		publisherService,
		100,
		sysLogger,
	)

	return &serviceFixture{store: store, service: adminService}
}

func (f *serviceFixture) waitForAuditLogs(t *testing.T, count int) []*dto.AuditLogResponse {
	t.Helper()
	var logs []*dto.AuditLogResponse
	require.Eventually(t, func() bool {
		var err error
		logs, err = f.service.GetAuditLogs(context.Background(), 100)
		return err == nil && len(logs) >= count
	}, 2*time.Second, 10*time.Millisecond)
	return logs
}

func TestCreatePlanEmitsAuditLog(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreatePlan(ctx, dto.CreatePlanRequest{
		Name:       "Pro",
		TokenLimit: 50000,
		PriceINR:   499,
		PriceUSD:   5.99,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pro", created.Name)

	logs := f.waitForAuditLogs(t, 1)
	assert.Equal(t, "PLAN_CREATED", logs[0].Action)
	assert.Equal(t, "admin", logs[0].Actor)
	assert.Equal(t, "plan", logs[0].EntityType)
	assert.Equal(t, created.Id, logs[0].EntityId)
}

func TestUpdatePlanRejectsMalformedId(t *testing.T) {
	f := newFixture(t)

	name := "Starter"
	var verr *dto.ValidationError
	_, err := f.service.UpdatePlan(context.Background(), "not-a-uuid", dto.UpdatePlanRequest{Name: &name})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "id", verr.Field)
}

func TestAddTokensPipeline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := &entity.User{
		Email:           "rahul@gmail.com",
		UserType:        entity.UserTypePaid,
		TokensUsed:      1000,
		TokensRemaining: 4000,
		PaymentStatus:   entity.PaymentStatusPaid,
	}
	f.store.SeedUser(u)

	updated, err := f.service.AddTokens(ctx, dto.AddTokensRequest{
		UserId: u.Id.String(),
		Tokens: 5000,
	})
	require.NoError(t, err)
	assert.Equal(t, 9000, updated.TokensRemaining)

	logs := f.waitForAuditLogs(t, 1)
	assert.Equal(t, "TOKENS_GRANTED", logs[0].Action)
	assert.Equal(t, u.Id.String(), logs[0].EntityId)
	// Details survive the json round trip as float64
	assert.EqualValues(t, 5000, logs[0].Details["tokens"])
}

func TestAuditLogsNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.CreatePlan(ctx, dto.CreatePlanRequest{Name: "Normal", TokenLimit: 5000})
	require.NoError(t, err)
	f.waitForAuditLogs(t, 1)

	_, err = f.service.CreateTokenAddon(ctx, dto.CreateTokenAddonRequest{
		Name:        "Small Top-up",
		ExtraTokens: 5000,
		PriceINR:    99,
		PriceUSD:    1.19,
	})
	require.NoError(t, err)

	logs := f.waitForAuditLogs(t, 2)
	assert.Equal(t, "ADDON_CREATED", logs[0].Action)
	assert.Equal(t, "PLAN_CREATED", logs[1].Action)
}

func TestAuditLogLimitConfigurable(t *testing.T) {
	store := memory.NewStore()
	factory := memory.NewRepositoryFactory(store)
	sysLogger := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)

	svc := service.NewAdminService(
		factory,
		plan.NewManager(),
		addon.NewManager(),
		user.NewManager(sysLogger),
		settings.NewManager(),
		dashboard.NewAggregator(sysLogger),
		nil,
		2,
		sysLogger,
	)

	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)
	for i := 0; i < 5; i++ {
		require.NoError(t, uow.AuditLogRepository().Create(ctx, &entity.AuditLog{
			Actor:  "admin",
			Action: entity.AuditActionPlanUpdated,
		}))
	}

	// An out-of-range limit falls back to the configured default.
	logs, err := svc.GetAuditLogs(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, logs, 2)

	logs, err = svc.GetAuditLogs(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, logs, 4)
}

func TestGetAiModelsCatalog(t *testing.T) {
	f := newFixture(t)

	catalog, err := f.service.GetAiModels(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog.Providers, 3)
	assert.Contains(t, catalog.Providers["OpenAI"], "gpt-4o")
	assert.Contains(t, catalog.Providers["Anthropic"], "claude-3-opus")
	assert.Contains(t, catalog.Providers["Google"], "gemini-1.5-flash")
}

func TestDashboardStatsRefreshAfterMutation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := &entity.User{
		Email:           "priya@yahoo.com",
		UserType:        entity.UserTypeFree,
		TokensUsed:      3200,
		TokensRemaining: 1800,
		PaymentStatus:   entity.PaymentStatusNA,
	}
	f.store.SeedUser(u)

	stats, err := f.service.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalUsers)

	// A mutation invalidates the cached snapshot, so the next read sees
	// fresh data even inside the cache TTL.
	f.store.SeedUser(&entity.User{
		Email:         "john@outlook.com",
		UserType:      entity.UserTypePaid,
		PaymentStatus: entity.PaymentStatusPaid,
	})

	_, err = f.service.ToggleBlock(ctx, dto.ToggleBlockRequest{UserId: u.Id.String()})
	require.NoError(t, err)

	stats, err = f.service.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.PaidUsers)
}

func TestProviderSwitchReflectedInDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	stats, err := f.service.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, "OpenAI", stats.ActiveAIProvider)

	_, err = f.service.UpdateAiConfig(ctx, dto.UpdateAIConfigRequest{
		Provider: "Google",
		ApiKey:   "key",
		Model:    "gemini-1.5-flash",
	})
	require.NoError(t, err)

	stats, err = f.service.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Google", stats.ActiveAIProvider)
}

func TestGetAiConfigMasksSecret(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.UpdateAiConfig(ctx, dto.UpdateAIConfigRequest{
		Provider: "OpenAI",
		ApiKey:   "sk-live-1234567890",
		Model:    "gpt-4o-mini",
	})
	require.NoError(t, err)

	config, err := f.service.GetAiConfig(ctx)
	require.NoError(t, err)
	assert.NotContains(t, config.ApiKey, "sk-live-123456")
	assert.Contains(t, config.ApiKey, "7890")
	assert.Equal(t, "gpt-4o-mini", config.Model)
}
