package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"ai-humanizer-be/internal/bootstrap"
	"ai-humanizer-be/internal/config"
	"ai-humanizer-be/internal/controller"
	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/pkg/logger"
	"ai-humanizer-be/internal/pkg/serverutils"
	"ai-humanizer-be/internal/repository/memory"
	"ai-humanizer-be/internal/server"
	"ai-humanizer-be/internal/service"
	"ai-humanizer-be/pkg/admin/addon"
	"ai-humanizer-be/pkg/admin/dashboard"
	adminEvents "ai-humanizer-be/pkg/admin/events"
	"ai-humanizer-be/pkg/admin/plan"
	"ai-humanizer-be/pkg/admin/settings"
	"ai-humanizer-be/pkg/admin/user"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "integration-test-secret"

type apiFixture struct {
	app   *fiber.App
	store *memory.Store
}

// newApiFixture boots the full HTTP stack against the in-memory backend.
// The container is assembled by hand so no NATS connection is attempted.
func newApiFixture(t *testing.T) *apiFixture {
	t.Helper()

	store := memory.NewStore()
	factory := memory.NewRepositoryFactory(store)
	sysLogger := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { pubSub.Close() })

	topic := "ADMIN_AUDIT_EVENTS_TEST"
	publisherService := service.NewPublisherService(pubSub, topic)
	consumerService := service.NewConsumerService(
		pubSub,
		topic,
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

	container := &bootstrap.Container{
		AdminController: controller.NewAdminController(adminService),
		Logger:          sysLogger,
		ConsumerService: consumerService,
	}

	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			CorsAllowedOrigins: "http://localhost:5173",
		},
		Admin: config.AdminConfig{SharedSecret: testSecret},
	}

	srv := server.New(cfg, container)
	return &apiFixture{app: srv.GetApp(), store: store}
}

func (f *apiFixture) do(t *testing.T, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(serverutils.AdminSecretHeader, testSecret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func decode(t *testing.T, res *http.Response, out interface{}) {
	t.Helper()
	defer res.Body.Close()
	require.NoError(t, json.NewDecoder(res.Body).Decode(out))
}

func TestHealthzIsOpen(t *testing.T) {
	f := newApiFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	res, err := f.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestAdminRoutesRequireSecret(t *testing.T) {
	f := newApiFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/plans", nil)
	res, err := f.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	var body serverutils.ErrorBody
	decode(t, res, &body)
	assert.Equal(t, http.StatusUnauthorized, body.Status)
	assert.Equal(t, "unauthorized", body.Message)
}

func TestAdminRoutesRejectWrongSecret(t *testing.T) {
	f := newApiFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/plans", nil)
	req.Header.Set(serverutils.AdminSecretHeader, "wrong")
	res, err := f.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestPlanLifecycle(t *testing.T) {
	f := newApiFixture(t)

	res := f.do(t, http.MethodPost, "/api/admin/plans", map[string]interface{}{
		"name":       "Pro",
		"tokenLimit": 50000,
		"priceINR":   499,
		"priceUSD":   5.99,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var created map[string]interface{}
	decode(t, res, &created)
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "Pro", created["name"])
	assert.Equal(t, "BOTH", created["currencyVisibility"])
	assert.Equal(t, true, created["active"])

	// Partial update only touches the supplied fields.
	res = f.do(t, http.MethodPut, "/api/admin/plans/"+created["id"].(string), map[string]interface{}{
		"priceINR": 599,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var updated map[string]interface{}
	decode(t, res, &updated)
	assert.Equal(t, float64(599), updated["priceINR"])
	assert.Equal(t, "Pro", updated["name"])
	assert.Equal(t, float64(50000), updated["tokenLimit"])

	res = f.do(t, http.MethodGet, "/api/admin/plans", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var plans []map[string]interface{}
	decode(t, res, &plans)
	require.Len(t, plans, 1)
}

func TestPlanCreateValidationError(t *testing.T) {
	f := newApiFixture(t)

	res := f.do(t, http.MethodPost, "/api/admin/plans", map[string]interface{}{
		"tokenLimit": 5000,
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	var body serverutils.ErrorBody
	decode(t, res, &body)
	assert.Equal(t, http.StatusBadRequest, body.Status)
}

func TestUserMutationEndpoints(t *testing.T) {
	f := newApiFixture(t)

	pro := "Pro"
	u := &entity.User{
		Email:           "amit@company.co",
		UserType:        entity.UserTypePaid,
		PlanName:        &pro,
		TokensUsed:      48000,
		TokensRemaining: 2000,
		PaymentStatus:   entity.PaymentStatusPaid,
	}
	f.store.SeedUser(u)

	res := f.do(t, http.MethodPost, "/api/admin/users/add-tokens", map[string]interface{}{
		"userId": u.Id.String(),
		"tokens": 5000,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var granted map[string]interface{}
	decode(t, res, &granted)
	assert.Equal(t, float64(7000), granted["tokensRemaining"])

	res = f.do(t, http.MethodPost, "/api/admin/users/block", map[string]interface{}{
		"userId": u.Id.String(),
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var blocked map[string]interface{}
	decode(t, res, &blocked)
	assert.Equal(t, true, blocked["blocked"])

	res = f.do(t, http.MethodPost, "/api/admin/users/disable-plan", map[string]interface{}{
		"userId": u.Id.String(),
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var downgraded map[string]interface{}
	decode(t, res, &downgraded)
	assert.Nil(t, downgraded["planName"])
	assert.Equal(t, "Free", downgraded["userType"])
	assert.Equal(t, "N/A", downgraded["paymentStatus"])
	// Token balances survive the downgrade.
	assert.Equal(t, float64(7000), downgraded["tokensRemaining"])
}

func TestAddTokensUnknownUserReturns404(t *testing.T) {
	f := newApiFixture(t)

	res := f.do(t, http.MethodPost, "/api/admin/users/add-tokens", map[string]interface{}{
		"userId": "11111111-1111-1111-1111-111111111111",
		"tokens": 500,
	})
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestConfigSettersAcceptPost(t *testing.T) {
	f := newApiFixture(t)

	// The console client uses POST /users/block and POST for every
	// config setter; those exact routes must resolve.
	res := f.do(t, http.MethodPost, "/api/admin/payment-config", map[string]interface{}{
		"razorpayKeyId":     "rzp_live_abc",
		"razorpayKeySecret": "sk_live_secret",
		"mode":              "Live",
		"allowedCurrency":   "INR",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	res.Body.Close()

	res = f.do(t, http.MethodPost, "/api/admin/token-rules", map[string]interface{}{
		"guestFreeTokens":    1000,
		"loggedInFreeTokens": 8000,
		"tokensPerWord":      3,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	res.Body.Close()

	u := &entity.User{
		Email:         "raj@dev.com",
		UserType:      entity.UserTypePaid,
		PaymentStatus: entity.PaymentStatusPending,
	}
	f.store.SeedUser(u)

	res = f.do(t, http.MethodPost, "/api/admin/users/block", map[string]interface{}{
		"userId": u.Id.String(),
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var blocked map[string]interface{}
	decode(t, res, &blocked)
	assert.Equal(t, true, blocked["blocked"])
}

func TestUpdateAiConfigRejectsForeignModel(t *testing.T) {
	f := newApiFixture(t)

	res := f.do(t, http.MethodPost, "/api/admin/ai-config", map[string]interface{}{
		"provider": "Google",
		"apiKey":   "key",
		"model":    "gpt-4o",
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	var body serverutils.ErrorBody
	decode(t, res, &body)
	assert.Equal(t, "model not valid for provider", body.Message)
}

func TestAiConfigSecretMaskedOnRead(t *testing.T) {
	f := newApiFixture(t)

	res := f.do(t, http.MethodPost, "/api/admin/ai-config", map[string]interface{}{
		"provider": "Anthropic",
		"apiKey":   "sk-ant-1234567890",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = f.do(t, http.MethodGet, "/api/admin/ai-config", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var config map[string]interface{}
	decode(t, res, &config)
	assert.Equal(t, "Anthropic", config["provider"])
	assert.Equal(t, "claude-3.5-sonnet", config["model"])
	key := config["apiKey"].(string)
	assert.NotContains(t, key, "sk-ant")
	assert.Contains(t, key, "7890")
}

func TestDashboardStatsFieldNames(t *testing.T) {
	f := newApiFixture(t)

	f.store.SeedUser(&entity.User{
		Email:         "rahul@gmail.com",
		UserType:      entity.UserTypePaid,
		PaymentStatus: entity.PaymentStatusPaid,
	})
	f.store.SeedUser(&entity.User{
		Email:         "priya@yahoo.com",
		UserType:      entity.UserTypeFree,
		PaymentStatus: entity.PaymentStatusNA,
	})
	f.store.SeedStatsCounters(&entity.StatsCounters{
		TotalTokensUsed:  8000,
		TotalRevenueINR:  499,
		ActiveAiProvider: entity.AiProviderOpenAI,
	})

	res := f.do(t, http.MethodGet, "/api/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var stats map[string]interface{}
	decode(t, res, &stats)
	assert.Equal(t, float64(2), stats["totalUsers"])
	assert.Equal(t, float64(1), stats["freeUsers"])
	assert.Equal(t, float64(1), stats["paidUsers"])
	assert.Equal(t, float64(50), stats["conversionRate"])
	assert.Equal(t, float64(4000), stats["avgTokensPerUser"])
	assert.Equal(t, float64(499), stats["arpuINR"])
	assert.Equal(t, "OpenAI", stats["activeAIProvider"])
}

func TestAuditTrailAfterMutations(t *testing.T) {
	f := newApiFixture(t)

	res := f.do(t, http.MethodPost, "/api/admin/plans", map[string]interface{}{
		"name":       "Normal",
		"tokenLimit": 5000,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	res.Body.Close()

	res = f.do(t, http.MethodPost, "/api/admin/token-rules", map[string]interface{}{
		"guestFreeTokens":    500,
		"loggedInFreeTokens": 5000,
		"tokensPerWord":      2,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	res.Body.Close()

	// The audit consumer is async; poll until both events landed.
	var logs []map[string]interface{}
	require.Eventually(t, func() bool {
		res := f.do(t, http.MethodGet, "/api/admin/audit", nil)
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			return false
		}
		logs = nil
		decode(t, res, &logs)
		return len(logs) >= 2
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, "TOKEN_RULES_UPDATED", logs[0]["action"])
	assert.Equal(t, "PLAN_CREATED", logs[1]["action"])
	assert.Equal(t, "admin", logs[0]["actor"])
}

func TestGetAiModelsCatalog(t *testing.T) {
	f := newApiFixture(t)

	res := f.do(t, http.MethodGet, "/api/admin/ai-models", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var catalog struct {
		Providers map[string][]string `json:"providers"`
	}
	decode(t, res, &catalog)
	require.Len(t, catalog.Providers, 3)
	assert.Contains(t, catalog.Providers["OpenAI"], "gpt-4o")
	assert.Contains(t, catalog.Providers["Google"], "gemini-1.5-pro")
}
