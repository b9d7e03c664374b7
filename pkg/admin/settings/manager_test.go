package settings_test

import (
	"context"
	"testing"

	"ai-humanizer-be/internal/dto"
	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/repository/memory"
	"ai-humanizer-be/pkg/admin/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentConfigDefaultsAndReplace(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory(memory.NewStore())
	manager := settings.NewManager()

	// Nothing saved yet, boot defaults apply.
	config, err := manager.GetPaymentConfig(ctx, factory.NewUnitOfWork(ctx))
	require.NoError(t, err)
	assert.Equal(t, entity.GatewayModeTest, config.Mode)
	assert.Equal(t, entity.CurrencyINR, config.AllowedCurrency)

	updated, err := manager.UpdatePaymentConfig(ctx, factory.NewUnitOfWork(ctx), dto.UpdatePaymentConfigRequest{
		RazorpayKeyId:     "rzp_live_abc",
		RazorpayKeySecret: "sk_live_secret",
		Mode:              "Live",
		AllowedCurrency:   "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.GatewayModeLive, updated.Mode)

	stored, err := manager.GetPaymentConfig(ctx, factory.NewUnitOfWork(ctx))
	require.NoError(t, err)
	assert.Equal(t, "rzp_live_abc", stored.RazorpayKeyId)
	assert.Equal(t, entity.CurrencyUSD, stored.AllowedCurrency)
}

func TestPaymentConfigRejectsWhitespaceCredentials(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory(memory.NewStore())
	manager := settings.NewManager()

	_, err := manager.UpdatePaymentConfig(ctx, factory.NewUnitOfWork(ctx), dto.UpdatePaymentConfigRequest{
		RazorpayKeyId:     "   ",
		RazorpayKeySecret: "sk_live_secret",
		Mode:              "Live",
		AllowedCurrency:   "INR",
	})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "gateway credentials required", verr.Message)

	// The store keeps falling back to defaults; the rejected update
	// saved nothing.
	stored, err := manager.GetPaymentConfig(ctx, factory.NewUnitOfWork(ctx))
	require.NoError(t, err)
	assert.Equal(t, "rzp_test_1234567890", stored.RazorpayKeyId)
}

func TestUpdateAiConfigRejectsWhitespaceApiKey(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory(memory.NewStore())
	manager := settings.NewManager()

	_, err := manager.UpdateAiConfig(ctx, factory.NewUnitOfWork(ctx), dto.UpdateAIConfigRequest{
		Provider: "OpenAI",
		ApiKey:   "  \n ",
	})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "apiKey required", verr.Message)
}

func TestUpdateAiConfigDefaultsModel(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory(memory.NewStore())
	manager := settings.NewManager()

	// No model supplied on a provider switch, first catalog model wins.
	config, err := manager.UpdateAiConfig(ctx, factory.NewUnitOfWork(ctx), dto.UpdateAIConfigRequest{
		Provider: "Anthropic",
		ApiKey:   "sk-ant-test",
	})
	require.NoError(t, err)
	assert.Equal(t, "claude-3.5-sonnet", config.Model)
	assert.True(t, config.Enabled)
}

func TestUpdateAiConfigRejectsForeignModel(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory(memory.NewStore())
	manager := settings.NewManager()

	_, err := manager.UpdateAiConfig(ctx, factory.NewUnitOfWork(ctx), dto.UpdateAIConfigRequest{
		Provider: "Google",
		ApiKey:   "key",
		Model:    "gpt-4o",
	})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "model not valid for provider", verr.Message)

	// Stored config is untouched by the failed update.
	stored, err := manager.GetAiConfig(ctx, factory.NewUnitOfWork(ctx))
	require.NoError(t, err)
	assert.Equal(t, entity.AiProviderOpenAI, stored.Provider)
}

func TestUpdateAiConfigMirrorsActiveProvider(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	factory := memory.NewRepositoryFactory(store)
	manager := settings.NewManager()

	_, err := manager.UpdateAiConfig(ctx, factory.NewUnitOfWork(ctx), dto.UpdateAIConfigRequest{
		Provider: "Google",
		ApiKey:   "key",
		Model:    "gemini-1.5-pro",
	})
	require.NoError(t, err)

	uow := factory.NewUnitOfWork(ctx)
	counters, err := uow.SettingsRepository().GetStatsCounters(ctx)
	require.NoError(t, err)
	require.NotNil(t, counters)
	assert.Equal(t, entity.AiProviderGoogle, counters.ActiveAiProvider)
}

func TestTokenRulesValidationAndReplace(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory(memory.NewStore())
	manager := settings.NewManager()

	_, err := manager.UpdateTokenRules(ctx, factory.NewUnitOfWork(ctx), dto.UpdateTokenRulesRequest{
		GuestFreeTokens:    -1,
		LoggedInFreeTokens: 5000,
		TokensPerWord:      2,
	})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = manager.UpdateTokenRules(ctx, factory.NewUnitOfWork(ctx), dto.UpdateTokenRulesRequest{
		GuestFreeTokens:    1000,
		LoggedInFreeTokens: 8000,
		TokensPerWord:      0,
	})
	require.ErrorAs(t, err, &verr)

	rules, err := manager.UpdateTokenRules(ctx, factory.NewUnitOfWork(ctx), dto.UpdateTokenRulesRequest{
		GuestFreeTokens:    1000,
		LoggedInFreeTokens: 8000,
		TokensPerWord:      3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, rules.TokensPerWord)

	stored, err := manager.GetTokenRules(ctx, factory.NewUnitOfWork(ctx))
	require.NoError(t, err)
	assert.Equal(t, 1000, stored.GuestFreeTokens)
	assert.Equal(t, 8000, stored.LoggedInFreeTokens)
}
