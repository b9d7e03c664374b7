package settings

import (
	"context"
	"strings"

	"ai-humanizer-be/internal/constant"
	"ai-humanizer-be/internal/dto"
	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/repository/unitofwork"
)

// Manager handles the singleton configuration operations
type Manager struct{}

// NewManager creates a new settings manager
func NewManager() *Manager {
	return &Manager{}
}

// GetPaymentConfig returns the stored gateway config, falling back to
// the boot defaults when nothing has been saved yet.
func (m *Manager) GetPaymentConfig(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.PaymentConfig, error) {
	config, err := uow.SettingsRepository().GetPaymentConfig(ctx)
	if err != nil {
		return nil, err
	}
	if config == nil {
		config = constant.DefaultPaymentConfig()
	}
	return config, nil
}

// UpdatePaymentConfig replaces the gateway config wholesale.
func (m *Manager) UpdatePaymentConfig(ctx context.Context, uow unitofwork.UnitOfWork, req dto.UpdatePaymentConfigRequest) (*entity.PaymentConfig, error) {
	keyId := strings.TrimSpace(req.RazorpayKeyId)
	keySecret := strings.TrimSpace(req.RazorpayKeySecret)
	if keyId == "" || keySecret == "" {
		return nil, dto.NewValidationError("razorpayKeyId", "gateway credentials required")
	}

	mode := entity.GatewayMode(req.Mode)
	if mode != entity.GatewayModeTest && mode != entity.GatewayModeLive {
		return nil, dto.NewValidationError("mode", "invalid gateway mode")
	}

	currency := entity.Currency(req.AllowedCurrency)
	if currency != entity.CurrencyINR && currency != entity.CurrencyUSD {
		return nil, dto.NewValidationError("allowedCurrency", "invalid currency")
	}

	config := &entity.PaymentConfig{
		RazorpayKeyId:     keyId,
		RazorpayKeySecret: keySecret,
		Mode:              mode,
		AllowedCurrency:   currency,
	}

	if err := uow.SettingsRepository().SavePaymentConfig(ctx, config); err != nil {
		return nil, err
	}

	return config, nil
}

// GetAiConfig returns the stored AI provider config, falling back to
// the boot defaults.
func (m *Manager) GetAiConfig(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.AiConfig, error) {
	config, err := uow.SettingsRepository().GetAiConfig(ctx)
	if err != nil {
		return nil, err
	}
	if config == nil {
		config = constant.DefaultAiConfig()
	}
	return config, nil
}

// UpdateAiConfig replaces the AI provider config. An empty model snaps
// to the provider's first catalog model; a supplied model must belong
// to the provider. The active provider is mirrored onto the stored
// dashboard counters.
func (m *Manager) UpdateAiConfig(ctx context.Context, uow unitofwork.UnitOfWork, req dto.UpdateAIConfigRequest) (*entity.AiConfig, error) {
	provider := entity.AiProvider(req.Provider)
	if !constant.IsValidProvider(provider) {
		return nil, dto.NewValidationError("provider", "unknown provider")
	}
	apiKey := strings.TrimSpace(req.ApiKey)
	if apiKey == "" {
		return nil, dto.NewValidationError("apiKey", "apiKey required")
	}

	model := req.Model
	if model == "" {
		model = constant.DefaultModel(provider)
	} else if !constant.IsValidModel(provider, model) {
		return nil, dto.NewValidationError("model", "model not valid for provider")
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	config := &entity.AiConfig{
		Provider: provider,
		ApiKey:   apiKey,
		Model:    model,
		Enabled:  enabled,
	}

	if err := uow.SettingsRepository().SaveAiConfig(ctx, config); err != nil {
		return nil, err
	}

	counters, err := uow.SettingsRepository().GetStatsCounters(ctx)
	if err != nil {
		return nil, err
	}
	if counters == nil {
		counters = constant.DefaultStatsCounters()
	}
	counters.ActiveAiProvider = provider
	if err := uow.SettingsRepository().SaveStatsCounters(ctx, counters); err != nil {
		return nil, err
	}

	return config, nil
}

// GetTokenRules returns the stored token rules, falling back to the
// boot defaults.
func (m *Manager) GetTokenRules(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.TokenRules, error) {
	rules, err := uow.SettingsRepository().GetTokenRules(ctx)
	if err != nil {
		return nil, err
	}
	if rules == nil {
		rules = constant.DefaultTokenRules()
	}
	return rules, nil
}

// UpdateTokenRules replaces the token consumption rules wholesale.
func (m *Manager) UpdateTokenRules(ctx context.Context, uow unitofwork.UnitOfWork, req dto.UpdateTokenRulesRequest) (*entity.TokenRules, error) {
	if req.GuestFreeTokens < 0 || req.LoggedInFreeTokens < 0 {
		return nil, dto.NewValidationError("guestFreeTokens", "negative value")
	}
	if req.TokensPerWord <= 0 {
		return nil, dto.NewValidationError("tokensPerWord", "tokensPerWord must exceed 0")
	}

	rules := &entity.TokenRules{
		GuestFreeTokens:    req.GuestFreeTokens,
		LoggedInFreeTokens: req.LoggedInFreeTokens,
		TokensPerWord:      req.TokensPerWord,
	}

	if err := uow.SettingsRepository().SaveTokenRules(ctx, rules); err != nil {
		return nil, err
	}

	return rules, nil
}
