package mapper

import (
	"encoding/json"

	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/model"

	"gorm.io/datatypes"
)

// Singleton rows live under a fixed primary key.
const SingletonRowId = 1

type SettingsMapper struct{}

func NewSettingsMapper() *SettingsMapper {
	return &SettingsMapper{}
}

func (m *SettingsMapper) PaymentConfigToEntity(c *model.PaymentConfig) *entity.PaymentConfig {
	if c == nil {
		return nil
	}
	return &entity.PaymentConfig{
		RazorpayKeyId:     c.RazorpayKeyId,
		RazorpayKeySecret: c.RazorpayKeySecret,
		Mode:              entity.GatewayMode(c.Mode),
		AllowedCurrency:   entity.Currency(c.AllowedCurrency),
		UpdatedAt:         c.UpdatedAt,
	}
}

func (m *SettingsMapper) PaymentConfigToModel(c *entity.PaymentConfig) *model.PaymentConfig {
	if c == nil {
		return nil
	}
	return &model.PaymentConfig{
		Id:                SingletonRowId,
		RazorpayKeyId:     c.RazorpayKeyId,
		RazorpayKeySecret: c.RazorpayKeySecret,
		Mode:              string(c.Mode),
		AllowedCurrency:   string(c.AllowedCurrency),
		UpdatedAt:         c.UpdatedAt,
	}
}

func (m *SettingsMapper) AiConfigToEntity(c *model.AiConfig) *entity.AiConfig {
	if c == nil {
		return nil
	}
	return &entity.AiConfig{
		Provider:  entity.AiProvider(c.Provider),
		ApiKey:    c.ApiKey,
		Model:     c.Model,
		Enabled:   c.Enabled,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *SettingsMapper) AiConfigToModel(c *entity.AiConfig) *model.AiConfig {
	if c == nil {
		return nil
	}
	return &model.AiConfig{
		Id:        SingletonRowId,
		Provider:  string(c.Provider),
		ApiKey:    c.ApiKey,
		Model:     c.Model,
		Enabled:   c.Enabled,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *SettingsMapper) TokenRulesToEntity(r *model.TokenRules) *entity.TokenRules {
	if r == nil {
		return nil
	}
	return &entity.TokenRules{
		GuestFreeTokens:    r.GuestFreeTokens,
		LoggedInFreeTokens: r.LoggedInFreeTokens,
		TokensPerWord:      r.TokensPerWord,
		UpdatedAt:          r.UpdatedAt,
	}
}

func (m *SettingsMapper) TokenRulesToModel(r *entity.TokenRules) *model.TokenRules {
	if r == nil {
		return nil
	}
	return &model.TokenRules{
		Id:                 SingletonRowId,
		GuestFreeTokens:    r.GuestFreeTokens,
		LoggedInFreeTokens: r.LoggedInFreeTokens,
		TokensPerWord:      r.TokensPerWord,
		UpdatedAt:          r.UpdatedAt,
	}
}

func (m *SettingsMapper) StatsCountersToEntity(c *model.StatsCounters) *entity.StatsCounters {
	if c == nil {
		return nil
	}
	return &entity.StatsCounters{
		TotalTokensUsed:  c.TotalTokensUsed,
		TotalRevenueINR:  c.TotalRevenueINR,
		TotalRevenueUSD:  c.TotalRevenueUSD,
		ActiveAiProvider: entity.AiProvider(c.ActiveAiProvider),
		UpdatedAt:        c.UpdatedAt,
	}
}

func (m *SettingsMapper) StatsCountersToModel(c *entity.StatsCounters) *model.StatsCounters {
	if c == nil {
		return nil
	}
	return &model.StatsCounters{
		Id:               SingletonRowId,
		TotalTokensUsed:  c.TotalTokensUsed,
		TotalRevenueINR:  c.TotalRevenueINR,
		TotalRevenueUSD:  c.TotalRevenueUSD,
		ActiveAiProvider: string(c.ActiveAiProvider),
		UpdatedAt:        c.UpdatedAt,
	}
}

func (m *SettingsMapper) AuditLogToEntity(l *model.AuditLog) *entity.AuditLog {
	if l == nil {
		return nil
	}
	var details map[string]interface{}
	if len(l.Details) > 0 {
		_ = json.Unmarshal(l.Details, &details)
	}
	return &entity.AuditLog{
		Id:         l.Id,
		Actor:      l.Actor,
		Action:     l.Action,
		EntityType: l.EntityType,
		EntityId:   l.EntityId,
		Details:    details,
		CreatedAt:  l.CreatedAt,
	}
}

func (m *SettingsMapper) AuditLogToModel(l *entity.AuditLog) *model.AuditLog {
	if l == nil {
		return nil
	}
	var details datatypes.JSON
	if l.Details != nil {
		if raw, err := json.Marshal(l.Details); err == nil {
			details = raw
		}
	}
	return &model.AuditLog{
		Id:         l.Id,
		Actor:      l.Actor,
		Action:     l.Action,
		EntityType: l.EntityType,
		EntityId:   l.EntityId,
		Details:    details,
		CreatedAt:  l.CreatedAt,
	}
}
