package contract

import (
	"context"

	"ai-humanizer-be/internal/entity"
)

// SettingsRepository persists the singleton configuration rows. Each
// getter returns the stored row or (nil, nil) when nothing has been
// saved yet; callers fall back to defaults in that case.
type SettingsRepository interface {
	GetPaymentConfig(ctx context.Context) (*entity.PaymentConfig, error)
	SavePaymentConfig(ctx context.Context, config *entity.PaymentConfig) error

	GetAiConfig(ctx context.Context) (*entity.AiConfig, error)
	SaveAiConfig(ctx context.Context, config *entity.AiConfig) error

	GetTokenRules(ctx context.Context) (*entity.TokenRules, error)
	SaveTokenRules(ctx context.Context, rules *entity.TokenRules) error

	GetStatsCounters(ctx context.Context) (*entity.StatsCounters, error)
	SaveStatsCounters(ctx context.Context, counters *entity.StatsCounters) error
}
