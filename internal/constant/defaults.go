package constant

import "ai-humanizer-be/internal/entity"

// Log module tags
const (
	LogModuleAdmin = "ADMIN"
	LogModuleAudit = "AUDIT"
)

// Singleton defaults applied at first boot / migration. They match the
// dataset the console shipped with.
func DefaultPaymentConfig() *entity.PaymentConfig {
	return &entity.PaymentConfig{
		RazorpayKeyId:     "rzp_test_1234567890",
		RazorpayKeySecret: "sk_test_placeholder_secret",
		Mode:              entity.GatewayModeTest,
		AllowedCurrency:   entity.CurrencyINR,
	}
}

func DefaultAiConfig() *entity.AiConfig {
	return &entity.AiConfig{
		Provider: entity.AiProviderOpenAI,
		ApiKey:   "sk-placeholder",
		Model:    DefaultModel(entity.AiProviderOpenAI),
		Enabled:  true,
	}
}

func DefaultTokenRules() *entity.TokenRules {
	return &entity.TokenRules{
		GuestFreeTokens:    500,
		LoggedInFreeTokens: 5000,
		TokensPerWord:      2,
	}
}

func DefaultStatsCounters() *entity.StatsCounters {
	return &entity.StatsCounters{
		ActiveAiProvider: entity.AiProviderOpenAI,
	}
}
