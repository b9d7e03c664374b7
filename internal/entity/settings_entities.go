package entity

import "time"

type GatewayMode string
type AiProvider string
type Currency string

const (
	GatewayModeTest GatewayMode = "Test"
	GatewayModeLive GatewayMode = "Live"

	AiProviderOpenAI    AiProvider = "OpenAI"
	AiProviderAnthropic AiProvider = "Anthropic"
	AiProviderGoogle    AiProvider = "Google"

	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
)

// PaymentConfig is the singleton payment-gateway configuration.
// Replaced wholesale on update; the secret is sensitive and must be
// masked on display.
type PaymentConfig struct {
	RazorpayKeyId     string
	RazorpayKeySecret string
	Mode              GatewayMode
	AllowedCurrency   Currency
	UpdatedAt         time.Time
}

// AiConfig is the singleton AI provider configuration.
// Invariant: Model always belongs to the selected provider's catalog.
type AiConfig struct {
	Provider  AiProvider
	ApiKey    string
	Model     string
	Enabled   bool
	UpdatedAt time.Time
}

// TokenRules is the singleton global token-consumption configuration.
type TokenRules struct {
	GuestFreeTokens    int
	LoggedInFreeTokens int
	TokensPerWord      int
	UpdatedAt          time.Time
}

// StatsCounters holds the stored (non-derived) dashboard counters.
// User counts are always derived from the Users collection on read;
// these counters are maintained by the billing/usage pipeline and the
// AI config side effect.
type StatsCounters struct {
	TotalTokensUsed  int64
	TotalRevenueINR  float64
	TotalRevenueUSD  float64
	ActiveAiProvider AiProvider
	UpdatedAt        time.Time
}
