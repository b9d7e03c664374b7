package dto

import "time"

// ---------- Plan ----------

type CreatePlanRequest struct {
	Name               string  `json:"name" validate:"required"`
	TokenLimit         int     `json:"tokenLimit" validate:"gte=0"`
	PriceINR           float64 `json:"priceINR" validate:"gte=0"`
	PriceUSD           float64 `json:"priceUSD" validate:"gte=0"`
	CurrencyVisibility string  `json:"currencyVisibility" validate:"omitempty,oneof=INR USD BOTH"`
	Active             *bool   `json:"active"`
}

// UpdatePlanRequest carries only the fields the client wants changed.
// Nil pointers keep the stored value.
type UpdatePlanRequest struct {
	Name               *string  `json:"name"`
	TokenLimit         *int     `json:"tokenLimit"`
	PriceINR           *float64 `json:"priceINR"`
	PriceUSD           *float64 `json:"priceUSD"`
	CurrencyVisibility *string  `json:"currencyVisibility" validate:"omitempty,oneof=INR USD BOTH"`
	Active             *bool    `json:"active"`
}

type PlanResponse struct {
	Id                 string  `json:"id"`
	Name               string  `json:"name"`
	TokenLimit         int     `json:"tokenLimit"`
	PriceINR           float64 `json:"priceINR"`
	PriceUSD           float64 `json:"priceUSD"`
	CurrencyVisibility string  `json:"currencyVisibility"`
	Active             bool    `json:"active"`
}

// ---------- Token add-on ----------

type CreateTokenAddonRequest struct {
	Name               string  `json:"name" validate:"required"`
	ExtraTokens        int     `json:"extraTokens" validate:"gt=0"`
	PriceINR           float64 `json:"priceINR" validate:"gte=0"`
	PriceUSD           float64 `json:"priceUSD" validate:"gte=0"`
	CurrencyVisibility string  `json:"currencyVisibility" validate:"omitempty,oneof=INR USD BOTH"`
	Active             *bool   `json:"active"`
}

type UpdateTokenAddonRequest struct {
	Name               *string  `json:"name"`
	ExtraTokens        *int     `json:"extraTokens"`
	PriceINR           *float64 `json:"priceINR"`
	PriceUSD           *float64 `json:"priceUSD"`
	CurrencyVisibility *string  `json:"currencyVisibility" validate:"omitempty,oneof=INR USD BOTH"`
	Active             *bool    `json:"active"`
}

type TokenAddonResponse struct {
	Id                 string  `json:"id"`
	Name               string  `json:"name"`
	ExtraTokens        int     `json:"extraTokens"`
	PriceINR           float64 `json:"priceINR"`
	PriceUSD           float64 `json:"priceUSD"`
	CurrencyVisibility string  `json:"currencyVisibility"`
	Active             bool    `json:"active"`
}

// ---------- User ----------

type AddTokensRequest struct {
	UserId string `json:"userId" validate:"required"`
	Tokens int    `json:"tokens" validate:"gt=0"`
}

type ToggleBlockRequest struct {
	UserId string `json:"userId" validate:"required"`
}

type DisablePlanRequest struct {
	UserId string `json:"userId" validate:"required"`
}

type UserResponse struct {
	Id              string  `json:"id"`
	Email           string  `json:"email"`
	UserType        string  `json:"userType"`
	PlanName        *string `json:"planName"`
	TokensUsed      int     `json:"tokensUsed"`
	TokensRemaining int     `json:"tokensRemaining"`
	PaymentStatus   string  `json:"paymentStatus"`
	Blocked         bool    `json:"blocked"`
	JoinedAt        string  `json:"joinedAt"`
}

// ---------- Settings ----------

type UpdatePaymentConfigRequest struct {
	RazorpayKeyId     string `json:"razorpayKeyId" validate:"required"`
	RazorpayKeySecret string `json:"razorpayKeySecret" validate:"required"`
	Mode              string `json:"mode" validate:"required,oneof=Test Live"`
	AllowedCurrency   string `json:"allowedCurrency" validate:"required,oneof=INR USD"`
}

type PaymentConfigResponse struct {
	RazorpayKeyId     string `json:"razorpayKeyId"`
	RazorpayKeySecret string `json:"razorpayKeySecret"`
	Mode              string `json:"mode"`
	AllowedCurrency   string `json:"allowedCurrency"`
}

type UpdateAIConfigRequest struct {
	Provider string `json:"provider" validate:"required,oneof=OpenAI Anthropic Google"`
	ApiKey   string `json:"apiKey" validate:"required"`
	Model    string `json:"model"`
	Enabled  *bool  `json:"enabled"`
}

type AIConfigResponse struct {
	Provider string `json:"provider"`
	ApiKey   string `json:"apiKey"`
	Model    string `json:"model"`
	Enabled  bool   `json:"enabled"`
}

type AIModelCatalogResponse struct {
	Providers map[string][]string `json:"providers"`
}

type UpdateTokenRulesRequest struct {
	GuestFreeTokens    int `json:"guestFreeTokens" validate:"gte=0"`
	LoggedInFreeTokens int `json:"loggedInFreeTokens" validate:"gte=0"`
	TokensPerWord      int `json:"tokensPerWord" validate:"gt=0"`
}

type TokenRulesResponse struct {
	GuestFreeTokens    int `json:"guestFreeTokens"`
	LoggedInFreeTokens int `json:"loggedInFreeTokens"`
	TokensPerWord      int `json:"tokensPerWord"`
}

// ---------- Dashboard ----------

type DashboardStatsResponse struct {
	TotalUsers        int64   `json:"totalUsers"`
	FreeUsers         int64   `json:"freeUsers"`
	PaidUsers         int64   `json:"paidUsers"`
	TotalTokensUsed   int64   `json:"totalTokensUsed"`
	TotalRevenueINR   float64 `json:"totalRevenueINR"`
	TotalRevenueUSD   float64 `json:"totalRevenueUSD"`
	ActiveAIProvider  string  `json:"activeAIProvider"`
	ConversionRate    float64 `json:"conversionRate"`
	AvgTokensPerUser  int64   `json:"avgTokensPerUser"`
	ARPUInr           float64 `json:"arpuINR"`
}

// ---------- Audit ----------

// AuditEventMessage is the payload carried on the internal event bus
// for every admin mutation.
type AuditEventMessage struct {
	Actor      string                 `json:"actor"`
	Action     string                 `json:"action"`
	EntityType string                 `json:"entityType"`
	EntityId   string                 `json:"entityId"`
	Details    map[string]interface{} `json:"details,omitempty"`
	OccurredAt time.Time              `json:"occurredAt"`
}

// ---------- System logs ----------

type LogListResponse struct {
	Id        string    `json:"id"`
	Level     string    `json:"level"`
	Module    string    `json:"module"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type LogDetailResponse struct {
	LogListResponse
	Details map[string]interface{} `json:"details,omitempty"`
}

type AuditLogResponse struct {
	Id         string                 `json:"id"`
	Actor      string                 `json:"actor"`
	Action     string                 `json:"action"`
	EntityType string                 `json:"entityType"`
	EntityId   string                 `json:"entityId"`
	Details    map[string]interface{} `json:"details,omitempty"`
	CreatedAt  time.Time              `json:"createdAt"`
}
