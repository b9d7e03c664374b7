package model

import "time"

// Singleton tables: a fixed primary key keeps exactly one live row each.

type PaymentConfig struct {
	Id                int       `gorm:"primaryKey"`
	RazorpayKeyId     string    `gorm:"type:varchar(255);not null"`
	RazorpayKeySecret string    `gorm:"type:varchar(255);not null"`
	Mode              string    `gorm:"type:varchar(10);not null;default:'Test'"`
	AllowedCurrency   string    `gorm:"type:varchar(10);not null;default:'INR'"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (PaymentConfig) TableName() string {
	return "payment_config"
}

type AiConfig struct {
	Id        int       `gorm:"primaryKey"`
	Provider  string    `gorm:"type:varchar(50);not null"`
	ApiKey    string    `gorm:"type:varchar(255);not null"`
	Model     string    `gorm:"type:varchar(100);not null"`
	Enabled   bool      `gorm:"default:true"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (AiConfig) TableName() string {
	return "ai_config"
}

type TokenRules struct {
	Id                 int       `gorm:"primaryKey"`
	GuestFreeTokens    int       `gorm:"not null;default:0"`
	LoggedInFreeTokens int       `gorm:"not null;default:0"`
	TokensPerWord      int       `gorm:"not null;default:1"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (TokenRules) TableName() string {
	return "token_rules"
}

type StatsCounters struct {
	Id               int       `gorm:"primaryKey"`
	TotalTokensUsed  int64     `gorm:"not null;default:0"`
	TotalRevenueINR  float64   `gorm:"column:total_revenue_inr;type:decimal(14,2);not null;default:0"`
	TotalRevenueUSD  float64   `gorm:"column:total_revenue_usd;type:decimal(14,2);not null;default:0"`
	ActiveAiProvider string    `gorm:"type:varchar(50);not null;default:'OpenAI'"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (StatsCounters) TableName() string {
	return "stats_counters"
}
