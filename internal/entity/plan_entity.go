package entity

import (
	"time"

	"github.com/google/uuid"
)

type CurrencyVisibility string

const (
	CurrencyVisibilityINR  CurrencyVisibility = "INR"
	CurrencyVisibilityUSD  CurrencyVisibility = "USD"
	CurrencyVisibilityBoth CurrencyVisibility = "BOTH"
)

func (v CurrencyVisibility) Valid() bool {
	switch v {
	case CurrencyVisibilityINR, CurrencyVisibilityUSD, CurrencyVisibilityBoth:
		return true
	}
	return false
}

// Plan is a purchasable subscription tier with a token allowance.
// Plans are never hard-deleted; deactivation (Active=false) is the only
// removal mechanism.
type Plan struct {
	Id                 uuid.UUID
	Name               string
	TokenLimit         int
	PriceINR           float64
	PriceUSD           float64
	CurrencyVisibility CurrencyVisibility
	Active             bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TokenAddon is a one-time purchasable top-up of extra tokens.
// Same lifecycle shape as Plan.
type TokenAddon struct {
	Id                 uuid.UUID
	Name               string
	ExtraTokens        int
	PriceINR           float64
	PriceUSD           float64
	CurrencyVisibility CurrencyVisibility
	Active             bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
