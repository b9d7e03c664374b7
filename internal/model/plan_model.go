package model

import (
	"time"

	"github.com/google/uuid"
)

type Plan struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name               string    `gorm:"type:varchar(255);not null"`
	TokenLimit         int       `gorm:"not null;default:0"`
	PriceINR           float64   `gorm:"column:price_inr;type:decimal(10,2);not null;default:0"`
	PriceUSD           float64   `gorm:"column:price_usd;type:decimal(10,2);not null;default:0"`
	CurrencyVisibility string    `gorm:"type:varchar(10);not null;default:'BOTH'"`
	Active             bool      `gorm:"default:true"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (Plan) TableName() string {
	return "plans"
}

type TokenAddon struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name               string    `gorm:"type:varchar(255);not null"`
	ExtraTokens        int       `gorm:"not null"`
	PriceINR           float64   `gorm:"column:price_inr;type:decimal(10,2);not null;default:0"`
	PriceUSD           float64   `gorm:"column:price_usd;type:decimal(10,2);not null;default:0"`
	CurrencyVisibility string    `gorm:"type:varchar(10);not null;default:'BOTH'"`
	Active             bool      `gorm:"default:true"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (TokenAddon) TableName() string {
	return "token_addons"
}
