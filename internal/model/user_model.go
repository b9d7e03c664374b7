package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	UserType        string    `gorm:"type:varchar(10);not null;default:'Free'"`
	PlanName        *string   `gorm:"type:varchar(255)"`
	TokensUsed      int       `gorm:"not null;default:0"`
	TokensRemaining int       `gorm:"not null;default:0"`
	PaymentStatus   string    `gorm:"type:varchar(10);not null;default:'N/A'"`
	Blocked         bool      `gorm:"default:false"`
	JoinedAt        time.Time `gorm:"type:date;not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
