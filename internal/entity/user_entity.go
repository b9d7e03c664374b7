package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserType string
type PaymentStatus string

const (
	UserTypeFree UserType = "Free"
	UserTypePaid UserType = "Paid"

	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusNA      PaymentStatus = "N/A"
)

// User is an end-user account as the admin console sees it. Accounts are
// provisioned by the product side; the console only adjusts entitlements.
// Email is unique and immutable after creation.
type User struct {
	Id              uuid.UUID
	Email           string
	UserType        UserType
	PlanName        *string // loose reference to a Plan name, not an enforced FK
	TokensUsed      int
	TokensRemaining int
	PaymentStatus   PaymentStatus
	Blocked         bool
	JoinedAt        time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
