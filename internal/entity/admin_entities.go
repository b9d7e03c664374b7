package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records a single admin mutation, persisted asynchronously by
// the audit consumer from published admin events.
type AuditLog struct {
	Id         uuid.UUID
	Actor      string
	Action     string
	EntityType string
	EntityId   string
	Details    map[string]interface{} // JSONB
	CreatedAt  time.Time
}

// Audit action codes emitted by the operation service.
const (
	AuditActionPlanCreated          = "PLAN_CREATED"
	AuditActionPlanUpdated          = "PLAN_UPDATED"
	AuditActionAddonCreated         = "ADDON_CREATED"
	AuditActionAddonUpdated         = "ADDON_UPDATED"
	AuditActionTokensGranted        = "TOKENS_GRANTED"
	AuditActionUserBlockToggled     = "USER_BLOCK_TOGGLED"
	AuditActionUserPlanDisabled     = "USER_PLAN_DISABLED"
	AuditActionPaymentConfigUpdated = "PAYMENT_CONFIG_UPDATED"
	AuditActionAiConfigUpdated      = "AI_CONFIG_UPDATED"
	AuditActionTokenRulesUpdated    = "TOKEN_RULES_UPDATED"
)
