package unitofwork

import (
	"context"

	"ai-humanizer-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PlanRepository() contract.PlanRepository
	TokenAddonRepository() contract.TokenAddonRepository
	UserRepository() contract.UserRepository
	SettingsRepository() contract.SettingsRepository
	AuditLogRepository() contract.AuditLogRepository
}
