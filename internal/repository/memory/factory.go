package memory

import (
	"context"

	"ai-humanizer-be/internal/repository/contract"
	"ai-humanizer-be/internal/repository/unitofwork"
)

type repositoryFactory struct {
	store *Store
}

// NewRepositoryFactory builds a unit of work factory backed by the
// given in-memory store.
func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &repositoryFactory{store: store}
}

func (f *repositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}

// unitOfWork over the in-memory store. Begin, Commit and Rollback are
// no-ops since the store mutates under its own lock.
type unitOfWork struct {
	store *Store
}

func (u *unitOfWork) Begin(ctx context.Context) error { return nil }
func (u *unitOfWork) Commit() error                   { return nil }
func (u *unitOfWork) Rollback() error                 { return nil }

func (u *unitOfWork) PlanRepository() contract.PlanRepository {
	return NewPlanRepository(u.store)
}

func (u *unitOfWork) TokenAddonRepository() contract.TokenAddonRepository {
	return NewTokenAddonRepository(u.store)
}

func (u *unitOfWork) UserRepository() contract.UserRepository {
	return NewUserRepository(u.store)
}

func (u *unitOfWork) SettingsRepository() contract.SettingsRepository {
	return NewSettingsRepository(u.store)
}

func (u *unitOfWork) AuditLogRepository() contract.AuditLogRepository {
	return NewAuditLogRepository(u.store)
}
