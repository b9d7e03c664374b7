package user

import (
	"context"

	"ai-humanizer-be/internal/dto"
	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/pkg/logger"
	"ai-humanizer-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Manager handles user entitlement admin operations
type Manager struct {
	logger logger.ILogger
}

// NewManager creates a new user manager
func NewManager(logger logger.ILogger) *Manager {
	return &Manager{
		logger: logger,
	}
}

// FindAll retrieves users, optionally filtered by an email substring
func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork, search string) ([]*entity.User, error) {
	if search != "" {
		return uow.UserRepository().SearchByEmail(ctx, search)
	}
	return uow.UserRepository().FindAll(ctx)
}

// FindOne retrieves a single user by ID
func (m *Manager) FindOne(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.User, error) {
	return uow.UserRepository().FindOne(ctx, userId)
}

// AddTokens grants extra tokens to a user's remaining balance
func (m *Manager) AddTokens(ctx context.Context, uow unitofwork.UnitOfWork, req dto.AddTokensRequest) (*entity.User, error) {
	if req.Tokens <= 0 {
		return nil, dto.NewValidationError("tokens", "tokens must exceed 0")
	}

	userId, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, dto.NewValidationError("userId", "invalid user id")
	}

	user, err := uow.UserRepository().FindOne(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, dto.NewNotFoundError("user", req.UserId)
	}

	user.TokensRemaining += req.Tokens

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	m.logger.Info("ADMIN", "Granted tokens", map[string]interface{}{
		"userId": user.Id.String(),
		"tokens": req.Tokens,
	})

	return user, nil
}

// ToggleBlock flips the blocked flag on a user
func (m *Manager) ToggleBlock(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, dto.NewNotFoundError("user", userId.String())
	}

	user.Blocked = !user.Blocked

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DisablePlan detaches the user's plan and downgrades them to Free.
// Disabling an already plan-less user is a no-op on the plan fields.
func (m *Manager) DisablePlan(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, dto.NewNotFoundError("user", userId.String())
	}

	user.PlanName = nil
	user.UserType = entity.UserTypeFree
	user.PaymentStatus = entity.PaymentStatusNA

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
