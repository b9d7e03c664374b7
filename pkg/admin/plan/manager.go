package plan

import (
	"context"
	"strings"

	"ai-humanizer-be/internal/dto"
	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Manager handles plan-related admin operations
type Manager struct{}

// NewManager creates a new plan manager
func NewManager() *Manager {
	return &Manager{}
}

// Create creates a new subscription plan
func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.CreatePlanRequest) (*entity.Plan, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, dto.NewValidationError("name", "name required")
	}
	if req.TokenLimit < 0 || req.PriceINR < 0 || req.PriceUSD < 0 {
		return nil, dto.NewValidationError("tokenLimit", "negative value")
	}

	visibility := entity.CurrencyVisibility(req.CurrencyVisibility)
	if req.CurrencyVisibility == "" {
		visibility = entity.CurrencyVisibilityBoth
	} else if !visibility.Valid() {
		return nil, dto.NewValidationError("currencyVisibility", "invalid currency visibility")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	newPlan := &entity.Plan{
		Name:               name,
		TokenLimit:         req.TokenLimit,
		PriceINR:           req.PriceINR,
		PriceUSD:           req.PriceUSD,
		CurrencyVisibility: visibility,
		Active:             active,
	}

	if err := uow.PlanRepository().Create(ctx, newPlan); err != nil {
		return nil, err
	}

	return newPlan, nil
}

// Update applies a partial update to a plan. Absent fields keep their
// stored value.
func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.UpdatePlanRequest) (*entity.Plan, error) {
	plan, err := uow.PlanRepository().FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, dto.NewNotFoundError("plan", id.String())
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, dto.NewValidationError("name", "name required")
		}
		plan.Name = name
	}
	if req.TokenLimit != nil {
		if *req.TokenLimit < 0 {
			return nil, dto.NewValidationError("tokenLimit", "negative value")
		}
		plan.TokenLimit = *req.TokenLimit
	}
	if req.PriceINR != nil {
		if *req.PriceINR < 0 {
			return nil, dto.NewValidationError("priceINR", "negative value")
		}
		plan.PriceINR = *req.PriceINR
	}
	if req.PriceUSD != nil {
		if *req.PriceUSD < 0 {
			return nil, dto.NewValidationError("priceUSD", "negative value")
		}
		plan.PriceUSD = *req.PriceUSD
	}
	if req.CurrencyVisibility != nil {
		visibility := entity.CurrencyVisibility(*req.CurrencyVisibility)
		if !visibility.Valid() {
			return nil, dto.NewValidationError("currencyVisibility", "invalid currency visibility")
		}
		plan.CurrencyVisibility = visibility
	}
	if req.Active != nil {
		plan.Active = *req.Active
	}

	if err := uow.PlanRepository().Update(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// FindAll retrieves all plans
func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.Plan, error) {
	return uow.PlanRepository().FindAll(ctx)
}

// FindOne retrieves a single plan by ID
func (m *Manager) FindOne(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Plan, error) {
	return uow.PlanRepository().FindOne(ctx, id)
}
