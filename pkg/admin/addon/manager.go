package addon

import (
	"context"
	"strings"

	"ai-humanizer-be/internal/dto"
	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Manager handles token add-on admin operations
type Manager struct{}

// NewManager creates a new add-on manager
func NewManager() *Manager {
	return &Manager{}
}

// Create creates a new token add-on
func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.CreateTokenAddonRequest) (*entity.TokenAddon, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, dto.NewValidationError("name", "name required")
	}
	if req.ExtraTokens <= 0 {
		return nil, dto.NewValidationError("extraTokens", "extraTokens must exceed 0")
	}
	if req.PriceINR < 0 || req.PriceUSD < 0 {
		return nil, dto.NewValidationError("priceINR", "negative value")
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

	newAddon := &entity.TokenAddon{
		Name:               name,
		ExtraTokens:        req.ExtraTokens,
		PriceINR:           req.PriceINR,
		PriceUSD:           req.PriceUSD,
		CurrencyVisibility: visibility,
		Active:             active,
	}

	if err := uow.TokenAddonRepository().Create(ctx, newAddon); err != nil {
		return nil, err
	}

	return newAddon, nil
}

// Update applies a partial update to an add-on. Absent fields keep
// their stored value.
func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.UpdateTokenAddonRequest) (*entity.TokenAddon, error) {
	addon, err := uow.TokenAddonRepository().FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if addon == nil {
		return nil, dto.NewNotFoundError("token add-on", id.String())
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, dto.NewValidationError("name", "name required")
		}
		addon.Name = name
	}
	if req.ExtraTokens != nil {
		if *req.ExtraTokens <= 0 {
			return nil, dto.NewValidationError("extraTokens", "extraTokens must exceed 0")
		}
		addon.ExtraTokens = *req.ExtraTokens
	}
	if req.PriceINR != nil {
		if *req.PriceINR < 0 {
			return nil, dto.NewValidationError("priceINR", "negative value")
		}
		addon.PriceINR = *req.PriceINR
	}
	if req.PriceUSD != nil {
		if *req.PriceUSD < 0 {
			return nil, dto.NewValidationError("priceUSD", "negative value")
		}
		addon.PriceUSD = *req.PriceUSD
	}
	if req.CurrencyVisibility != nil {
		visibility := entity.CurrencyVisibility(*req.CurrencyVisibility)
		if !visibility.Valid() {
			return nil, dto.NewValidationError("currencyVisibility", "invalid currency visibility")
		}
		addon.CurrencyVisibility = visibility
	}
	if req.Active != nil {
		addon.Active = *req.Active
	}

	if err := uow.TokenAddonRepository().Update(ctx, addon); err != nil {
		return nil, err
	}

	return addon, nil
}

// FindAll retrieves all token add-ons
func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.TokenAddon, error) {
	return uow.TokenAddonRepository().FindAll(ctx)
}

// FindOne retrieves a single token add-on by ID
func (m *Manager) FindOne(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.TokenAddon, error) {
	return uow.TokenAddonRepository().FindOne(ctx, id)
}
