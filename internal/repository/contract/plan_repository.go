package contract

import (
	"context"

	"ai-humanizer-be/internal/entity"

	"github.com/google/uuid"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *entity.Plan) error
	Update(ctx context.Context, plan *entity.Plan) error
	// FindOne returns (nil, nil) when no plan matches the id.
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Plan, error)
	FindAll(ctx context.Context) ([]*entity.Plan, error)
}

type TokenAddonRepository interface {
	Create(ctx context.Context, addon *entity.TokenAddon) error
	Update(ctx context.Context, addon *entity.TokenAddon) error
	// FindOne returns (nil, nil) when no add-on matches the id.
	FindOne(ctx context.Context, id uuid.UUID) (*entity.TokenAddon, error)
	FindAll(ctx context.Context) ([]*entity.TokenAddon, error)
}
