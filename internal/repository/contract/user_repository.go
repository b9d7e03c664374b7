package contract

import (
	"context"

	"ai-humanizer-be/internal/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	// FindOne returns (nil, nil) when no user matches the id.
	FindOne(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	// SearchByEmail matches users whose email contains q, case insensitive.
	SearchByEmail(ctx context.Context, q string) ([]*entity.User, error)
	Count(ctx context.Context) (int64, error)
	CountByType(ctx context.Context, userType entity.UserType) (int64, error)
}
