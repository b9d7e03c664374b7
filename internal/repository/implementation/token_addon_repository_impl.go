package implementation

import (
	"context"
	"errors"

	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/mapper"
	"ai-humanizer-be/internal/model"
	"ai-humanizer-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TokenAddonRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TokenAddonMapper
}

func NewTokenAddonRepository(db *gorm.DB) contract.TokenAddonRepository {
	return &TokenAddonRepositoryImpl{
		db:     db,
		mapper: mapper.NewTokenAddonMapper(),
	}
}

func (r *TokenAddonRepositoryImpl) Create(ctx context.Context, addon *entity.TokenAddon) error {
	m := r.mapper.ToModel(addon)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	addon.Id = m.Id
	addon.CreatedAt = m.CreatedAt
	addon.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TokenAddonRepositoryImpl) Update(ctx context.Context, addon *entity.TokenAddon) error {
	m := r.mapper.ToModel(addon)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *TokenAddonRepositoryImpl) FindOne(ctx context.Context, id uuid.UUID) (*entity.TokenAddon, error) {
	var m model.TokenAddon
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TokenAddonRepositoryImpl) FindAll(ctx context.Context) ([]*entity.TokenAddon, error) {
	var models []*model.TokenAddon
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
