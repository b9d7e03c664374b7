package mapper

import (
	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/model"
)

type TokenAddonMapper struct{}

func NewTokenAddonMapper() *TokenAddonMapper {
	return &TokenAddonMapper{}
}

func (m *TokenAddonMapper) ToEntity(a *model.TokenAddon) *entity.TokenAddon {
	if a == nil {
		return nil
	}
	return &entity.TokenAddon{
		Id:                 a.Id,
		Name:               a.Name,
		ExtraTokens:        a.ExtraTokens,
		PriceINR:           a.PriceINR,
		PriceUSD:           a.PriceUSD,
		CurrencyVisibility: entity.CurrencyVisibility(a.CurrencyVisibility),
		Active:             a.Active,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func (m *TokenAddonMapper) ToModel(a *entity.TokenAddon) *model.TokenAddon {
	if a == nil {
		return nil
	}
	return &model.TokenAddon{
		Id:                 a.Id,
		Name:               a.Name,
		ExtraTokens:        a.ExtraTokens,
		PriceINR:           a.PriceINR,
		PriceUSD:           a.PriceUSD,
		CurrencyVisibility: string(a.CurrencyVisibility),
		Active:             a.Active,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func (m *TokenAddonMapper) ToEntities(models []*model.TokenAddon) []*entity.TokenAddon {
	entities := make([]*entity.TokenAddon, 0, len(models))
	for _, a := range models {
		entities = append(entities, m.ToEntity(a))
	}
	return entities
}
