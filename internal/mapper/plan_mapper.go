package mapper

import (
	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/model"
)

type PlanMapper struct{}

func NewPlanMapper() *PlanMapper {
	return &PlanMapper{}
}

func (m *PlanMapper) ToEntity(p *model.Plan) *entity.Plan {
	if p == nil {
		return nil
	}
	return &entity.Plan{
		Id:                 p.Id,
		Name:               p.Name,
		TokenLimit:         p.TokenLimit,
		PriceINR:           p.PriceINR,
		PriceUSD:           p.PriceUSD,
		CurrencyVisibility: entity.CurrencyVisibility(p.CurrencyVisibility),
		Active:             p.Active,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func (m *PlanMapper) ToModel(p *entity.Plan) *model.Plan {
	if p == nil {
		return nil
	}
	return &model.Plan{
		Id:                 p.Id,
		Name:               p.Name,
		TokenLimit:         p.TokenLimit,
		PriceINR:           p.PriceINR,
		PriceUSD:           p.PriceUSD,
		CurrencyVisibility: string(p.CurrencyVisibility),
		Active:             p.Active,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func (m *PlanMapper) ToEntities(models []*model.Plan) []*entity.Plan {
	entities := make([]*entity.Plan, 0, len(models))
	for _, p := range models {
		entities = append(entities, m.ToEntity(p))
	}
	return entities
}
