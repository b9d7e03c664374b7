package mapper

import (
	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:              u.Id,
		Email:           u.Email,
		UserType:        entity.UserType(u.UserType),
		PlanName:        u.PlanName,
		TokensUsed:      u.TokensUsed,
		TokensRemaining: u.TokensRemaining,
		PaymentStatus:   entity.PaymentStatus(u.PaymentStatus),
		Blocked:         u.Blocked,
		JoinedAt:        u.JoinedAt,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:              u.Id,
		Email:           u.Email,
		UserType:        string(u.UserType),
		PlanName:        u.PlanName,
		TokensUsed:      u.TokensUsed,
		TokensRemaining: u.TokensRemaining,
		PaymentStatus:   string(u.PaymentStatus),
		Blocked:         u.Blocked,
		JoinedAt:        u.JoinedAt,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(models []*model.User) []*entity.User {
	entities := make([]*entity.User, 0, len(models))
	for _, u := range models {
		entities = append(entities, m.ToEntity(u))
	}
	return entities
}
