package implementation

import (
	"context"
	"errors"

	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/mapper"
	"ai-humanizer-be/internal/model"
	"ai-humanizer-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SettingsMapper
}

func NewSettingsRepository(db *gorm.DB) contract.SettingsRepository {
	return &SettingsRepositoryImpl{
		db:     db,
		mapper: mapper.NewSettingsMapper(),
	}
}

// upsert writes the singleton row, replacing all columns on conflict.
func (r *SettingsRepositoryImpl) upsert(ctx context.Context, m interface{}) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(m).Error
}

func (r *SettingsRepositoryImpl) GetPaymentConfig(ctx context.Context) (*entity.PaymentConfig, error) {
	var m model.PaymentConfig
	err := r.db.WithContext(ctx).Where("id = ?", mapper.SingletonRowId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PaymentConfigToEntity(&m), nil
}

func (r *SettingsRepositoryImpl) SavePaymentConfig(ctx context.Context, config *entity.PaymentConfig) error {
	return r.upsert(ctx, r.mapper.PaymentConfigToModel(config))
}

func (r *SettingsRepositoryImpl) GetAiConfig(ctx context.Context) (*entity.AiConfig, error) {
	var m model.AiConfig
	err := r.db.WithContext(ctx).Where("id = ?", mapper.SingletonRowId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.AiConfigToEntity(&m), nil
}

func (r *SettingsRepositoryImpl) SaveAiConfig(ctx context.Context, config *entity.AiConfig) error {
	return r.upsert(ctx, r.mapper.AiConfigToModel(config))
}

func (r *SettingsRepositoryImpl) GetTokenRules(ctx context.Context) (*entity.TokenRules, error) {
	var m model.TokenRules
	err := r.db.WithContext(ctx).Where("id = ?", mapper.SingletonRowId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TokenRulesToEntity(&m), nil
}

func (r *SettingsRepositoryImpl) SaveTokenRules(ctx context.Context, rules *entity.TokenRules) error {
	return r.upsert(ctx, r.mapper.TokenRulesToModel(rules))
}

func (r *SettingsRepositoryImpl) GetStatsCounters(ctx context.Context) (*entity.StatsCounters, error) {
	var m model.StatsCounters
	err := r.db.WithContext(ctx).Where("id = ?", mapper.SingletonRowId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.StatsCountersToEntity(&m), nil
}

func (r *SettingsRepositoryImpl) SaveStatsCounters(ctx context.Context, counters *entity.StatsCounters) error {
	return r.upsert(ctx, r.mapper.StatsCountersToModel(counters))
}
