package implementation

import (
	"context"

	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/mapper"
	"ai-humanizer-be/internal/model"
	"ai-humanizer-be/internal/repository/contract"

	"gorm.io/gorm"
)

type AuditLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SettingsMapper
}

func NewAuditLogRepository(db *gorm.DB) contract.AuditLogRepository {
	return &AuditLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewSettingsMapper(),
	}
}

func (r *AuditLogRepositoryImpl) Create(ctx context.Context, log *entity.AuditLog) error {
	m := r.mapper.AuditLogToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	log.Id = m.Id
	log.CreatedAt = m.CreatedAt
	return nil
}

func (r *AuditLogRepositoryImpl) FindRecent(ctx context.Context, limit int) ([]*entity.AuditLog, error) {
	var models []*model.AuditLog
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	logs := make([]*entity.AuditLog, 0, len(models))
	for _, m := range models {
		logs = append(logs, r.mapper.AuditLogToEntity(m))
	}
	return logs, nil
}
