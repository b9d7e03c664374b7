package contract

import (
	"context"

	"ai-humanizer-be/internal/entity"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	// FindRecent returns the newest entries first, capped at limit.
	FindRecent(ctx context.Context, limit int) ([]*entity.AuditLog, error)
}
