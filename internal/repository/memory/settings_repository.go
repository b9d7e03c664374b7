package memory

import (
	"context"
	"time"

	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/repository/contract"

	"github.com/google/uuid"
)

type settingsRepository struct {
	store *Store
}

func NewSettingsRepository(store *Store) contract.SettingsRepository {
	return &settingsRepository{store: store}
}

func (r *settingsRepository) GetPaymentConfig(ctx context.Context) (*entity.PaymentConfig, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.paymentConfig == nil {
		return nil, nil
	}
	c := *r.store.paymentConfig
	return &c, nil
}

func (r *settingsRepository) SavePaymentConfig(ctx context.Context, config *entity.PaymentConfig) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c := *config
	r.store.paymentConfig = &c
	return nil
}

func (r *settingsRepository) GetAiConfig(ctx context.Context) (*entity.AiConfig, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.aiConfig == nil {
		return nil, nil
	}
	c := *r.store.aiConfig
	return &c, nil
}

func (r *settingsRepository) SaveAiConfig(ctx context.Context, config *entity.AiConfig) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c := *config
	r.store.aiConfig = &c
	return nil
}

func (r *settingsRepository) GetTokenRules(ctx context.Context) (*entity.TokenRules, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.tokenRules == nil {
		return nil, nil
	}
	c := *r.store.tokenRules
	return &c, nil
}

func (r *settingsRepository) SaveTokenRules(ctx context.Context, rules *entity.TokenRules) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c := *rules
	r.store.tokenRules = &c
	return nil
}

func (r *settingsRepository) GetStatsCounters(ctx context.Context) (*entity.StatsCounters, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.statsCounters == nil {
		return nil, nil
	}
	c := *r.store.statsCounters
	return &c, nil
}

func (r *settingsRepository) SaveStatsCounters(ctx context.Context, counters *entity.StatsCounters) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c := *counters
	r.store.statsCounters = &c
	return nil
}

type auditLogRepository struct {
	store *Store
}

func NewAuditLogRepository(store *Store) contract.AuditLogRepository {
	return &auditLogRepository{store: store}
}

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if log.Id == uuid.Nil {
		log.Id = uuid.New()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	r.store.auditLogs = append(r.store.auditLogs, copyAuditLog(log))
	return nil
}

func (r *auditLogRepository) FindRecent(ctx context.Context, limit int) ([]*entity.AuditLog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	logs := make([]*entity.AuditLog, 0, limit)
	for i := len(r.store.auditLogs) - 1; i >= 0 && len(logs) < limit; i-- {
		logs = append(logs, copyAuditLog(r.store.auditLogs[i]))
	}
	return logs, nil
}
