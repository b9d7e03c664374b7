package memory

import (
	"sync"
	"time"

	"ai-humanizer-be/internal/entity"

	"github.com/google/uuid"
)

// Store is an in-memory backend that mirrors the postgres schema. It
// backs integration tests and local runs without a database.
type Store struct {
	mu sync.RWMutex

	plans     map[uuid.UUID]*entity.Plan
	planOrder []uuid.UUID

	addons     map[uuid.UUID]*entity.TokenAddon
	addonOrder []uuid.UUID

	users     map[uuid.UUID]*entity.User
	userOrder []uuid.UUID

	paymentConfig *entity.PaymentConfig
	aiConfig      *entity.AiConfig
	tokenRules    *entity.TokenRules
	statsCounters *entity.StatsCounters

	auditLogs []*entity.AuditLog
}

func NewStore() *Store {
	return &Store{
		plans:  make(map[uuid.UUID]*entity.Plan),
		addons: make(map[uuid.UUID]*entity.TokenAddon),
		users:  make(map[uuid.UUID]*entity.User),
	}
}

func copyPlan(p *entity.Plan) *entity.Plan {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func copyAddon(a *entity.TokenAddon) *entity.TokenAddon {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func copyUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u
	if u.PlanName != nil {
		name := *u.PlanName
		c.PlanName = &name
	}
	return &c
}

func copyAuditLog(l *entity.AuditLog) *entity.AuditLog {
	if l == nil {
		return nil
	}
	c := *l
	if l.Details != nil {
		details := make(map[string]interface{}, len(l.Details))
		for k, v := range l.Details {
			details[k] = v
		}
		c.Details = details
	}
	return &c
}

// SeedUser inserts a user directly, useful for test fixtures.
func (s *Store) SeedUser(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.Id == uuid.Nil {
		u.Id = uuid.New()
	}
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	s.users[u.Id] = copyUser(u)
	s.userOrder = append(s.userOrder, u.Id)
}

// SeedPlan inserts a plan directly, useful for test fixtures.
func (s *Store) SeedPlan(p *entity.Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Id == uuid.Nil {
		p.Id = uuid.New()
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	s.plans[p.Id] = copyPlan(p)
	s.planOrder = append(s.planOrder, p.Id)
}

// SeedStatsCounters sets the stored counters directly.
func (s *Store) SeedStatsCounters(c *entity.StatsCounters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := *c
	s.statsCounters = &snapshot
}
