package memory

import (
	"context"
	"time"

	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/repository/contract"

	"github.com/google/uuid"
)

type planRepository struct {
	store *Store
}

func NewPlanRepository(store *Store) contract.PlanRepository {
	return &planRepository{store: store}
}

func (r *planRepository) Create(ctx context.Context, plan *entity.Plan) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if plan.Id == uuid.Nil {
		plan.Id = uuid.New()
	}
	now := time.Now()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	r.store.plans[plan.Id] = copyPlan(plan)
	r.store.planOrder = append(r.store.planOrder, plan.Id)
	return nil
}

func (r *planRepository) Update(ctx context.Context, plan *entity.Plan) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	plan.UpdatedAt = time.Now()
	r.store.plans[plan.Id] = copyPlan(plan)
	return nil
}

func (r *planRepository) FindOne(ctx context.Context, id uuid.UUID) (*entity.Plan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copyPlan(r.store.plans[id]), nil
}

func (r *planRepository) FindAll(ctx context.Context) ([]*entity.Plan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	plans := make([]*entity.Plan, 0, len(r.store.planOrder))
	for _, id := range r.store.planOrder {
		if p, ok := r.store.plans[id]; ok {
			plans = append(plans, copyPlan(p))
		}
	}
	return plans, nil
}

type tokenAddonRepository struct {
	store *Store
}

func NewTokenAddonRepository(store *Store) contract.TokenAddonRepository {
	return &tokenAddonRepository{store: store}
}

func (r *tokenAddonRepository) Create(ctx context.Context, addon *entity.TokenAddon) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if addon.Id == uuid.Nil {
		addon.Id = uuid.New()
	}
	now := time.Now()
	addon.CreatedAt = now
	addon.UpdatedAt = now
	r.store.addons[addon.Id] = copyAddon(addon)
	r.store.addonOrder = append(r.store.addonOrder, addon.Id)
	return nil
}

func (r *tokenAddonRepository) Update(ctx context.Context, addon *entity.TokenAddon) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	addon.UpdatedAt = time.Now()
	r.store.addons[addon.Id] = copyAddon(addon)
	return nil
}

func (r *tokenAddonRepository) FindOne(ctx context.Context, id uuid.UUID) (*entity.TokenAddon, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copyAddon(r.store.addons[id]), nil
}

func (r *tokenAddonRepository) FindAll(ctx context.Context) ([]*entity.TokenAddon, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	addons := make([]*entity.TokenAddon, 0, len(r.store.addonOrder))
	for _, id := range r.store.addonOrder {
		if a, ok := r.store.addons[id]; ok {
			addons = append(addons, copyAddon(a))
		}
	}
	return addons, nil
}
