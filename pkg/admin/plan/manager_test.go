package plan_test

import (
	"context"
	"testing"

	"ai-humanizer-be/internal/dto"
	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/repository/memory"
	"ai-humanizer-be/pkg/admin/plan"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }

func TestPlanCreate(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory(memory.NewStore())
	manager := plan.NewManager()

	created, err := manager.Create(ctx, factory.NewUnitOfWork(ctx), dto.CreatePlanRequest{
		Name:       "Pro",
		TokenLimit: 50000,
		PriceINR:   499,
		PriceUSD:   5.99,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.Id)
	assert.Equal(t, "Pro", created.Name)
	assert.Equal(t, entity.CurrencyVisibilityBoth, created.CurrencyVisibility)
	assert.True(t, created.Active)

	plans, err := manager.FindAll(ctx, factory.NewUnitOfWork(ctx))
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, created.Id, plans[0].Id)
}

func TestPlanCreateValidation(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory(memory.NewStore())
	manager := plan.NewManager()

	_, err := manager.Create(ctx, factory.NewUnitOfWork(ctx), dto.CreatePlanRequest{
		TokenLimit: 5000,
	})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name required", verr.Message)

	_, err = manager.Create(ctx, factory.NewUnitOfWork(ctx), dto.CreatePlanRequest{
		Name:     "Broken",
		PriceINR: -1,
	})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "negative value", verr.Message)
}

func TestPlanNameWhitespaceOnly(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory(memory.NewStore())
	manager := plan.NewManager()

	// A whitespace-only name is empty after trimming.
	_, err := manager.Create(ctx, factory.NewUnitOfWork(ctx), dto.CreatePlanRequest{
		Name:       "   ",
		TokenLimit: 5000,
	})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name required", verr.Message)

	plans, err := manager.FindAll(ctx, factory.NewUnitOfWork(ctx))
	require.NoError(t, err)
	assert.Empty(t, plans)

	created, err := manager.Create(ctx, factory.NewUnitOfWork(ctx), dto.CreatePlanRequest{
		Name:       "  Pro  ",
		TokenLimit: 50000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pro", created.Name)

	_, err = manager.Update(ctx, factory.NewUnitOfWork(ctx), created.Id, dto.UpdatePlanRequest{
		Name: strPtr("\t\n"),
	})
	require.ErrorAs(t, err, &verr)

	stored, err := manager.FindOne(ctx, factory.NewUnitOfWork(ctx), created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Pro", stored.Name)
}

func TestPlanUpdatePartialMerge(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory(memory.NewStore())
	manager := plan.NewManager()

	created, err := manager.Create(ctx, factory.NewUnitOfWork(ctx), dto.CreatePlanRequest{
		Name:       "Normal",
		TokenLimit: 5000,
		PriceINR:   0,
		PriceUSD:   0,
	})
	require.NoError(t, err)

	// Only price changes; everything else keeps its stored value.
	updated, err := manager.Update(ctx, factory.NewUnitOfWork(ctx), created.Id, dto.UpdatePlanRequest{
		PriceINR: floatPtr(199),
	})
	require.NoError(t, err)
	assert.Equal(t, "Normal", updated.Name)
	assert.Equal(t, 5000, updated.TokenLimit)
	assert.Equal(t, float64(199), updated.PriceINR)
	assert.True(t, updated.Active)

	updated, err = manager.Update(ctx, factory.NewUnitOfWork(ctx), created.Id, dto.UpdatePlanRequest{
		Name:       strPtr("Starter"),
		TokenLimit: intPtr(10000),
		Active:     boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Starter", updated.Name)
	assert.Equal(t, 10000, updated.TokenLimit)
	assert.False(t, updated.Active)
	assert.Equal(t, float64(199), updated.PriceINR)
}

func TestPlanUpdateValidation(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory(memory.NewStore())
	manager := plan.NewManager()

	created, err := manager.Create(ctx, factory.NewUnitOfWork(ctx), dto.CreatePlanRequest{
		Name: "Pro", TokenLimit: 50000,
	})
	require.NoError(t, err)

	_, err = manager.Update(ctx, factory.NewUnitOfWork(ctx), created.Id, dto.UpdatePlanRequest{
		TokenLimit: intPtr(-5),
	})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)

	// Failed update must not change the stored plan.
	stored, err := manager.FindOne(ctx, factory.NewUnitOfWork(ctx), created.Id)
	require.NoError(t, err)
	assert.Equal(t, 50000, stored.TokenLimit)
}

func TestPlanUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory(memory.NewStore())
	manager := plan.NewManager()

	_, err := manager.Update(ctx, factory.NewUnitOfWork(ctx), uuid.New(), dto.UpdatePlanRequest{
		Name: strPtr("Ghost"),
	})
	var nferr *dto.NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "plan", nferr.Resource)
}
