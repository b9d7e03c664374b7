package addon_test

import (
	"context"
	"testing"

	"ai-humanizer-be/internal/dto"
	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/repository/memory"
	"ai-humanizer-be/pkg/admin/addon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func TestAddonCreateExtraTokensBoundary(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory(memory.NewStore())
	manager := addon.NewManager()

	_, err := manager.Create(ctx, factory.NewUnitOfWork(ctx), dto.CreateTokenAddonRequest{
		Name:        "Zero Top-up",
		ExtraTokens: 0,
	})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "extraTokens", verr.Field)

	// Nothing was stored by the rejected create.
	addons, err := manager.FindAll(ctx, factory.NewUnitOfWork(ctx))
	require.NoError(t, err)
	assert.Empty(t, addons)

	created, err := manager.Create(ctx, factory.NewUnitOfWork(ctx), dto.CreateTokenAddonRequest{
		Name:        "Tiny Top-up",
		ExtraTokens: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ExtraTokens)
	assert.Equal(t, entity.CurrencyVisibilityBoth, created.CurrencyVisibility)
	assert.True(t, created.Active)
}

func TestAddonNameWhitespaceOnly(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory(memory.NewStore())
	manager := addon.NewManager()

	_, err := manager.Create(ctx, factory.NewUnitOfWork(ctx), dto.CreateTokenAddonRequest{
		Name:        " \t ",
		ExtraTokens: 5000,
	})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name required", verr.Message)

	addons, err := manager.FindAll(ctx, factory.NewUnitOfWork(ctx))
	require.NoError(t, err)
	assert.Empty(t, addons)
}

func TestAddonActiveRoundTrip(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory(memory.NewStore())
	manager := addon.NewManager()

	created, err := manager.Create(ctx, factory.NewUnitOfWork(ctx), dto.CreateTokenAddonRequest{
		Name:        "Small Top-up",
		ExtraTokens: 5000,
		PriceINR:    99,
		PriceUSD:    1.19,
	})
	require.NoError(t, err)
	require.True(t, created.Active)

	updated, err := manager.Update(ctx, factory.NewUnitOfWork(ctx), created.Id, dto.UpdateTokenAddonRequest{
		Active: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, updated.Active)
	// Untouched fields keep their stored values.
	assert.Equal(t, 5000, updated.ExtraTokens)

	updated, err = manager.Update(ctx, factory.NewUnitOfWork(ctx), created.Id, dto.UpdateTokenAddonRequest{
		Active: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, updated.Active)
}

func TestAddonUpdateRejectsInvalidVisibility(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory(memory.NewStore())
	manager := addon.NewManager()

	created, err := manager.Create(ctx, factory.NewUnitOfWork(ctx), dto.CreateTokenAddonRequest{
		Name:        "Large Top-up",
		ExtraTokens: 50000,
		PriceINR:    599,
		PriceUSD:    7.19,
	})
	require.NoError(t, err)

	bad := "EUR"
	_, err = manager.Update(ctx, factory.NewUnitOfWork(ctx), created.Id, dto.UpdateTokenAddonRequest{
		CurrencyVisibility: &bad,
	})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)

	stored, err := manager.FindOne(ctx, factory.NewUnitOfWork(ctx), created.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.CurrencyVisibilityBoth, stored.CurrencyVisibility)
}
