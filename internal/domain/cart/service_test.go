// internal/domain/cart/service_test.go
package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/mealbox-backend/internal/config"
	"github.com/your-org/mealbox-backend/internal/domain/catalog"
	"github.com/your-org/mealbox-backend/internal/domain/subscription"
)

func testService() *Service {
	cfg := &config.Config{}
	cfg.Catalog.SimulatedLatency = 0
	return NewService(catalog.NewService(cfg))
}

func TestGetCartRequiresSessionID(t *testing.T) {
	s := testService()

	_, err := s.GetCart("")
	require.Error(t, err)
}

func TestGetCartCreatesEmptyCart(t *testing.T) {
	s := testService()

	c, err := s.GetCart("session-1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestAddMealLooksUpCatalog(t *testing.T) {
	s := testService()
	ctx := context.Background()

	_, err := s.AddMeal(ctx, "session-1", "meal-missing")
	require.ErrorIs(t, err, catalog.ErrNotFound)

	c, err := s.AddMeal(ctx, "session-1", "meal-shakshuka")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Quantity("meal-shakshuka"))
	assert.Positive(t, c.Items[0].Meal.PriceSAR)
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	s := testService()
	ctx := context.Background()

	_, err := s.AddMeal(ctx, "session-1", "meal-shakshuka")
	require.NoError(t, err)

	assert.Equal(t, 1, s.ItemCount("session-1"))
	assert.Zero(t, s.ItemCount("session-2"))
}

func TestSnapshotsDoNotAliasLiveCart(t *testing.T) {
	s := testService()
	ctx := context.Background()

	snapshot, err := s.AddMeal(ctx, "session-1", "meal-shakshuka")
	require.NoError(t, err)

	snapshot.Items[0].Quantity = 99
	assert.Equal(t, 1, s.Quantity("session-1", "meal-shakshuka"))
}

func TestClearDropsCart(t *testing.T) {
	s := testService()
	ctx := context.Background()

	_, err := s.AddMeal(ctx, "session-1", "meal-shakshuka")
	require.NoError(t, err)
	_, err = s.SetSubscription("session-1", &subscription.Selection{TotalPrice: 210})
	require.NoError(t, err)

	require.NoError(t, s.Clear("session-1"))

	c, err := s.GetCart("session-1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}
