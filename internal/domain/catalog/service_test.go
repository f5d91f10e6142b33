// internal/domain/catalog/service_test.go
package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/mealbox-backend/internal/config"
)

func newTestService(latency time.Duration) *Service {
	cfg := &config.Config{}
	cfg.Catalog.SimulatedLatency = latency
	return NewService(cfg)
}

func TestSeedDataIsConsistent(t *testing.T) {
	s := newTestService(0)
	ctx := context.Background()

	categories, err := s.GetCategories(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, categories)

	categoryIDs := make(map[string]bool)
	for _, category := range categories {
		categoryIDs[category.ID] = true
	}

	meals, err := s.GetMeals(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, meals)

	for _, meal := range meals {
		assert.True(t, categoryIDs[meal.CategoryID], "meal %s references unknown category %s", meal.ID, meal.CategoryID)
		assert.Positive(t, meal.PriceSAR, "meal %s has no price", meal.ID)
		assert.NotEmpty(t, meal.Name.AR)
		assert.NotEmpty(t, meal.Name.EN)
	}
}

func TestPlansHavePositiveSlotCounts(t *testing.T) {
	s := newTestService(0)

	plans, err := s.GetPlans(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, plans)

	for _, plan := range plans {
		assert.Positive(t, plan.DefaultSlotCount(), "plan %s", plan.ID)
		assert.Positive(t, plan.BasePriceSAR, "plan %s", plan.ID)
		assert.True(t, plan.Period.Valid(), "plan %s", plan.ID)
	}
}

func TestGetMealsByCategory(t *testing.T) {
	s := newTestService(0)

	meals, err := s.GetMealsByCategory(context.Background(), "cat-breakfast")
	require.NoError(t, err)
	require.NotEmpty(t, meals)
	for _, meal := range meals {
		assert.Equal(t, "cat-breakfast", meal.CategoryID)
	}

	none, err := s.GetMealsByCategory(context.Background(), "cat-missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetMealNotFound(t *testing.T) {
	s := newTestService(0)

	_, err := s.GetMeal(context.Background(), "meal-missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetPlanNotFound(t *testing.T) {
	s := newTestService(0)

	_, err := s.GetPlan(context.Background(), "plan-missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSimulatedLatencyHonorsContext(t *testing.T) {
	s := newTestService(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := s.GetMeals(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestReadsReturnCopies(t *testing.T) {
	s := newTestService(0)
	ctx := context.Background()

	meals, err := s.GetMeals(ctx)
	require.NoError(t, err)

	meals[0].PriceSAR = -1

	again, err := s.GetMeals(ctx)
	require.NoError(t, err)
	assert.Positive(t, again[0].PriceSAR)
}
