// internal/domain/subscription/configurator_test.go
package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/mealbox-backend/internal/domain/catalog"
	"github.com/your-org/mealbox-backend/internal/pkg/i18n"
)

func testPlan() catalog.SubscriptionPlan {
	return catalog.SubscriptionPlan{
		ID:           "plan-test",
		Name:         i18n.Text{AR: "خطة", EN: "Plan"},
		Period:       catalog.BillingWeekly,
		BasePriceSAR: 210,
		MealsPerDay:  3,
		DaysPerWeek:  7,
	}
}

func testMeal(id string) catalog.Meal {
	return catalog.Meal{
		ID:       id,
		Name:     i18n.Text{AR: "وجبة", EN: "Meal"},
		PriceSAR: 25,
	}
}

// fillDay brings the active day to its exact quota using the given meal
func fillDay(t *testing.T, c *Configurator, meal catalog.Meal) {
	t.Helper()
	for !c.IsDayComplete(c.ActiveDay()) {
		before := c.findDay(c.ActiveDay()).TotalQuantity()
		c.IncreaseMealQuantity(meal)
		require.Greater(t, c.findDay(c.ActiveDay()).TotalQuantity(), before, "quota fill made no progress")
	}
}

func TestNewConfiguratorDefaults(t *testing.T) {
	c, err := NewConfigurator(testPlan())
	require.NoError(t, err)

	assert.Equal(t, StepSizing, c.Step())
	assert.Equal(t, Customization{MealsPerDay: 3, DaysPerWeek: 7}, c.Customization())
	assert.Equal(t, 1, c.ActiveDay())
	// Default sizing reproduces the advertised base price exactly
	assert.InDelta(t, 210.0, c.TotalPrice(), 1e-9)
}

func TestNewConfiguratorRejectsZeroSlotPlan(t *testing.T) {
	plan := testPlan()
	plan.MealsPerDay = 0

	_, err := NewConfigurator(plan)
	require.ErrorIs(t, err, ErrInvalidPlan)
}

func TestSizingClampsAtBounds(t *testing.T) {
	c, err := NewConfigurator(testPlan())
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		c.IncreaseMealsPerDay()
		c.IncreaseDaysPerWeek()
	}
	assert.Equal(t, MaxMealsPerDay, c.Customization().MealsPerDay)
	assert.Equal(t, MaxDaysPerWeek, c.Customization().DaysPerWeek)

	for i := 0; i < 20; i++ {
		c.DecreaseMealsPerDay()
		c.DecreaseDaysPerWeek()
	}
	assert.Equal(t, MinMealsPerDay, c.Customization().MealsPerDay)
	assert.Equal(t, MinDaysPerWeek, c.Customization().DaysPerWeek)
}

func TestTotalPriceFollowsCustomization(t *testing.T) {
	c, err := NewConfigurator(testPlan())
	require.NoError(t, err)

	// unit price = 210 / (3*7) = 10 per slot
	c.DecreaseMealsPerDay() // 2
	c.DecreaseDaysPerWeek() // 6
	c.DecreaseDaysPerWeek() // 5
	assert.InDelta(t, 100.0, c.TotalPrice(), 1e-9)

	before := c.TotalPrice()
	c.IncreaseMealsPerDay()
	assert.Greater(t, c.TotalPrice(), before)
}

func TestSizingIgnoredOutsideSizingStep(t *testing.T) {
	c, err := NewConfigurator(testPlan())
	require.NoError(t, err)
	require.NoError(t, c.Proceed())

	sizing := c.Customization()
	c.IncreaseMealsPerDay()
	c.DecreaseDaysPerWeek()
	assert.Equal(t, sizing, c.Customization())
}

func TestProceedBuildsOneSelectionPerDay(t *testing.T) {
	c, err := NewConfigurator(testPlan())
	require.NoError(t, err)

	c.DecreaseDaysPerWeek() // 6
	require.NoError(t, c.Proceed())

	days := c.SelectedMeals()
	require.Len(t, days, 6)
	for i, day := range days {
		assert.Equal(t, i+1, day.Day)
		assert.Empty(t, day.Meals)
	}
}

func TestBackAndProceedPreserveInRangeDays(t *testing.T) {
	c, err := NewConfigurator(testPlan())
	require.NoError(t, err)
	require.NoError(t, c.Proceed())

	c.SetActiveDay(3)
	c.IncreaseMealQuantity(testMeal("meal-a"))
	c.IncreaseMealQuantity(testMeal("meal-a"))

	require.NoError(t, c.Back())
	assert.Equal(t, StepSizing, c.Step())

	// Shrink to 5 days: day 3 survives, days 6 and 7 are dropped
	c.DecreaseDaysPerWeek()
	c.DecreaseDaysPerWeek()
	require.NoError(t, c.Proceed())

	require.Len(t, c.SelectedMeals(), 5)
	day := c.SelectedMeals()[2]
	assert.Equal(t, 3, day.Day)
	assert.Equal(t, 2, day.TotalQuantity())
}

func TestProceedResetsActiveDayWhenOutOfRange(t *testing.T) {
	c, err := NewConfigurator(testPlan())
	require.NoError(t, err)
	require.NoError(t, c.Proceed())

	c.SetActiveDay(7)
	require.NoError(t, c.Back())
	for i := 0; i < 4; i++ {
		c.DecreaseDaysPerWeek() // down to 3
	}
	require.NoError(t, c.Proceed())

	assert.Equal(t, 1, c.ActiveDay())
}

func TestSetActiveDayIgnoresOutOfRange(t *testing.T) {
	c, err := NewConfigurator(testPlan())
	require.NoError(t, err)
	require.NoError(t, c.Proceed())

	c.SetActiveDay(4)
	assert.Equal(t, 4, c.ActiveDay())

	c.SetActiveDay(0)
	assert.Equal(t, 4, c.ActiveDay())
	c.SetActiveDay(8)
	assert.Equal(t, 4, c.ActiveDay())
}

func TestIncreaseMealQuantityStopsAtQuota(t *testing.T) {
	c, err := NewConfigurator(testPlan())
	require.NoError(t, err)
	require.NoError(t, c.Proceed())

	meal := testMeal("meal-a")
	for i := 0; i < 10; i++ {
		c.IncreaseMealQuantity(meal)
	}

	day := c.SelectedMeals()[0]
	assert.Equal(t, 3, day.TotalQuantity())
	assert.True(t, c.IsDayComplete(1))
}

func TestQuotaSpansDistinctMeals(t *testing.T) {
	c, err := NewConfigurator(testPlan())
	require.NoError(t, err)
	require.NoError(t, c.Proceed())

	c.IncreaseMealQuantity(testMeal("meal-a"))
	c.IncreaseMealQuantity(testMeal("meal-b"))
	c.IncreaseMealQuantity(testMeal("meal-c"))
	c.IncreaseMealQuantity(testMeal("meal-d")) // over quota, ignored

	day := c.SelectedMeals()[0]
	assert.Equal(t, 3, day.TotalQuantity())
	assert.Len(t, day.Meals, 3)
}

func TestDecreaseMealQuantityRemovesEntryAtZero(t *testing.T) {
	c, err := NewConfigurator(testPlan())
	require.NoError(t, err)
	require.NoError(t, c.Proceed())

	meal := testMeal("meal-a")
	c.IncreaseMealQuantity(meal)
	c.DecreaseMealQuantity(meal.ID)

	assert.Empty(t, c.SelectedMeals()[0].Meals)

	// Decreasing an absent meal is a no-op
	c.DecreaseMealQuantity("meal-unknown")
	assert.Empty(t, c.SelectedMeals()[0].Meals)
}

func TestDayCompletionRequiresExactQuota(t *testing.T) {
	c, err := NewConfigurator(testPlan())
	require.NoError(t, err)
	require.NoError(t, c.Proceed())

	meal := testMeal("meal-a")
	c.IncreaseMealQuantity(meal)
	c.IncreaseMealQuantity(meal)
	assert.False(t, c.IsDayComplete(1), "2 of 3 portions must not count as complete")

	c.IncreaseMealQuantity(meal)
	assert.True(t, c.IsDayComplete(1))
}

func TestCommitRefusedUntilAllDaysComplete(t *testing.T) {
	c, err := NewConfigurator(testPlan())
	require.NoError(t, err)
	require.NoError(t, c.Proceed())

	meal := testMeal("meal-a")
	for day := 1; day <= 6; day++ {
		c.SetActiveDay(day)
		fillDay(t, c, meal)
	}

	_, err = c.Commit()
	require.ErrorIs(t, err, ErrNotReady)
	assert.Equal(t, StepAllocation, c.Step())

	c.SetActiveDay(7)
	fillDay(t, c, meal)

	selection, err := c.Commit()
	require.NoError(t, err)
	assert.Equal(t, StepCommitted, c.Step())
	assert.InDelta(t, 210.0, selection.TotalPrice, 1e-9)
	assert.Len(t, selection.SelectedMeals, 7)
	for _, day := range selection.SelectedMeals {
		assert.Equal(t, 3, day.TotalQuantity())
	}
}

func TestCommitOutsideAllocationFails(t *testing.T) {
	c, err := NewConfigurator(testPlan())
	require.NoError(t, err)

	_, err = c.Commit()
	require.ErrorIs(t, err, ErrWrongStep)
}

func TestCancelDiscardsSelections(t *testing.T) {
	c, err := NewConfigurator(testPlan())
	require.NoError(t, err)
	require.NoError(t, c.Proceed())

	c.IncreaseMealQuantity(testMeal("meal-a"))
	c.Cancel()

	assert.Equal(t, StepCancelled, c.Step())
	assert.Empty(t, c.SelectedMeals())

	_, err = c.Commit()
	require.ErrorIs(t, err, ErrWrongStep)
}
