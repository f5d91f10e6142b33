// internal/domain/subscription/entity.go
package subscription

import (
	"github.com/your-org/mealbox-backend/internal/domain/catalog"
)

// Customization bounds. A plan template may default anywhere inside these;
// user adjustments are clamped to them.
const (
	MinMealsPerDay = 1
	MaxMealsPerDay = 5
	MinDaysPerWeek = 3
	MaxDaysPerWeek = 7
)

// Customization is the user-chosen sizing of a subscription plan
type Customization struct {
	MealsPerDay int `json:"meals_per_day"`
	DaysPerWeek int `json:"days_per_week"`
}

// MealPortion is one meal with its quantity inside a single day
type MealPortion struct {
	Meal     catalog.Meal `json:"meal"`
	Quantity int          `json:"quantity"`
}

// DailyMealSelection holds the portions assigned to one active day.
// Days are 1-indexed. Entries never carry a zero or negative quantity.
type DailyMealSelection struct {
	Day   int           `json:"day"`
	Meals []MealPortion `json:"meals"`
}

// TotalQuantity sums the portion quantities for the day
func (d DailyMealSelection) TotalQuantity() int {
	total := 0
	for _, portion := range d.Meals {
		total += portion.Quantity
	}
	return total
}

// portionIndex returns the position of a meal within the day, or -1
func (d DailyMealSelection) portionIndex(mealID string) int {
	for i, portion := range d.Meals {
		if portion.Meal.ID == mealID {
			return i
		}
	}
	return -1
}

// Selection is a finalized, fully specified subscription configuration.
// It is immutable once handed to the cart: every day carries exactly
// Customization.MealsPerDay portions.
type Selection struct {
	Plan          catalog.SubscriptionPlan `json:"plan"`
	Customization Customization            `json:"customization"`
	TotalPrice    float64                  `json:"total_price"`
	SelectedMeals []DailyMealSelection     `json:"selected_meals"`
}
