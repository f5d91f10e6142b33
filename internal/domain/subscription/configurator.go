// internal/domain/subscription/configurator.go
package subscription

import (
	"errors"
	"fmt"

	"github.com/your-org/mealbox-backend/internal/domain/catalog"
)

// Step identifies where a configurator is in its lifecycle
type Step string

const (
	StepSizing     Step = "sizing"
	StepAllocation Step = "allocation"
	StepCommitted  Step = "committed"
	StepCancelled  Step = "cancelled"
)

var (
	// ErrInvalidPlan indicates a plan template whose default slot count is
	// not positive; the per-slot rate would be undefined.
	ErrInvalidPlan = errors.New("subscription plan has no default meal slots")

	// ErrNotReady is returned by Commit when not every day has reached its
	// exact meal quota.
	ErrNotReady = errors.New("meal selection incomplete")

	// ErrWrongStep is returned when an operation is invoked outside the step
	// it belongs to.
	ErrWrongStep = errors.New("operation not valid in current step")
)

// Configurator walks a user through customizing one subscription plan:
// sizing (meals per day, days per week), then allocating meals to days under
// a per-day quota, and finally committing a priced Selection.
//
// A configurator belongs to exactly one shopping session and is driven
// synchronously by user actions; it is not safe for concurrent use.
type Configurator struct {
	plan          catalog.SubscriptionPlan
	step          Step
	customization Customization
	selectedMeals []DailyMealSelection
	activeDay     int
	unitPrice     float64
}

// NewConfigurator starts a configuration session for the given plan.
// The customization is initialized from the template's defaults.
func NewConfigurator(plan catalog.SubscriptionPlan) (*Configurator, error) {
	slots := plan.DefaultSlotCount()
	if slots <= 0 {
		return nil, fmt.Errorf("plan %s: %w", plan.ID, ErrInvalidPlan)
	}

	return &Configurator{
		plan: plan,
		step: StepSizing,
		customization: Customization{
			MealsPerDay: plan.MealsPerDay,
			DaysPerWeek: plan.DaysPerWeek,
		},
		activeDay: 1,
		unitPrice: plan.BasePriceSAR / float64(slots),
	}, nil
}

// Plan returns the template being configured
func (c *Configurator) Plan() catalog.SubscriptionPlan { return c.plan }

// Step returns the current lifecycle step
func (c *Configurator) Step() Step { return c.step }

// Customization returns the current sizing
func (c *Configurator) Customization() Customization { return c.customization }

// ActiveDay returns the day currently being edited (1-indexed)
func (c *Configurator) ActiveDay() int { return c.activeDay }

// SelectedMeals returns a copy of the per-day selections
func (c *Configurator) SelectedMeals() []DailyMealSelection {
	return copySelections(c.selectedMeals)
}

// TotalPrice derives the price for the current customization. The per-slot
// rate is anchored to the plan's default slot count, so a customization equal
// to the defaults reproduces the advertised base price exactly.
func (c *Configurator) TotalPrice() float64 {
	return c.unitPrice * float64(c.customization.MealsPerDay) * float64(c.customization.DaysPerWeek)
}

// Sizing step operations. Each mutation is clamped to the policy bounds and
// takes effect immediately in TotalPrice.

func (c *Configurator) IncreaseMealsPerDay() {
	if c.step != StepSizing {
		return
	}
	if c.customization.MealsPerDay < MaxMealsPerDay {
		c.customization.MealsPerDay++
	}
}

func (c *Configurator) DecreaseMealsPerDay() {
	if c.step != StepSizing {
		return
	}
	if c.customization.MealsPerDay > MinMealsPerDay {
		c.customization.MealsPerDay--
	}
}

func (c *Configurator) IncreaseDaysPerWeek() {
	if c.step != StepSizing {
		return
	}
	if c.customization.DaysPerWeek < MaxDaysPerWeek {
		c.customization.DaysPerWeek++
	}
}

func (c *Configurator) DecreaseDaysPerWeek() {
	if c.step != StepSizing {
		return
	}
	if c.customization.DaysPerWeek > MinDaysPerWeek {
		c.customization.DaysPerWeek--
	}
}

// Proceed moves from sizing to allocation. The per-day selection array is
// resized to the chosen day count: days still in range keep their prior
// portions, new days start empty. The active day resets to 1 when it falls
// outside the new range.
func (c *Configurator) Proceed() error {
	if c.step != StepSizing {
		return fmt.Errorf("proceed from %s: %w", c.step, ErrWrongStep)
	}

	days := make([]DailyMealSelection, c.customization.DaysPerWeek)
	for i := range days {
		dayNum := i + 1
		if existing := c.findDay(dayNum); existing != nil {
			days[i] = *existing
		} else {
			days[i] = DailyMealSelection{Day: dayNum}
		}
	}
	c.selectedMeals = days

	if c.activeDay > c.customization.DaysPerWeek {
		c.activeDay = 1
	}

	c.step = StepAllocation
	return nil
}

// Back returns from allocation to sizing. Selections are kept so re-entering
// allocation restores prior work for day indices still in range.
func (c *Configurator) Back() error {
	if c.step != StepAllocation {
		return fmt.Errorf("back from %s: %w", c.step, ErrWrongStep)
	}
	c.step = StepSizing
	return nil
}

// Cancel abandons the configuration. No cart mutation has happened.
func (c *Configurator) Cancel() {
	c.step = StepCancelled
	c.selectedMeals = nil
}

// SetActiveDay changes which day is being edited. It is a pure focus change:
// out-of-range days are ignored rather than rejected.
func (c *Configurator) SetActiveDay(day int) {
	if c.step != StepAllocation {
		return
	}
	if day < 1 || day > c.customization.DaysPerWeek {
		return
	}
	c.activeDay = day
}

// IncreaseMealQuantity adds one portion of the meal to the active day.
// The call is a no-op once the day has reached its quota.
func (c *Configurator) IncreaseMealQuantity(meal catalog.Meal) {
	if c.step != StepAllocation {
		return
	}

	day := c.findDay(c.activeDay)
	if day == nil {
		return
	}
	if day.TotalQuantity() >= c.customization.MealsPerDay {
		return
	}

	if i := day.portionIndex(meal.ID); i >= 0 {
		day.Meals[i].Quantity++
		return
	}
	day.Meals = append(day.Meals, MealPortion{Meal: meal, Quantity: 1})
}

// DecreaseMealQuantity removes one portion of the meal from the active day,
// dropping the entry entirely at zero. Absent meals are a no-op.
func (c *Configurator) DecreaseMealQuantity(mealID string) {
	if c.step != StepAllocation {
		return
	}

	day := c.findDay(c.activeDay)
	if day == nil {
		return
	}

	i := day.portionIndex(mealID)
	if i < 0 {
		return
	}

	if day.Meals[i].Quantity > 1 {
		day.Meals[i].Quantity--
		return
	}
	day.Meals = append(day.Meals[:i], day.Meals[i+1:]...)
}

// IsDayComplete reports whether the day has hit its quota exactly
func (c *Configurator) IsDayComplete(dayNum int) bool {
	day := c.findDay(dayNum)
	if day == nil {
		return false
	}
	return day.TotalQuantity() == c.customization.MealsPerDay
}

// AllDaysComplete reports whether every active day has hit its quota
func (c *Configurator) AllDaysComplete() bool {
	if len(c.selectedMeals) != c.customization.DaysPerWeek {
		return false
	}
	for _, day := range c.selectedMeals {
		if day.TotalQuantity() != c.customization.MealsPerDay {
			return false
		}
	}
	return true
}

// Commit finalizes the configuration into an immutable Selection. It is
// refused while any day is incomplete; the caller surfaces that as "not
// ready" rather than an exception. Zero-quantity days and portions are
// filtered out defensively even though the quota invariant makes them
// unreachable.
func (c *Configurator) Commit() (*Selection, error) {
	if c.step != StepAllocation {
		return nil, fmt.Errorf("commit from %s: %w", c.step, ErrWrongStep)
	}
	if !c.AllDaysComplete() {
		return nil, ErrNotReady
	}

	selected := make([]DailyMealSelection, 0, len(c.selectedMeals))
	for _, day := range c.selectedMeals {
		portions := make([]MealPortion, 0, len(day.Meals))
		for _, portion := range day.Meals {
			if portion.Quantity > 0 {
				portions = append(portions, portion)
			}
		}
		if len(portions) > 0 {
			selected = append(selected, DailyMealSelection{Day: day.Day, Meals: portions})
		}
	}

	selection := &Selection{
		Plan:          c.plan,
		Customization: c.customization,
		TotalPrice:    c.TotalPrice(),
		SelectedMeals: selected,
	}

	c.step = StepCommitted
	return selection, nil
}

// findDay returns a pointer into selectedMeals for the given day, or nil
func (c *Configurator) findDay(dayNum int) *DailyMealSelection {
	for i := range c.selectedMeals {
		if c.selectedMeals[i].Day == dayNum {
			return &c.selectedMeals[i]
		}
	}
	return nil
}

func copySelections(in []DailyMealSelection) []DailyMealSelection {
	out := make([]DailyMealSelection, len(in))
	for i, day := range in {
		meals := make([]MealPortion, len(day.Meals))
		copy(meals, day.Meals)
		out[i] = DailyMealSelection{Day: day.Day, Meals: meals}
	}
	return out
}
