// internal/domain/catalog/entity.go
package catalog

import (
	"github.com/your-org/mealbox-backend/internal/pkg/i18n"
)

// Category groups meals on the menu
type Category struct {
	ID   string    `json:"id"`
	Name i18n.Text `json:"name"`
	Slug string    `json:"slug"`
	Icon string    `json:"icon"`
}

// Nutrition holds the nutrition facts for one meal
type Nutrition struct {
	Kcal    int     `json:"kcal"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// DietTag marks dietary properties of a meal
type DietTag string

const (
	TagVegan       DietTag = "vegan"
	TagKeto        DietTag = "keto"
	TagGlutenFree  DietTag = "gluten-free"
	TagHighProtein DietTag = "high-protein"
)

// Meal is an immutable menu entry. Instances are created by the catalog seed
// and never mutated afterwards.
type Meal struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	Name        i18n.Text `json:"name"`
	Description i18n.Text `json:"description"`
	Image       string    `json:"image"`
	Nutrition   Nutrition `json:"nutrition"`
	PriceSAR    float64   `json:"price_sar"`
	Tags        []DietTag `json:"tags,omitempty"`
}

// BillingPeriod is the closed set of subscription billing cycles
type BillingPeriod string

const (
	BillingWeekly  BillingPeriod = "weekly"
	BillingMonthly BillingPeriod = "monthly"
	BillingYearly  BillingPeriod = "yearly"
)

// Valid reports whether the billing period is a known value
func (b BillingPeriod) Valid() bool {
	switch b {
	case BillingWeekly, BillingMonthly, BillingYearly:
		return true
	}
	return false
}

// DisplayName maps the billing period to its localized label through the
// message table. Domain values are never used as lookup keys directly.
func (b BillingPeriod) DisplayName(locale i18n.Locale) string {
	switch b {
	case BillingWeekly:
		return i18n.Resolve(i18n.MsgBillingWeekly, locale)
	case BillingMonthly:
		return i18n.Resolve(i18n.MsgBillingMonthly, locale)
	case BillingYearly:
		return i18n.Resolve(i18n.MsgBillingYearly, locale)
	}
	return string(b)
}

// SubscriptionPlan is an immutable plan template. BasePriceSAR is priced for
// the default MealsPerDay x DaysPerWeek combination; both counts must be
// positive so the per-slot rate is always defined.
type SubscriptionPlan struct {
	ID           string        `json:"id"`
	Name         i18n.Text     `json:"name"`
	Description  i18n.Text     `json:"description"`
	Period       BillingPeriod `json:"period"`
	BasePriceSAR float64       `json:"base_price_sar"`
	MealsPerDay  int           `json:"meals_per_day"`
	DaysPerWeek  int           `json:"days_per_week"`
}

// DefaultSlotCount is the weekly meal-slot count the base price is quoted for
func (p SubscriptionPlan) DefaultSlotCount() int {
	return p.MealsPerDay * p.DaysPerWeek
}
