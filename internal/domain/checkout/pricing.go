// internal/domain/checkout/pricing.go
package checkout

import (
	"github.com/your-org/mealbox-backend/internal/domain/cart"
)

// Pricing policy constants. Fixed by business policy, not derived.
const (
	TaxRate        = 0.15
	DeliveryFeeSAR = 15.00
)

// DeliveryMethod is the closed set of order fulfilment options
type DeliveryMethod string

const (
	DeliveryMethodDelivery DeliveryMethod = "delivery"
	DeliveryMethodPickup   DeliveryMethod = "pickup"
)

// Valid reports whether the delivery method is a known value
func (m DeliveryMethod) Valid() bool {
	return m == DeliveryMethodDelivery || m == DeliveryMethodPickup
}

// Totals is the pricing breakdown for a cart
type Totals struct {
	MealsSubtotal     float64 `json:"meals_subtotal"`
	SubscriptionTotal float64 `json:"subscription_total"`
	Subtotal          float64 `json:"subtotal"`
	Tax               float64 `json:"tax"`
	DeliveryFee       float64 `json:"delivery_fee"`
	Total             float64 `json:"total"`
}

// CalculateTotals derives the order totals from cart contents and delivery
// method. Pure and idempotent: identical inputs always produce identical
// outputs, and an empty cart yields an all-zero breakdown with no fee or tax.
func CalculateTotals(c *cart.Cart, method DeliveryMethod) Totals {
	if c == nil || c.IsEmpty() {
		return Totals{}
	}

	var totals Totals
	for _, item := range c.Items {
		totals.MealsSubtotal += item.Meal.PriceSAR * float64(item.Quantity)
	}
	if c.Subscription != nil {
		totals.SubscriptionTotal = c.Subscription.TotalPrice
	}

	totals.Subtotal = totals.MealsSubtotal + totals.SubscriptionTotal
	totals.Tax = totals.Subtotal * TaxRate
	if method == DeliveryMethodDelivery {
		totals.DeliveryFee = DeliveryFeeSAR
	}
	totals.Total = totals.Subtotal + totals.Tax + totals.DeliveryFee

	return totals
}
