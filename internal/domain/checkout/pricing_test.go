// internal/domain/checkout/pricing_test.go
package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/mealbox-backend/internal/domain/cart"
	"github.com/your-org/mealbox-backend/internal/domain/catalog"
	"github.com/your-org/mealbox-backend/internal/domain/subscription"
)

func cartWithItems(items ...cart.LineItem) *cart.Cart {
	return &cart.Cart{Items: items}
}

func lineItem(id string, price float64, qty int) cart.LineItem {
	return cart.LineItem{
		Meal:     catalog.Meal{ID: id, PriceSAR: price},
		Quantity: qty,
	}
}

func TestCalculateTotalsEmptyCart(t *testing.T) {
	assert.Equal(t, Totals{}, CalculateTotals(&cart.Cart{}, DeliveryMethodDelivery))
	assert.Equal(t, Totals{}, CalculateTotals(nil, DeliveryMethodDelivery))
}

func TestCalculateTotalsDelivery(t *testing.T) {
	c := cartWithItems(lineItem("meal-a", 25, 2))

	totals := CalculateTotals(c, DeliveryMethodDelivery)

	assert.InDelta(t, 50.0, totals.MealsSubtotal, 1e-9)
	assert.InDelta(t, 50.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 7.5, totals.Tax, 1e-9)
	assert.InDelta(t, 15.0, totals.DeliveryFee, 1e-9)
	assert.InDelta(t, 72.5, totals.Total, 1e-9)
}

func TestCalculateTotalsPickupWaivesFee(t *testing.T) {
	c := cartWithItems(lineItem("meal-a", 25, 2))

	totals := CalculateTotals(c, DeliveryMethodPickup)

	assert.Zero(t, totals.DeliveryFee)
	assert.InDelta(t, 57.5, totals.Total, 1e-9)
}

func TestCalculateTotalsIncludesSubscription(t *testing.T) {
	c := cartWithItems(lineItem("meal-a", 25, 1))
	c.Subscription = &subscription.Selection{TotalPrice: 210}

	totals := CalculateTotals(c, DeliveryMethodPickup)

	assert.InDelta(t, 25.0, totals.MealsSubtotal, 1e-9)
	assert.InDelta(t, 210.0, totals.SubscriptionTotal, 1e-9)
	assert.InDelta(t, 235.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 235.0*0.15, totals.Tax, 1e-9)
}

func TestCalculateTotalsSubscriptionOnly(t *testing.T) {
	c := &cart.Cart{Subscription: &subscription.Selection{TotalPrice: 100}}

	totals := CalculateTotals(c, DeliveryMethodDelivery)

	assert.Zero(t, totals.MealsSubtotal)
	assert.InDelta(t, 100.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 130.0, totals.Total, 1e-9)
}

func TestCalculateTotalsIdempotent(t *testing.T) {
	c := cartWithItems(lineItem("meal-a", 25, 2), lineItem("meal-b", 18, 1))
	c.Subscription = &subscription.Selection{TotalPrice: 210}

	first := CalculateTotals(c, DeliveryMethodDelivery)
	second := CalculateTotals(c, DeliveryMethodDelivery)

	assert.Equal(t, first, second)
}
