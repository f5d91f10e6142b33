// internal/domain/checkout/service_test.go
package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/mealbox-backend/internal/config"
	"github.com/your-org/mealbox-backend/internal/domain/cart"
	"github.com/your-org/mealbox-backend/internal/domain/catalog"
	"github.com/your-org/mealbox-backend/internal/domain/order"
)

func testServices() (*Service, *cart.Service) {
	cfg := &config.Config{}
	cfg.Catalog.SimulatedLatency = 0

	cartService := cart.NewService(catalog.NewService(cfg))
	return NewService(cartService, order.NewService()), cartService
}

func placeRequest() *PlaceOrderRequest {
	return &PlaceOrderRequest{
		DeliveryMethod: "delivery",
		Shipping: order.ShippingInfo{
			Name:    "Sara",
			Phone:   "+966500000002",
			Address: "Riyadh",
		},
		Schedule:      order.Schedule{Date: "today", Time: "evening"},
		PaymentMethod: "cod",
	}
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	s, _ := testServices()

	_, err := s.PlaceOrder("session-1", "user-1", placeRequest())
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderRejectsUnknownDeliveryMethod(t *testing.T) {
	s, _ := testServices()

	req := placeRequest()
	req.DeliveryMethod = "drone"
	_, err := s.PlaceOrder("session-1", "user-1", req)
	require.Error(t, err)
}

func TestPlaceOrderSnapshotsCartAndClearsIt(t *testing.T) {
	s, cartService := testServices()
	ctx := context.Background()

	_, err := cartService.AddMeal(ctx, "session-1", "meal-shakshuka")
	require.NoError(t, err)
	_, err = cartService.AddMeal(ctx, "session-1", "meal-shakshuka")
	require.NoError(t, err)

	placed, err := s.PlaceOrder("session-1", "user-1", placeRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, placed.ID)
	assert.NotEmpty(t, placed.OrderNumber)
	assert.Equal(t, order.StatusPending, placed.Status)
	assert.Equal(t, "user-1", placed.UserID)
	require.Len(t, placed.Items, 1)
	assert.Equal(t, 2, placed.Items[0].Quantity)
	assert.InDelta(t, 15.0, placed.Totals.DeliveryFee, 1e-9)
	assert.Greater(t, placed.Totals.Total, placed.Totals.Subtotal)

	// Cart is cleared after placement
	assert.Zero(t, cartService.ItemCount("session-1"))
}

func TestSummaryMatchesCalculator(t *testing.T) {
	s, cartService := testServices()
	ctx := context.Background()

	snapshot, err := cartService.AddMeal(ctx, "session-1", "meal-shakshuka")
	require.NoError(t, err)

	c, totals, err := s.Summary("session-1", DeliveryMethodPickup)
	require.NoError(t, err)

	assert.Equal(t, snapshot.ItemCount(), c.ItemCount())
	assert.Equal(t, CalculateTotals(c, DeliveryMethodPickup), totals)
}
