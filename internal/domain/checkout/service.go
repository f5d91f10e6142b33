// internal/domain/checkout/service.go
package checkout

import (
	"fmt"

	"github.com/your-org/mealbox-backend/internal/domain/cart"
	"github.com/your-org/mealbox-backend/internal/domain/order"
)

// ErrEmptyCart is returned when checkout is attempted on an empty cart
var ErrEmptyCart = fmt.Errorf("cart is empty")

// PaymentMethod describes one selectable payment option. Checkout treats the
// chosen method as a pass-through string on the order; there is no gateway
// integration behind it.
type PaymentMethod struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Logo      string `json:"logo,omitempty"`
}

// PlaceOrderRequest carries everything the checkout form collects
type PlaceOrderRequest struct {
	DeliveryMethod string             `json:"delivery_method" binding:"required"`
	Shipping       order.ShippingInfo `json:"shipping"`
	Schedule       order.Schedule     `json:"schedule"`
	PaymentMethod  string             `json:"payment_method" binding:"required"`
}

// Service turns a session's cart into a placed order
type Service struct {
	cartService  *cart.Service
	orderService *order.Service
}

// NewService creates a new checkout service
func NewService(cartService *cart.Service, orderService *order.Service) *Service {
	return &Service{
		cartService:  cartService,
		orderService: orderService,
	}
}

// Summary returns the cart contents together with the computed totals for
// the chosen delivery method
func (s *Service) Summary(sessionID string, method DeliveryMethod) (*cart.Cart, Totals, error) {
	c, err := s.cartService.GetCart(sessionID)
	if err != nil {
		return nil, Totals{}, err
	}
	return c, CalculateTotals(c, method), nil
}

// PlaceOrder snapshots the session's cart into an order, then clears the
// cart. The totals stored on the order are computed here, once, from the
// same pure calculator the summary endpoint uses.
func (s *Service) PlaceOrder(sessionID, userID string, req *PlaceOrderRequest) (*order.Order, error) {
	method := DeliveryMethod(req.DeliveryMethod)
	if !method.Valid() {
		return nil, fmt.Errorf("unknown delivery method %q", req.DeliveryMethod)
	}

	c, err := s.cartService.GetCart(sessionID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	totals := CalculateTotals(c, method)

	placed, err := s.orderService.Create(order.Order{
		UserID:         userID,
		SessionID:      sessionID,
		Items:          c.Items,
		Subscription:   c.Subscription,
		DeliveryMethod: string(method),
		Shipping:       req.Shipping,
		Schedule:       req.Schedule,
		PaymentMethod:  req.PaymentMethod,
		Totals: order.Totals{
			MealsSubtotal:     totals.MealsSubtotal,
			SubscriptionTotal: totals.SubscriptionTotal,
			Subtotal:          totals.Subtotal,
			Tax:               totals.Tax,
			DeliveryFee:       totals.DeliveryFee,
			Total:             totals.Total,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err := s.cartService.Clear(sessionID); err != nil {
		return nil, fmt.Errorf("failed to clear cart after order placement: %w", err)
	}

	return placed, nil
}

// GetPaymentMethods returns the selectable payment options
func (s *Service) GetPaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{ID: "cod", Name: "Cash on Delivery", Available: true},
		{ID: "bank", Name: "Bank Transfer", Available: true},
		{ID: "visa", Name: "Visa / Mastercard", Available: true, Logo: "/images/payments/visa.svg"},
		{ID: "tabby", Name: "Tabby", Available: true, Logo: "/images/payments/tabby.png"},
		{ID: "tamara", Name: "Tamara", Available: true, Logo: "/images/payments/tamara.png"},
	}
}
