// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/your-org/mealbox-backend/internal/domain/cart"
	"github.com/your-org/mealbox-backend/internal/domain/subscription"
	"github.com/your-org/mealbox-backend/internal/pkg/i18n"
)

// Status is the order fulfilment lifecycle
type Status string

const (
	StatusPending        Status = "pending"
	StatusPreparing      Status = "preparing"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

// Valid reports whether the status is a known value
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the fulfilment lifecycle allows moving to
// the given status. Delivered and cancelled are terminal; cancellation is
// allowed from any non-terminal state.
func (s Status) CanTransitionTo(next Status) bool {
	if s == StatusDelivered || s == StatusCancelled {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusPreparing
	case StatusPreparing:
		return next == StatusOutForDelivery
	case StatusOutForDelivery:
		return next == StatusDelivered
	}
	return false
}

// DisplayName maps the status to its localized label through the message
// table
func (s Status) DisplayName(locale i18n.Locale) string {
	switch s {
	case StatusPending:
		return i18n.Resolve(i18n.MsgOrderStatusPending, locale)
	case StatusPreparing:
		return i18n.Resolve(i18n.MsgOrderStatusPreparing, locale)
	case StatusOutForDelivery:
		return i18n.Resolve(i18n.MsgOrderStatusOnTheWay, locale)
	case StatusDelivered:
		return i18n.Resolve(i18n.MsgOrderStatusDelivered, locale)
	case StatusCancelled:
		return i18n.Resolve(i18n.MsgOrderStatusCancelled, locale)
	}
	return string(s)
}

// ShippingInfo is the delivery contact collected at checkout
type ShippingInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

// Schedule is the requested delivery window
type Schedule struct {
	Date string `json:"date"` // today, tomorrow
	Time string `json:"time"` // morning, afternoon, evening
}

// Totals mirrors the checkout pricing breakdown at placement time
type Totals struct {
	MealsSubtotal     float64 `json:"meals_subtotal"`
	SubscriptionTotal float64 `json:"subscription_total"`
	Subtotal          float64 `json:"subtotal"`
	Tax               float64 `json:"tax"`
	DeliveryFee       float64 `json:"delivery_fee"`
	Total             float64 `json:"total"`
}

// Order is an immutable snapshot of a placed order. Items and subscription
// are copied out of the cart at placement; later cart mutations never touch
// a placed order.
type Order struct {
	ID             string                  `json:"id"`
	OrderNumber    string                  `json:"order_number"`
	UserID         string                  `json:"user_id,omitempty"`
	SessionID      string                  `json:"-"`
	Status         Status                  `json:"status"`
	Items          []cart.LineItem         `json:"items"`
	Subscription   *subscription.Selection `json:"subscription,omitempty"`
	DeliveryMethod string                  `json:"delivery_method"`
	Shipping       ShippingInfo            `json:"shipping"`
	Schedule       Schedule                `json:"schedule"`
	PaymentMethod  string                  `json:"payment_method"`
	Totals         Totals                  `json:"totals"`
	PlacedAt       time.Time               `json:"placed_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}
