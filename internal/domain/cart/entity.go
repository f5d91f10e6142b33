// internal/domain/cart/entity.go
package cart

import (
	"github.com/your-org/mealbox-backend/internal/domain/catalog"
	"github.com/your-org/mealbox-backend/internal/domain/subscription"
)

// LineItem is one distinct meal and its quantity in the one-off portion of
// the cart. Quantity is always >= 1; an item whose quantity would drop to
// zero is removed instead.
type LineItem struct {
	Meal     catalog.Meal `json:"meal"`
	Quantity int          `json:"quantity"`
}

// Cart holds a shopping session's one-off line items plus at most one
// finalized subscription selection. All state is transient: it lives only
// for the session and is never persisted.
type Cart struct {
	Items        []LineItem              `json:"items"`
	Subscription *subscription.Selection `json:"subscription,omitempty"`
}

// AddMeal increments the meal's line item, inserting it at quantity 1 when
// absent. There is no upper bound on quantity.
func (c *Cart) AddMeal(meal catalog.Meal) {
	if i := c.itemIndex(meal.ID); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	c.Items = append(c.Items, LineItem{Meal: meal, Quantity: 1})
}

// DecreaseMeal decrements the meal's quantity, removing the line item when
// it would reach zero. Absent meals are a no-op.
func (c *Cart) DecreaseMeal(mealID string) {
	i := c.itemIndex(mealID)
	if i < 0 {
		return
	}
	if c.Items[i].Quantity > 1 {
		c.Items[i].Quantity--
		return
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}

// RemoveMeal removes the line item regardless of quantity
func (c *Cart) RemoveMeal(mealID string) {
	i := c.itemIndex(mealID)
	if i < 0 {
		return
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}

// Quantity returns the current quantity for a meal, or 0
func (c *Cart) Quantity(mealID string) int {
	if i := c.itemIndex(mealID); i >= 0 {
		return c.Items[i].Quantity
	}
	return 0
}

// SetSubscription replaces any existing subscription unconditionally. The
// configurator flow is expected to have confirmed the overwrite with the
// user; the cart does not gate it.
func (c *Cart) SetSubscription(selection *subscription.Selection) {
	c.Subscription = selection
}

// ClearSubscription removes the subscription if present
func (c *Cart) ClearSubscription() {
	c.Subscription = nil
}

// Clear empties both line items and subscription
func (c *Cart) Clear() {
	c.Items = nil
	c.Subscription = nil
}

// IsEmpty reports whether the cart has neither items nor a subscription
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0 && c.Subscription == nil
}

// ItemCount derives the badge count: the sum of line quantities plus one for
// a present subscription. Recomputed on every read, never cached.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	if c.Subscription != nil {
		count++
	}
	return count
}

func (c *Cart) itemIndex(mealID string) int {
	for i, item := range c.Items {
		if item.Meal.ID == mealID {
			return i
		}
	}
	return -1
}
