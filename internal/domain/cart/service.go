// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/your-org/mealbox-backend/internal/domain/catalog"
	"github.com/your-org/mealbox-backend/internal/domain/subscription"
)

// Service manages one cart per shopping session. Carts live in process
// memory only: closing the session loses the cart, which is the intended
// lifecycle. The mutex exists because the HTTP server serves sessions
// concurrently; within a session every operation is synchronous and atomic.
type Service struct {
	catalogService *catalog.Service

	mu    sync.RWMutex
	carts map[string]*Cart
}

// NewService creates a new cart service
func NewService(catalogService *catalog.Service) *Service {
	return &Service{
		catalogService: catalogService,
		carts:          make(map[string]*Cart),
	}
}

// GetCart returns a snapshot of the session's cart, creating an empty one on
// first access
func (s *Service) GetCart(sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(sessionID), nil
}

// AddMeal looks the meal up in the catalog and adds one portion to the
// session's cart
func (s *Service) AddMeal(ctx context.Context, sessionID, mealID string) (*Cart, error) {
	meal, err := s.catalogService.GetMeal(ctx, mealID)
	if err != nil {
		return nil, fmt.Errorf("add meal to cart: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cartLocked(sessionID).AddMeal(*meal)
	return s.snapshotLocked(sessionID), nil
}

// DecreaseMeal removes one portion of the meal from the session's cart
func (s *Service) DecreaseMeal(sessionID, mealID string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cartLocked(sessionID).DecreaseMeal(mealID)
	return s.snapshotLocked(sessionID), nil
}

// RemoveMeal drops the meal's line item entirely
func (s *Service) RemoveMeal(sessionID, mealID string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cartLocked(sessionID).RemoveMeal(mealID)
	return s.snapshotLocked(sessionID), nil
}

// Quantity returns the session's current quantity for a meal, or 0
func (s *Service) Quantity(sessionID, mealID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[sessionID]
	if !ok {
		return 0
	}
	return c.Quantity(mealID)
}

// SetSubscription attaches a finalized selection to the session's cart,
// overwriting any existing one
func (s *Service) SetSubscription(sessionID string, selection *subscription.Selection) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cartLocked(sessionID).SetSubscription(selection)
	return s.snapshotLocked(sessionID), nil
}

// ClearSubscription removes the session's subscription if present
func (s *Service) ClearSubscription(sessionID string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cartLocked(sessionID).ClearSubscription()
	return s.snapshotLocked(sessionID), nil
}

// Clear empties the session's cart. Invoked after successful order placement.
func (s *Service) Clear(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}

// ItemCount returns the derived badge count for the session
func (s *Service) ItemCount(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[sessionID]
	if !ok {
		return 0
	}
	return c.ItemCount()
}

// cartLocked returns the live cart for a session, creating it when absent.
// Callers must hold the write lock.
func (s *Service) cartLocked(sessionID string) *Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = &Cart{}
		s.carts[sessionID] = c
	}
	return c
}

// snapshotLocked copies the session's cart so callers never share slices
// with the live state. Callers must hold at least the read lock.
func (s *Service) snapshotLocked(sessionID string) *Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		return &Cart{}
	}

	snapshot := &Cart{
		Items:        make([]LineItem, len(c.Items)),
		Subscription: c.Subscription,
	}
	copy(snapshot.Items, c.Items)
	return snapshot
}
