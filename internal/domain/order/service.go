// internal/domain/order/service.go
package order

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an order does not exist
var ErrNotFound = fmt.Errorf("order not found")

// Service keeps placed orders in process memory. Like the cart, order
// history is transient by design; there is no database behind it.
type Service struct {
	mu     sync.RWMutex
	orders []*Order

	// per-day order number sequence
	seqDay string
	seq    int
}

// NewService creates a new order service
func NewService() *Service {
	return &Service{}
}

// Create stores a new order snapshot and assigns its identifiers
func (s *Service) Create(o Order) (*Order, error) {
	now := time.Now().UTC()
	o.ID = uuid.New().String()
	o.Status = StatusPending
	o.PlacedAt = now
	o.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()

	o.OrderNumber = s.nextOrderNumberLocked(now)

	stored := o
	s.orders = append(s.orders, &stored)

	result := stored
	return &result, nil
}

// Get returns one order by id
func (s *Service) Get(orderID string) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == orderID {
			result := *o
			return &result, nil
		}
	}
	return nil, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
}

// ListForUser returns the orders placed by one user, newest first
func (s *Service) ListForUser(userID string) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Order
	for i := len(s.orders) - 1; i >= 0; i-- {
		if s.orders[i].UserID == userID {
			out = append(out, *s.orders[i])
		}
	}
	return out
}

// ListAll returns every order, newest first. Admin use only.
func (s *Service) ListAll() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		out = append(out, *s.orders[i])
	}
	return out
}

// UpdateStatus advances an order through its fulfilment lifecycle. Invalid
// transitions are rejected.
func (s *Service) UpdateStatus(orderID string, next Status) (*Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("unknown order status %q", next)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID != orderID {
			continue
		}
		if !o.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("cannot move order %s from %s to %s", o.OrderNumber, o.Status, next)
		}
		o.Status = next
		o.UpdatedAt = time.Now().UTC()
		result := *o
		return &result, nil
	}
	return nil, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
}

// nextOrderNumberLocked builds a human-readable order reference from a
// per-day sequence, so two same-day orders can never share a number.
// Callers must hold the write lock.
func (s *Service) nextOrderNumberLocked(now time.Time) string {
	day := now.Format("20060102")
	if s.seqDay != day {
		s.seqDay = day
		s.seq = 0
	}
	s.seq++
	return fmt.Sprintf("MB-%s-%04d", day, s.seq)
}
