// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/your-org/mealbox-backend/internal/config"
)

// ErrNotFound is returned when a catalog entry does not exist
var ErrNotFound = fmt.Errorf("catalog entry not found")

// Service serves the menu and subscription plan templates from an in-memory
// snapshot. There is no backing store: the catalog is seeded once at startup
// and read-only afterwards. Reads simulate network latency so callers behave
// the way they would against a real upstream.
type Service struct {
	config     *config.Config
	categories []Category
	meals      []Meal
	plans      []SubscriptionPlan
}

// NewService creates a catalog service populated with the seed data
func NewService(cfg *config.Config) *Service {
	return &Service{
		config:     cfg,
		categories: seedCategories(),
		meals:      seedMeals(),
		plans:      seedPlans(),
	}
}

// GetCategories returns all menu categories
func (s *Service) GetCategories(ctx context.Context) ([]Category, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

// GetMeals returns the full menu
func (s *Service) GetMeals(ctx context.Context) ([]Meal, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	out := make([]Meal, len(s.meals))
	copy(out, s.meals)
	return out, nil
}

// GetMealsByCategory returns the meals belonging to one category
func (s *Service) GetMealsByCategory(ctx context.Context, categoryID string) ([]Meal, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	var out []Meal
	for _, meal := range s.meals {
		if meal.CategoryID == categoryID {
			out = append(out, meal)
		}
	}
	return out, nil
}

// GetMeal returns a single meal by id
func (s *Service) GetMeal(ctx context.Context, mealID string) (*Meal, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	for _, meal := range s.meals {
		if meal.ID == mealID {
			m := meal
			return &m, nil
		}
	}
	return nil, fmt.Errorf("meal %s: %w", mealID, ErrNotFound)
}

// GetPlans returns all subscription plan templates
func (s *Service) GetPlans(ctx context.Context) ([]SubscriptionPlan, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	out := make([]SubscriptionPlan, len(s.plans))
	copy(out, s.plans)
	return out, nil
}

// GetPlan returns a single subscription plan template by id
func (s *Service) GetPlan(ctx context.Context, planID string) (*SubscriptionPlan, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	for _, plan := range s.plans {
		if plan.ID == planID {
			p := plan
			return &p, nil
		}
	}
	return nil, fmt.Errorf("plan %s: %w", planID, ErrNotFound)
}

// simulateLatency sleeps for the configured mock latency, honoring context
// cancellation. Latency zero returns immediately.
func (s *Service) simulateLatency(ctx context.Context) error {
	delay := s.config.Catalog.SimulatedLatency
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
