// internal/domain/subscription/service.go
package subscription

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/your-org/mealbox-backend/internal/domain/catalog"
)

// ErrSessionNotFound is returned when a configurator session id is unknown
// or belongs to a different shopping session
var ErrSessionNotFound = fmt.Errorf("configurator session not found")

// Service manages in-flight configurator sessions. Each session belongs to
// exactly one shopping session; terminal configurators (committed or
// cancelled) are dropped. State is process-local and transient like the
// cart.
type Service struct {
	catalogService *catalog.Service

	mu       sync.Mutex
	sessions map[string]*configuratorSession
}

type configuratorSession struct {
	ownerSessionID string
	configurator   *Configurator
}

// NewService creates a new subscription configurator service
func NewService(catalogService *catalog.Service) *Service {
	return &Service{
		catalogService: catalogService,
		sessions:       make(map[string]*configuratorSession),
	}
}

// Start opens a configurator for a plan template on behalf of a shopping
// session and returns the configurator session id
func (s *Service) Start(ctx context.Context, sessionID, planID string) (string, *Configurator, error) {
	plan, err := s.catalogService.GetPlan(ctx, planID)
	if err != nil {
		return "", nil, fmt.Errorf("start configuration: %w", err)
	}

	configurator, err := NewConfigurator(*plan)
	if err != nil {
		return "", nil, err
	}

	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &configuratorSession{
		ownerSessionID: sessionID,
		configurator:   configurator,
	}

	return id, configurator, nil
}

// Update applies a mutation to a configurator session under the service
// lock. The callback receives the live configurator; configurators
// themselves are not safe for concurrent use.
func (s *Service) Update(sessionID, configuratorID string, fn func(*Configurator) error) (*Configurator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.findLocked(sessionID, configuratorID)
	if err != nil {
		return nil, err
	}

	if err := fn(session.configurator); err != nil {
		return nil, err
	}

	// Terminal configurators are of no further use to the session
	if step := session.configurator.Step(); step == StepCommitted || step == StepCancelled {
		delete(s.sessions, configuratorID)
	}

	return session.configurator, nil
}

// Get returns the live configurator for inspection
func (s *Service) Get(sessionID, configuratorID string) (*Configurator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.findLocked(sessionID, configuratorID)
	if err != nil {
		return nil, err
	}
	return session.configurator, nil
}

func (s *Service) findLocked(sessionID, configuratorID string) (*configuratorSession, error) {
	session, ok := s.sessions[configuratorID]
	if !ok || session.ownerSessionID != sessionID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}
