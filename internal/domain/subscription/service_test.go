// internal/domain/subscription/service_test.go
package subscription

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/mealbox-backend/internal/config"
	"github.com/your-org/mealbox-backend/internal/domain/catalog"
)

func testCatalogService() *catalog.Service {
	cfg := &config.Config{}
	cfg.Catalog.SimulatedLatency = 0
	return catalog.NewService(cfg)
}

func TestStartUnknownPlan(t *testing.T) {
	s := NewService(testCatalogService())

	_, _, err := s.Start(context.Background(), "session-1", "plan-missing")
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestConfiguratorScopedToOwnerSession(t *testing.T) {
	s := NewService(testCatalogService())

	id, _, err := s.Start(context.Background(), "session-1", "plan-balanced-weekly")
	require.NoError(t, err)

	_, err = s.Get("session-1", id)
	require.NoError(t, err)

	_, err = s.Get("session-2", id)
	require.ErrorIs(t, err, ErrSessionNotFound)

	_, err = s.Update("session-2", id, func(c *Configurator) error {
		c.Cancel()
		return nil
	})
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestTerminalSessionsAreEvicted(t *testing.T) {
	s := NewService(testCatalogService())

	id, _, err := s.Start(context.Background(), "session-1", "plan-balanced-weekly")
	require.NoError(t, err)

	_, err = s.Update("session-1", id, func(c *Configurator) error {
		c.Cancel()
		return nil
	})
	require.NoError(t, err)

	_, err = s.Get("session-1", id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUpdateErrorKeepsSessionAlive(t *testing.T) {
	s := NewService(testCatalogService())

	id, _, err := s.Start(context.Background(), "session-1", "plan-balanced-weekly")
	require.NoError(t, err)

	// Back is invalid during sizing; the session must survive the error
	_, err = s.Update("session-1", id, func(c *Configurator) error {
		return c.Back()
	})
	require.ErrorIs(t, err, ErrWrongStep)

	_, err = s.Get("session-1", id)
	require.NoError(t, err)
}
