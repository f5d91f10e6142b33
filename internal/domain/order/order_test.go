// internal/domain/order/order_test.go
package order

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/mealbox-backend/internal/pkg/i18n"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusPreparing, true},
		{StatusPreparing, StatusOutForDelivery, true},
		{StatusOutForDelivery, StatusDelivered, true},
		{StatusPending, StatusCancelled, true},
		{StatusPreparing, StatusCancelled, true},
		{StatusOutForDelivery, StatusCancelled, true},
		{StatusPending, StatusOutForDelivery, false},
		{StatusPending, StatusDelivered, false},
		{StatusPreparing, StatusPending, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusDelivered, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusPreparing, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusDisplayNameCoversAllStatuses(t *testing.T) {
	statuses := []Status{StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled}

	for _, status := range statuses {
		for _, locale := range []i18n.Locale{i18n.LocaleArabic, i18n.LocaleEnglish} {
			label := status.DisplayName(locale)
			assert.NotEmpty(t, label)
			assert.NotEqual(t, string(status), label, "status %s has no %s label", status, locale)
		}
	}
}

func TestCreateAssignsIdentifiers(t *testing.T) {
	s := NewService()

	placed, err := s.Create(Order{UserID: "user-1"})
	require.NoError(t, err)

	assert.NotEmpty(t, placed.ID)
	assert.True(t, strings.HasPrefix(placed.OrderNumber, "MB-"))
	assert.Equal(t, StatusPending, placed.Status)
	assert.False(t, placed.PlacedAt.IsZero())
}

func TestOrderNumbersAreSequentialPerDay(t *testing.T) {
	s := NewService()

	day := time.Now().UTC().Format("20060102")
	seen := make(map[string]bool)
	for i := 1; i <= 3; i++ {
		placed, err := s.Create(Order{UserID: "user-1"})
		require.NoError(t, err)

		assert.Equal(t, fmt.Sprintf("MB-%s-%04d", day, i), placed.OrderNumber)
		assert.False(t, seen[placed.OrderNumber], "order number %s issued twice", placed.OrderNumber)
		seen[placed.OrderNumber] = true
	}
}

func TestListForUserNewestFirst(t *testing.T) {
	s := NewService()

	first, err := s.Create(Order{UserID: "user-1"})
	require.NoError(t, err)
	second, err := s.Create(Order{UserID: "user-1"})
	require.NoError(t, err)
	_, err = s.Create(Order{UserID: "user-2"})
	require.NoError(t, err)

	orders := s.ListForUser("user-1")
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestUpdateStatusEnforcesLifecycle(t *testing.T) {
	s := NewService()

	placed, err := s.Create(Order{UserID: "user-1"})
	require.NoError(t, err)

	_, err = s.UpdateStatus(placed.ID, StatusDelivered)
	require.Error(t, err, "pending cannot jump straight to delivered")

	updated, err := s.UpdateStatus(placed.ID, StatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, StatusPreparing, updated.Status)

	_, err = s.UpdateStatus(placed.ID, StatusOutForDelivery)
	require.NoError(t, err)
	updated, err = s.UpdateStatus(placed.ID, StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, updated.Status)

	_, err = s.UpdateStatus(placed.ID, StatusCancelled)
	require.Error(t, err, "delivered is terminal")
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	s := NewService()

	_, err := s.UpdateStatus("order-missing", StatusPreparing)
	require.ErrorIs(t, err, ErrNotFound)
}
