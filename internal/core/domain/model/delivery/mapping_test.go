package delivery_test

import (
	"testing"
	"time"

	"orderlifecycle/internal/core/domain/model/delivery"
	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMapping(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create a mapping", func(t *testing.T) {
		orderID := kernel.NewUUID()

		m, err := delivery.NewMapping(orderID, 9, at)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.OrderID().IsEqual(orderID))
		assert.Equal(t, int64(9), m.DeliveryAgentID())
		assert.Equal(t, at, m.CreatedAt())
		assert.Equal(t, at, m.UpdatedAt())
		assert.False(t, m.IsDeleted())
	})

	t.Run("should reject non-positive agent", func(t *testing.T) {
		_, err := delivery.NewMapping(kernel.NewUUID(), 0, at)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "delivery agent id")
	})
}

func TestMapping_ReassignTo(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Minute)

	t.Run("should replace the agent in place", func(t *testing.T) {
		m, err := delivery.RestoreMapping(delivery.RestoreParams{
			ID:              kernel.NewUUID(),
			OrderID:         kernel.NewUUID(),
			DeliveryAgentID: 9,
			IsDeleted:       true,
			CreatedAt:       created,
			UpdatedAt:       created,
		})
		require.NoError(t, err)
		id := m.ID()

		require.NoError(t, m.ReassignTo(11, later))

		assert.True(t, m.ID().IsEqual(id))
		assert.Equal(t, int64(11), m.DeliveryAgentID())
		assert.False(t, m.IsDeleted())
		assert.Equal(t, created, m.CreatedAt())
		assert.Equal(t, later, m.UpdatedAt())
	})

	t.Run("should keep the agent on invalid input", func(t *testing.T) {
		m, err := delivery.NewMapping(kernel.NewUUID(), 9, created)
		require.NoError(t, err)

		require.ErrorIs(t, m.ReassignTo(-1, later), errs.ErrValueIsInvalid)
		assert.Equal(t, int64(9), m.DeliveryAgentID())
	})
}
