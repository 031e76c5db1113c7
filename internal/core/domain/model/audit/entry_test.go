package audit_test

import (
	"testing"
	"time"

	"orderlifecycle/internal/core/domain/model/actor"
	"orderlifecycle/internal/core/domain/model/audit"
	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	orderID := kernel.NewUUID()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should record the transition", func(t *testing.T) {
		e, err := audit.NewEntry(orderID, order.Confirmed, " accepted ", actor.RestaurantOwner, 42, at)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.NoError(t, e.ID().Validate())
		assert.True(t, e.OrderID().IsEqual(orderID))
		assert.Equal(t, order.Confirmed, e.Status())
		assert.Equal(t, "accepted", e.Remark())
		assert.Equal(t, actor.RestaurantOwner, e.ActorRole())
		assert.Equal(t, int64(42), e.ActorID())
		assert.Equal(t, at, e.CreatedAt())
	})

	t.Run("should allow an empty remark", func(t *testing.T) {
		e, err := audit.NewEntry(orderID, order.Cancelled, "", actor.RestaurantOwner, 1, at)

		require.NoError(t, err)
		assert.Empty(t, e.Remark())
	})

	t.Run("should reject invalid actor", func(t *testing.T) {
		_, err := audit.NewEntry(orderID, order.Confirmed, "", actor.Unknown, 0, at)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "actor id")
		assert.Contains(t, err.Error(), "role")
	})

	t.Run("should reject missing order", func(t *testing.T) {
		_, err := audit.NewEntry(kernel.UUID{}, order.Confirmed, "", actor.RestaurantOwner, 1, at)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
