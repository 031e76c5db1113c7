package lifecycle_test

import (
	"testing"
	"time"

	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/lifecycle"
	"orderlifecycle/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContext(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should build a context", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := lifecycle.NewContext(id, order.Preparing, order.StartPreparing, at)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.OrderID().IsEqual(id))
		assert.Equal(t, order.Preparing, c.LastStatus())
		assert.Equal(t, order.StartPreparing, c.LastEvent())
		assert.Equal(t, at, c.UpdatedAt())
	})

	t.Run("should reject undeclared event", func(t *testing.T) {
		_, err := lifecycle.NewContext(kernel.NewUUID(), order.Preparing, order.UnknownEvent, at)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "declared event")
	})

	t.Run("should reject zero values", func(t *testing.T) {
		var c *lifecycle.Context
		require.ErrorIs(t, c.Validate(), lifecycle.ErrContextIsNotConstructed)
	})
}

func TestContext_AgreesWith(t *testing.T) {
	item, err := order.NewLineItem(1, "Soup", 1, mustMoney(t, "5.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), 1, 2, []order.LineItem{item}, mustMoney(t, "5.00"), "addr", time.Now())
	require.NoError(t, err)

	agreeing, err := lifecycle.NewContext(o.ID(), order.Placed, order.Confirm, time.Now())
	require.NoError(t, err)
	stale, err := lifecycle.NewContext(o.ID(), order.Confirmed, order.Confirm, time.Now())
	require.NoError(t, err)
	other, err := lifecycle.NewContext(kernel.NewUUID(), order.Placed, order.Confirm, time.Now())
	require.NoError(t, err)

	assert.True(t, agreeing.AgreesWith(o))
	assert.False(t, stale.AgreesWith(o))
	assert.False(t, other.AgreesWith(o))
}

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}
