package order_test

import (
	"fmt"
	"testing"

	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Rank(t *testing.T) {
	t.Run("should rank statuses in lifecycle order", func(t *testing.T) {
		testCases := []struct {
			status order.Status
			rank   int
		}{
			{order.Placed, 10},
			{order.Confirmed, 20},
			{order.Preparing, 30},
			{order.Ready, 40},
			{order.PickedUp, 50},
			{order.Delivered, 60},
			{order.Cancelled, 70},
		}

		for _, tc := range testCases {
			t.Run(tc.status.String(), func(t *testing.T) {
				assert.Equal(t, tc.rank, tc.status.Rank())
			})
		}
	})

	t.Run("should list statuses sorted by rank", func(t *testing.T) {
		statuses := order.Statuses()
		for i := 1; i < len(statuses); i++ {
			assert.Greater(t, statuses[i].Rank(), statuses[i-1].Rank())
		}
	})

	t.Run("should give invalid statuses rank zero", func(t *testing.T) {
		assert.Equal(t, 0, order.Unknown.Rank())
		assert.Equal(t, 0, order.Status(99).Rank())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	for _, status := range order.Statuses() {
		t.Run(status.String(), func(t *testing.T) {
			expected := status == order.Delivered || status == order.Cancelled
			assert.Equal(t, expected, status.IsTerminal())
		})
	}
}

func TestStatus_Precedes(t *testing.T) {
	assert.True(t, order.Placed.Precedes(order.Confirmed))
	assert.True(t, order.Ready.Precedes(order.Cancelled))
	assert.False(t, order.Confirmed.Precedes(order.Confirmed))
	assert.False(t, order.Preparing.Precedes(order.Placed))
	assert.False(t, order.Unknown.Precedes(order.Placed))
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate declared statuses", func(t *testing.T) {
		for _, status := range order.Statuses() {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(8), order.Status(100)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should round trip wire names", func(t *testing.T) {
		for _, status := range order.Statuses() {
			parsed, err := order.ParseStatus(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "UNKNOWN", "placed", "SHIPPED"} {
			_, err := order.ParseStatus(name)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, name)
		}
	})
}

func TestParseEvent(t *testing.T) {
	t.Run("should parse declared events", func(t *testing.T) {
		for _, event := range order.Events() {
			parsed, err := order.ParseEvent(event.String())
			require.NoError(t, err)
			assert.Equal(t, event, parsed)
		}
	})

	t.Run("should be case sensitive", func(t *testing.T) {
		_, err := order.ParseEvent("confirm")

		require.ErrorIs(t, err, errs.ErrEventIsInvalid)
		assert.Contains(t, err.Error(), "confirm")
	})

	t.Run("should reject undeclared names", func(t *testing.T) {
		_, err := order.ParseEvent("REFUND")
		require.ErrorIs(t, err, errs.ErrEventIsInvalid)
	})
}
