package order_test

import (
	"testing"

	"orderlifecycle/internal/core/domain/model/actor"
	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAuthorizationMatrix(t *testing.T) {
	matrix := order.DefaultAuthorizationMatrix()

	expected := map[actor.Role][]order.Event{
		actor.RestaurantOwner: {order.Confirm, order.StartPreparing, order.MarkReady, order.Cancel},
		actor.DeliveryAgent:   {order.PickUp, order.Deliver},
		actor.Customer:        {},
	}

	for role, events := range expected {
		for _, event := range order.Events() {
			allowed := false
			for _, e := range events {
				if e == event {
					allowed = true
				}
			}

			t.Run(role.String()+"/"+event.String(), func(t *testing.T) {
				assert.Equal(t, allowed, matrix.Allows(role, event))

				err := matrix.Authorize(role, event)
				if allowed {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, errs.ErrActionIsForbidden)
				}
			})
		}
	}

	t.Run("should reject unknown role", func(t *testing.T) {
		err := matrix.Authorize(actor.Unknown, order.Confirm)
		require.ErrorIs(t, err, errs.ErrActionIsForbidden)
	})

	t.Run("should describe the rejected action", func(t *testing.T) {
		err := matrix.Authorize(actor.DeliveryAgent, order.Confirm)
		assert.Equal(t, "action is forbidden: delivery_agent may not CONFIRM", err.Error())
	})
}

func TestNewAuthorizationMatrix(t *testing.T) {
	t.Run("should collapse duplicate grants", func(t *testing.T) {
		m, err := order.NewAuthorizationMatrix([]order.Grant{
			{Role: actor.DeliveryAgent, Event: order.PickUp},
			{Role: actor.DeliveryAgent, Event: order.PickUp},
		})

		require.NoError(t, err)
		assert.Len(t, m.Grants(), 1)
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		_, err := order.NewAuthorizationMatrix([]order.Grant{{Role: actor.Unknown, Event: order.PickUp}})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject undeclared event", func(t *testing.T) {
		_, err := order.NewAuthorizationMatrix([]order.Grant{{Role: actor.DeliveryAgent, Event: order.UnknownEvent}})
		require.ErrorIs(t, err, errs.ErrEventIsInvalid)
	})
}
