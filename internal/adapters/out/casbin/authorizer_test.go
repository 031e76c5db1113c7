package casbin_test

import (
	"testing"

	"orderlifecycle/internal/adapters/out/casbin"
	"orderlifecycle/internal/core/domain/model/actor"
	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/core/ports"
	"orderlifecycle/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.EventAuthorizer = (*casbin.EventAuthorizer)(nil)

func TestEventAuthorizer_AgreesWithMatrix(t *testing.T) {
	matrix := order.DefaultAuthorizationMatrix()
	authorizer, err := casbin.NewEventAuthorizer(matrix)
	require.NoError(t, err)

	for _, role := range actor.Roles() {
		for _, event := range order.Events() {
			t.Run(role.String()+"/"+event.String(), func(t *testing.T) {
				err := authorizer.Authorize(role, event)
				if matrix.Allows(role, event) {
					assert.NoError(t, err)
					return
				}
				assert.ErrorIs(t, err, errs.ErrActionIsForbidden)
				assert.ErrorIs(t, matrix.Authorize(role, event), errs.ErrActionIsForbidden)
			})
		}
	}
}

func TestEventAuthorizer_CustomMatrix(t *testing.T) {
	matrix, err := order.NewAuthorizationMatrix([]order.Grant{
		{Role: actor.Customer, Event: order.Cancel},
	})
	require.NoError(t, err)

	authorizer, err := casbin.NewEventAuthorizer(matrix)
	require.NoError(t, err)

	require.NoError(t, authorizer.Authorize(actor.Customer, order.Cancel))
	require.ErrorIs(t, authorizer.Authorize(actor.RestaurantOwner, order.Cancel), errs.ErrActionIsForbidden)
}

func TestEventAuthorizer_UnknownRoleIsForbidden(t *testing.T) {
	authorizer, err := casbin.NewEventAuthorizer(order.DefaultAuthorizationMatrix())
	require.NoError(t, err)

	require.ErrorIs(t, authorizer.Authorize(actor.Unknown, order.Confirm), errs.ErrActionIsForbidden)
}

func TestNewEventAuthorizer_NilMatrix(t *testing.T) {
	_, err := casbin.NewEventAuthorizer(nil)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
