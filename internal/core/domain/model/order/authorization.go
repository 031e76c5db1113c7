package order

import (
	"orderlifecycle/internal/core/domain/model/actor"
	"orderlifecycle/internal/pkg/errs"
)

// Grant permits one role to submit one event.
type Grant struct {
	Role  actor.Role
	Event Event
}

// AuthorizationMatrix is the static role to event permission table.
type AuthorizationMatrix struct {
	grants  []Grant
	allowed map[actor.Role]map[Event]struct{}
}

// NewAuthorizationMatrix builds a matrix from grants. Duplicate grants are collapsed.
func NewAuthorizationMatrix(grants []Grant) (*AuthorizationMatrix, error) {
	m := &AuthorizationMatrix{
		allowed: make(map[actor.Role]map[Event]struct{}),
	}
	for _, g := range grants {
		if err := g.Role.Validate(); err != nil {
			return nil, err
		}
		if !g.Event.IsDeclared() {
			return nil, errs.NewEventIsInvalidError(g.Event.String())
		}
		if m.Allows(g.Role, g.Event) {
			continue
		}
		if m.allowed[g.Role] == nil {
			m.allowed[g.Role] = make(map[Event]struct{})
		}
		m.allowed[g.Role][g.Event] = struct{}{}
		m.grants = append(m.grants, g)
	}
	return m, nil
}

var defaultAuthorizationMatrix = mustDefaultAuthorizationMatrix()

func mustDefaultAuthorizationMatrix() *AuthorizationMatrix {
	m, err := NewAuthorizationMatrix([]Grant{
		{Role: actor.RestaurantOwner, Event: Confirm},
		{Role: actor.RestaurantOwner, Event: StartPreparing},
		{Role: actor.RestaurantOwner, Event: MarkReady},
		{Role: actor.RestaurantOwner, Event: Cancel},
		{Role: actor.DeliveryAgent, Event: PickUp},
		{Role: actor.DeliveryAgent, Event: Deliver},
	})
	if err != nil {
		panic(err)
	}
	return m
}

// DefaultAuthorizationMatrix returns the food order permissions.
// Customers hold no event grants; placing an order is checked at the boundary.
func DefaultAuthorizationMatrix() *AuthorizationMatrix {
	return defaultAuthorizationMatrix
}

// Allows reports whether role may submit event.
func (m *AuthorizationMatrix) Allows(role actor.Role, event Event) bool {
	_, ok := m.allowed[role][event]
	return ok
}

// Authorize returns an ActionIsForbiddenError unless role may submit event.
func (m *AuthorizationMatrix) Authorize(role actor.Role, event Event) error {
	if !m.Allows(role, event) {
		return errs.NewActionIsForbiddenError(role.String(), event.String())
	}
	return nil
}

// Grants returns a copy of the table in declaration order.
func (m *AuthorizationMatrix) Grants() []Grant {
	out := make([]Grant, len(m.grants))
	copy(out, m.grants)
	return out
}
