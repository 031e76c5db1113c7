// Package casbin enforces the order event authorization matrix with a casbin enforcer.
//
// The policy is generated from an order.AuthorizationMatrix at startup and kept in memory;
// there is no policy file or policy table.
package casbin

import (
	"fmt"

	"orderlifecycle/internal/core/domain/model/actor"
	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/pkg/errs"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// resource is the object every grant is issued on.
const resource = "order"

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// EventAuthorizer implements ports.EventAuthorizer.
type EventAuthorizer struct {
	enforcer *casbin.SyncedEnforcer
}

// NewEventAuthorizer loads one policy row per grant of matrix.
func NewEventAuthorizer(matrix *order.AuthorizationMatrix) (*EventAuthorizer, error) {
	if matrix == nil {
		return nil, errs.NewValueIsRequiredError("authorization matrix")
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to load authorization model: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize authorization enforcer: %w", err)
	}

	for _, grant := range matrix.Grants() {
		if _, err = enforcer.AddPolicy(grant.Role.String(), resource, grant.Event.String()); err != nil {
			return nil, fmt.Errorf("failed to add policy for %s: %w", grant.Role, err)
		}
	}

	return &EventAuthorizer{enforcer: enforcer}, nil
}

// Authorize returns errs.ActionIsForbiddenError unless role holds a grant for event.
func (a *EventAuthorizer) Authorize(role actor.Role, event order.Event) error {
	allowed, err := a.enforcer.Enforce(role.String(), resource, event.String())
	if err != nil {
		return errs.NewActionIsForbiddenErrorWithCause(role.String(), event.String(), err)
	}
	if !allowed {
		return errs.NewActionIsForbiddenError(role.String(), event.String())
	}
	return nil
}
