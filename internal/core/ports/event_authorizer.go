package ports

import (
	"orderlifecycle/internal/core/domain/model/actor"
	"orderlifecycle/internal/core/domain/model/order"
)

// EventAuthorizer decides whether a role may submit an event.
// Implementations return errs.ActionIsForbiddenError on rejection.
type EventAuthorizer interface {
	Authorize(role actor.Role, event order.Event) error
}
