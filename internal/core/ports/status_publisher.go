package ports

import (
	"context"
	"time"

	"orderlifecycle/internal/core/domain/model/actor"
	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/order"
)

// StatusChanged describes a committed transition.
type StatusChanged struct {
	OrderID   kernel.UUID
	From      order.Status
	Status    order.Status
	Event     order.Event
	ActorRole actor.Role
	ActorID   int64
	ChangedAt time.Time
}

// StatusPublisher announces committed transitions to other services.
// It is called only after the transaction commits.
type StatusPublisher interface {
	Publish(ctx context.Context, change StatusChanged) error
}
