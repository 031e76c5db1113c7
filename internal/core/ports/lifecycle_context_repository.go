package ports

import (
	"context"

	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/lifecycle"
)

// LifecycleContextRepository keeps the last accepted transition per order.
type LifecycleContextRepository interface {
	// Get returns errs.ObjectNotFoundError when the order has no context yet.
	Get(ctx context.Context, orderID kernel.UUID) (*lifecycle.Context, error)

	// Save inserts or replaces the context of its order.
	Save(ctx context.Context, c *lifecycle.Context) error
}
