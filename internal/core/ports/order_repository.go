package ports

import (
	"context"
	"time"

	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and timestamps of an existing order, guarded by the version the
	// aggregate was loaded at. A version mismatch yields errs.ConcurrencyConflictError and
	// writes nothing; a missing row yields errs.ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, soft-deleted rows included.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ArchiveSettledBefore flags every terminal, not yet archived order last updated before
	// cutoff as archived and returns their identifiers. Status and version are left untouched.
	ArchiveSettledBefore(ctx context.Context, cutoff time.Time) ([]kernel.UUID, error)
}
