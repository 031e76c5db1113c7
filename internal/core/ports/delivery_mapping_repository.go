package ports

import (
	"context"

	"orderlifecycle/internal/core/domain/model/delivery"
	"orderlifecycle/internal/core/domain/model/kernel"
)

// DeliveryMappingRepository stores which agent carries which order.
type DeliveryMappingRepository interface {
	// Add inserts a mapping. A second mapping for the same order yields errs.ConcurrencyConflictError.
	Add(ctx context.Context, mapping *delivery.Mapping) error

	// Update rewrites the agent of an existing mapping.
	Update(ctx context.Context, mapping *delivery.Mapping) error

	// GetByOrder returns errs.ObjectNotFoundError when the order has no mapping.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Mapping, error)

	// ArchiveByOrders flags the mappings of the given orders as archived.
	ArchiveByOrders(ctx context.Context, orderIDs []kernel.UUID) (int64, error)
}
