package ports

import (
	"context"

	"orderlifecycle/internal/core/domain/model/audit"
	"orderlifecycle/internal/core/domain/model/kernel"
)

// AuditRepository stores the append-only transition history.
type AuditRepository interface {
	// Append inserts a new entry. Entries are never updated.
	Append(ctx context.Context, entry *audit.Entry) error

	// ListByOrder returns the entries of an order oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*audit.Entry, error)

	// ArchiveByOrders flags the entries of the given orders as archived.
	ArchiveByOrders(ctx context.Context, orderIDs []kernel.UUID) (int64, error)
}
