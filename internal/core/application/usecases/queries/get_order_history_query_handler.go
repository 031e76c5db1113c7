package queries

import (
	"context"
	"time"

	"orderlifecycle/internal/core/domain/model/actor"
	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/pkg/errs"
	"orderlifecycle/internal/pkg/pgerrs"

	"gorm.io/gorm"
)

// HistoryEntry is one accepted transition as shown to callers.
type HistoryEntry struct {
	Status    order.Status
	Remark    string
	ActorRole actor.Role
	ActorID   int64
	CreatedAt time.Time
}

type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns the live entries of the order ordered by creation time, then insertion
// order. An order without entries is an ObjectNotFoundError caused by ErrNoLogsFound.
func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]HistoryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const operation = "get order history"
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			remark,
			actor_role,
			actor_id,
			created_at
		FROM order_logs
		WHERE order_id = ? AND is_deleted = false
		ORDER BY created_at, seq
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, pgerrs.Translate(err, operation, "order logs", query.OrderID().String())
	}
	defer rows.Close()

	entries := make([]HistoryEntry, 0)
	for rows.Next() {
		var (
			entry  HistoryEntry
			status string
			role   string
		)
		if err = rows.Scan(&status, &entry.Remark, &role, &entry.ActorID, &entry.CreatedAt); err != nil {
			return nil, pgerrs.Translate(err, operation, "order logs", query.OrderID().String())
		}
		if entry.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		if entry.ActorRole, err = actor.ParseRole(role); err != nil {
			return nil, err
		}
		entry.CreatedAt = entry.CreatedAt.UTC()
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, pgerrs.Translate(err, operation, "order logs", query.OrderID().String())
	}

	if len(entries) == 0 {
		return nil, errs.NewObjectNotFoundErrorWithCause("order logs", query.OrderID().String(), ErrNoLogsFound)
	}

	return entries, nil
}
