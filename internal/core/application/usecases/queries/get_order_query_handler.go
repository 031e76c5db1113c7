package queries

import (
	"context"

	"orderlifecycle/internal/pkg/errs"
	"orderlifecycle/internal/pkg/pgerrs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order. Soft-deleted orders are reported as not found.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+orderViewColumns+`
		FROM orders o
		WHERE o.id = ? AND o.is_deleted = false
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, pgerrs.Translate(err, "get order", "order", query.OrderID().String())
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, pgerrs.Translate(err, "get order", "order", query.OrderID().String())
		}
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	view, err := scanOrderView(rows)
	if err != nil {
		return nil, err
	}

	return &view, nil
}
