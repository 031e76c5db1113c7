// Package queries contains read operations. Handlers read committed rows straight from the
// database and never go through aggregates or the unit of work.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/pkg/pgerrs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one ordered menu item as shown to callers.
type LineItem struct {
	MenuItemID int64           `json:"menuItemId"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
}

// OrderView is the read model of an order row.
type OrderView struct {
	ID              kernel.UUID
	CustomerID      int64
	RestaurantID    int64
	Status          order.Status
	Items           []LineItem
	TotalAmount     decimal.Decimal
	DeliveryAddress string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const orderViewColumns = `
	o.id,
	o.customer_id,
	o.restaurant_id,
	o.status,
	o.items,
	o.total_amount,
	o.delivery_address,
	o.created_at,
	o.updated_at`

// scanOrderView reads orderViewColumns followed by extra destinations.
func scanOrderView(rows *sql.Rows, extra ...any) (OrderView, error) {
	var (
		view   OrderView
		id     uuid.UUID
		status string
		items  []byte
	)

	dest := append([]any{
		&id,
		&view.CustomerID,
		&view.RestaurantID,
		&status,
		&items,
		&view.TotalAmount,
		&view.DeliveryAddress,
		&view.CreatedAt,
		&view.UpdatedAt,
	}, extra...)
	if err := rows.Scan(dest...); err != nil {
		return OrderView{}, pgerrs.Translate(err, "scan order", "order", id.String())
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderView{}, err
	}
	view.ID = orderID

	if view.Status, err = order.ParseStatus(status); err != nil {
		return OrderView{}, err
	}

	view.Items = make([]LineItem, 0)
	if len(items) > 0 {
		if err = json.Unmarshal(items, &view.Items); err != nil {
			return OrderView{}, err
		}
	}

	view.CreatedAt = view.CreatedAt.UTC()
	view.UpdatedAt = view.UpdatedAt.UTC()
	return view, nil
}
