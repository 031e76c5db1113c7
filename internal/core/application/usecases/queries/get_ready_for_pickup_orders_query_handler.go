package queries

import (
	"context"
	"strings"

	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/pkg/pgerrs"

	"gorm.io/gorm"
)

// AssignedOrderView is an order together with the agent it is mapped to.
type AssignedOrderView struct {
	OrderView
	DeliveryAgentID int64
}

type GetReadyForPickupOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetReadyForPickupOrdersQueryHandler(db *gorm.DB) GetReadyForPickupOrdersQueryHandler {
	return GetReadyForPickupOrdersQueryHandler{db: db}
}

// Handle joins live orders with live, unarchived mappings of the agent. No match yields an
// empty slice, never an error.
func (h GetReadyForPickupOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetReadyForPickupOrdersQuery,
) ([]AssignedOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const operation = "get orders ready for pickup"
	var sb strings.Builder
	sb.WriteString(`
		SELECT` + orderViewColumns + `,
			m.delivery_agent_id
		FROM orders o
		INNER JOIN order_delivery_agents m ON m.order_id = o.id
		WHERE m.delivery_agent_id = ?
			AND m.is_deleted = false
			AND m.is_archived = false
			AND o.is_deleted = false`)
	args := []any{query.DeliveryAgentID()}

	if restaurantID, ok := query.RestaurantID(); ok {
		sb.WriteString(`
			AND o.restaurant_id = ?`)
		args = append(args, restaurantID)
	}
	if query.ReadyOnly() {
		sb.WriteString(`
			AND o.status = ?`)
		args = append(args, order.Ready.String())
	}
	sb.WriteString(`
		ORDER BY o.created_at, o.id`)

	rows, err := h.db.WithContext(ctx).Raw(sb.String(), args...).Rows()
	if err != nil {
		return nil, pgerrs.Translate(err, operation, "delivery agent", query.DeliveryAgentID())
	}
	defer rows.Close()

	views := make([]AssignedOrderView, 0)
	for rows.Next() {
		var agentID int64
		view, scanErr := scanOrderView(rows, &agentID)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, AssignedOrderView{OrderView: view, DeliveryAgentID: agentID})
	}
	if err = rows.Err(); err != nil {
		return nil, pgerrs.Translate(err, operation, "delivery agent", query.DeliveryAgentID())
	}

	return views, nil
}
