package http

import (
	"time"

	"orderlifecycle/internal/core/application/usecases/queries"
	"orderlifecycle/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Envelope wraps every response body.
type Envelope struct {
	Status string        `json:"status"`
	Data   any           `json:"data,omitempty"`
	Error  *ErrorMessage `json:"error,omitempty"`
}

type ErrorMessage struct {
	Error       string `json:"error"`
	Description string `json:"description"`
}

const (
	statusSuccess = "success"
	statusFailed  = "failed"
)

type LineItem struct {
	MenuItemID int64           `json:"menuItemId"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
}

type PlaceOrderRequest struct {
	CustomerID      int64           `json:"customerId"`
	RestaurantID    int64           `json:"restaurantId"`
	Items           []LineItem      `json:"items"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	DeliveryAddress string          `json:"deliveryAddress"`
}

type UpdateStatusRequest struct {
	OrderEvent string `json:"orderEvent"`
	Remarks    string `json:"remarks"`
	UserID     int64  `json:"userId"`
}

type Order struct {
	OrderID         string          `json:"orderId"`
	CustomerID      int64           `json:"customerId"`
	RestaurantID    int64           `json:"restaurantId"`
	OrderStatus     string          `json:"orderStatus"`
	Items           []LineItem      `json:"items"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	DeliveryAddress string          `json:"deliveryAddress"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type AssignedOrder struct {
	Order
	DeliveryAgentID int64 `json:"deliveryAgentId"`
}

type OrderStatusUpdate struct {
	OrderID     string `json:"orderId"`
	OrderStatus string `json:"orderStatus"`
}

type OrderLog struct {
	OrderStatus string    `json:"orderStatus"`
	Remarks     string    `json:"remarks"`
	UserType    string    `json:"userType"`
	UserID      int64     `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type DeliveryAgentMapping struct {
	OrderID         string `json:"orderId"`
	DeliveryAgentID int64  `json:"deliveryAgentId"`
}

func fromAggregate(o *order.Order) Order {
	items := make([]LineItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, LineItem{
			MenuItemID: item.MenuItemID(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Decimal(),
		})
	}
	return Order{
		OrderID:         o.ID().String(),
		CustomerID:      o.CustomerID(),
		RestaurantID:    o.RestaurantID(),
		OrderStatus:     o.Status().String(),
		Items:           items,
		TotalAmount:     o.Total().Decimal(),
		DeliveryAddress: o.DeliveryAddress(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func fromView(v queries.OrderView) Order {
	items := make([]LineItem, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, LineItem(item))
	}
	return Order{
		OrderID:         v.ID.String(),
		CustomerID:      v.CustomerID,
		RestaurantID:    v.RestaurantID,
		OrderStatus:     v.Status.String(),
		Items:           items,
		TotalAmount:     v.TotalAmount,
		DeliveryAddress: v.DeliveryAddress,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}
