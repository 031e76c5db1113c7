// Package http exposes the order lifecycle over a JSON HTTP API served by echo.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"orderlifecycle/internal/core/application/usecases/commands"
	"orderlifecycle/internal/core/application/usecases/queries"
	"orderlifecycle/internal/core/domain/model/actor"
	"orderlifecycle/internal/core/domain/model/delivery"
	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type (
	createOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	applyOrderEventHandler interface {
		Handle(ctx context.Context, cmd commands.ApplyOrderEventCommand) (order.Status, error)
	}
	assignDeliveryAgentHandler interface {
		Handle(ctx context.Context, cmd commands.AssignDeliveryAgentCommand) (*delivery.Mapping, error)
	}
	getOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*queries.OrderView, error)
	}
	getOrderHistoryHandler interface {
		Handle(ctx context.Context, query queries.GetOrderHistoryQuery) ([]queries.HistoryEntry, error)
	}
	getReadyForPickupOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetReadyForPickupOrdersQuery) ([]queries.AssignedOrderView, error)
	}
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder             createOrderHandler
	ApplyOrderEvent         applyOrderEventHandler
	AssignDeliveryAgent     assignDeliveryAgentHandler
	GetOrder                getOrderHandler
	GetOrderHistory         getOrderHistoryHandler
	GetReadyForPickupOrders getReadyForPickupOrdersHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	g := e.Group("/order")
	g.POST("/place-order", s.PlaceOrder,
		s.requireRole(opPlaceOrder, actor.Customer))
	g.GET("/ready-for-pickup/:deliveryAgentId", s.GetReadyForPickupOrders,
		s.requireRole(opReadyForPickup, actor.DeliveryAgent))
	g.GET("/:orderId/status", s.GetOrder,
		s.requireRole(opGetOrder, actor.Customer, actor.RestaurantOwner))
	g.GET("/:orderId/history", s.GetOrderHistory,
		s.requireRole(opGetOrderHistory, actor.Customer, actor.RestaurantOwner))
	g.POST("/:orderId/update-status", s.UpdateOrderStatus,
		s.requireRole(opUpdateStatus, actor.RestaurantOwner, actor.DeliveryAgent))
	g.POST("/:orderId/delivery-agent-assign/:deliveryAgentId", s.AssignDeliveryAgent,
		s.requireRole(opAssignAgent, actor.RestaurantOwner))
}

const (
	opPlaceOrder      = "Error while placing order"
	opGetOrder        = "Error while getting order"
	opGetOrderHistory = "Error while getting order logs"
	opUpdateStatus    = "Error while processing order event"
	opAssignAgent     = "Error while assigning delivery agent"
	opReadyForPickup  = "Error while getting orders ready for pickup"
)

func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// PlaceOrder handles POST /order/place-order.
func (s *Server) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, opPlaceOrder, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	items := make([]order.LineItem, 0, len(req.Items))
	for i, it := range req.Items {
		price, err := kernel.NewMoney(it.UnitPrice)
		if err != nil {
			return s.fail(c, opPlaceOrder, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err))
		}
		item, err := order.NewLineItem(it.MenuItemID, it.Name, it.Quantity, price)
		if err != nil {
			return s.fail(c, opPlaceOrder, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err))
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(req.TotalAmount)
	if err != nil {
		return s.fail(c, opPlaceOrder, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), req.CustomerID, req.RestaurantID, items, total, req.DeliveryAddress,
	)
	if err != nil {
		return s.fail(c, opPlaceOrder, err)
	}

	placed, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, opPlaceOrder, err)
	}

	return ok(c, http.StatusCreated, fromAggregate(placed))
}

// GetOrder handles GET /order/:orderId/status.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return s.fail(c, opGetOrder, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(c, opGetOrder, err)
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, opGetOrder, err)
	}

	return ok(c, http.StatusOK, fromView(*view))
}

// GetOrderHistory handles GET /order/:orderId/history.
func (s *Server) GetOrderHistory(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return s.fail(c, opGetOrderHistory, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return s.fail(c, opGetOrderHistory, err)
	}

	entries, err := s.handlers.GetOrderHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, opGetOrderHistory, err)
	}

	logs := make([]OrderLog, 0, len(entries))
	for _, e := range entries {
		logs = append(logs, OrderLog{
			OrderStatus: e.Status.String(),
			Remarks:     e.Remark,
			UserType:    e.ActorRole.String(),
			UserID:      e.ActorID,
			CreatedAt:   e.CreatedAt,
		})
	}

	return ok(c, http.StatusOK, logs)
}

// UpdateOrderStatus handles POST /order/:orderId/update-status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return s.fail(c, opUpdateStatus, err)
	}

	var req UpdateStatusRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, opUpdateStatus, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewApplyOrderEventCommand(orderID, roleFrom(c), req.OrderEvent, req.UserID, req.Remarks)
	if err != nil {
		return s.fail(c, opUpdateStatus, err)
	}

	status, err := s.handlers.ApplyOrderEvent.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, opUpdateStatus, err)
	}

	return ok(c, http.StatusOK, OrderStatusUpdate{
		OrderID:     orderID.String(),
		OrderStatus: status.String(),
	})
}

// AssignDeliveryAgent handles POST /order/:orderId/delivery-agent-assign/:deliveryAgentId.
func (s *Server) AssignDeliveryAgent(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return s.fail(c, opAssignAgent, err)
	}

	agentID, err := parseID("delivery agent id", c.Param("deliveryAgentId"))
	if err != nil {
		return s.fail(c, opAssignAgent, err)
	}

	cmd, err := commands.NewAssignDeliveryAgentCommand(orderID, agentID)
	if err != nil {
		return s.fail(c, opAssignAgent, err)
	}

	mapping, err := s.handlers.AssignDeliveryAgent.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, opAssignAgent, err)
	}

	return ok(c, http.StatusOK, DeliveryAgentMapping{
		OrderID:         mapping.OrderID().String(),
		DeliveryAgentID: mapping.DeliveryAgentID(),
	})
}

// GetReadyForPickupOrders handles GET /order/ready-for-pickup/:deliveryAgentId.
// Optional query parameters: restaurantId, and readyOnly=true to keep READY orders only.
func (s *Server) GetReadyForPickupOrders(c echo.Context) error {
	agentID, err := parseID("delivery agent id", c.Param("deliveryAgentId"))
	if err != nil {
		return s.fail(c, opReadyForPickup, err)
	}

	var restaurantID *int64
	if raw := c.QueryParam("restaurantId"); raw != "" {
		id, parseErr := parseID("restaurant id", raw)
		if parseErr != nil {
			return s.fail(c, opReadyForPickup, parseErr)
		}
		restaurantID = &id
	}

	readyOnly := false
	if raw := c.QueryParam("readyOnly"); raw != "" {
		if readyOnly, err = strconv.ParseBool(raw); err != nil {
			return s.fail(c, opReadyForPickup, errs.NewValueIsInvalidErrorWithCause("readyOnly", err))
		}
	}

	query, err := queries.NewGetReadyForPickupOrdersQuery(agentID, restaurantID, readyOnly)
	if err != nil {
		return s.fail(c, opReadyForPickup, err)
	}

	views, err := s.handlers.GetReadyForPickupOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, opReadyForPickup, err)
	}

	orders := make([]AssignedOrder, 0, len(views))
	for _, v := range views {
		orders = append(orders, AssignedOrder{Order: fromView(v.OrderView), DeliveryAgentID: v.DeliveryAgentID})
	}

	return ok(c, http.StatusOK, orders)
}

func parseID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
