package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	postgres_adapter "orderlifecycle/internal/adapters/out/postgres"
	"orderlifecycle/internal/adapters/out/postgres/auditrepo"
	"orderlifecycle/internal/adapters/out/postgres/deliveryrepo"
	"orderlifecycle/internal/adapters/out/postgres/orderrepo"
	"orderlifecycle/internal/core/application/usecases/queries"
	"orderlifecycle/internal/core/domain/model/actor"
	"orderlifecycle/internal/core/domain/model/audit"
	"orderlifecycle/internal/core/domain/model/delivery"
	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type QueryHandlersTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	orderRepo    *orderrepo.GormOrderRepository
	auditRepo    *auditrepo.GormAuditRepository
	deliveryRepo *deliveryrepo.GormDeliveryMappingRepository
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.auditRepo = auditrepo.NewGormAuditRepository(db, &mockAggregateTracker{})
	suite.deliveryRepo = deliveryrepo.NewGormDeliveryMappingRepository(db, &mockAggregateTracker{})
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_logs, order_delivery_agents CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_ReturnsView() {
	o := suite.storeOrder(201, order.Confirmed)
	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	view, err := queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(o.ID().IsEqual(view.ID))
	suite.Equal(order.Confirmed, view.Status)
	suite.Equal(int64(101), view.CustomerID)
	suite.Equal(int64(201), view.RestaurantID)
	suite.Equal("18.00", view.TotalAmount.StringFixed(2))
	suite.Equal("4 Elm Rd", view.DeliveryAddress)
	suite.Require().Len(view.Items, 1)
	suite.Equal(queries.LineItem{
		MenuItemID: 5,
		Name:       "Ramen",
		Quantity:   2,
		UnitPrice:  view.Items[0].UnitPrice,
	}, view.Items[0])
	suite.Equal("9.00", view.Items[0].UnitPrice.StringFixed(2))
}

func (suite *QueryHandlersTestSuite) TestGetOrder_MissingOrSoftDeleted_NotFound() {
	handler := queries.NewGetOrderQueryHandler(suite.db)

	missing, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	deleted := suite.storeOrder(201, order.Placed)
	suite.Require().NoError(suite.db.Exec("UPDATE orders SET is_deleted = true WHERE id = ?",
		deleted.ID().Bytes()).Error)
	query, err := queries.NewGetOrderQuery(deleted.ID())
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetOrderHistory_OldestFirst() {
	ctx := context.Background()
	o := suite.storeOrder(201, order.Preparing)
	at := time.Now().UTC().Truncate(time.Second)
	suite.appendEntry(o.ID(), order.Confirmed, at)
	suite.appendEntry(o.ID(), order.Preparing, at)

	query, err := queries.NewGetOrderHistoryQuery(o.ID())
	suite.Require().NoError(err)
	history, err := queries.NewGetOrderHistoryQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal(order.Confirmed, history[0].Status)
	suite.Equal(order.Preparing, history[1].Status)
	suite.Equal(actor.RestaurantOwner, history[0].ActorRole)
	suite.Equal(int64(12), history[0].ActorID)
	suite.Equal("kitchen", history[0].Remark)
}

func (suite *QueryHandlersTestSuite) TestGetOrderHistory_Empty_NoLogs() {
	o := suite.storeOrder(201, order.Placed)
	query, err := queries.NewGetOrderHistoryQuery(o.ID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderHistoryQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	var notFound *errs.ObjectNotFoundError
	suite.Require().True(errors.As(err, &notFound))
	suite.ErrorIs(notFound.Cause, queries.ErrNoLogsFound)
}

func (suite *QueryHandlersTestSuite) TestGetReadyForPickupOrders_Filters() {
	ctx := context.Background()
	const agent = int64(77)

	readyHere := suite.storeOrder(201, order.Ready)
	pickedUpHere := suite.storeOrder(201, order.PickedUp)
	readyElsewhere := suite.storeOrder(202, order.Ready)
	otherAgents := suite.storeOrder(201, order.Ready)
	deletedMapping := suite.storeOrder(201, order.Ready)

	suite.mapTo(readyHere.ID(), agent)
	suite.mapTo(pickedUpHere.ID(), agent)
	suite.mapTo(readyElsewhere.ID(), agent)
	suite.mapTo(otherAgents.ID(), 78)
	suite.mapTo(deletedMapping.ID(), agent)
	suite.Require().NoError(suite.db.Exec(
		"UPDATE order_delivery_agents SET is_deleted = true WHERE order_id = ?", deletedMapping.ID().Bytes(),
	).Error)

	handler := queries.NewGetReadyForPickupOrdersQueryHandler(suite.db)
	restaurant := int64(201)

	tests := []struct {
		name       string
		restaurant *int64
		readyOnly  bool
		want       []kernel.UUID
	}{
		{"all mapped", nil, false, []kernel.UUID{readyHere.ID(), pickedUpHere.ID(), readyElsewhere.ID()}},
		{"one restaurant", &restaurant, false, []kernel.UUID{readyHere.ID(), pickedUpHere.ID()}},
		{"ready at one restaurant", &restaurant, true, []kernel.UUID{readyHere.ID()}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			query, err := queries.NewGetReadyForPickupOrdersQuery(agent, tt.restaurant, tt.readyOnly)
			suite.Require().NoError(err)

			views, err := handler.Handle(ctx, query)
			suite.Require().NoError(err)

			got := make([]string, 0, len(views))
			for _, v := range views {
				suite.Equal(agent, v.DeliveryAgentID)
				got = append(got, v.ID.String())
			}
			want := make([]string, 0, len(tt.want))
			for _, id := range tt.want {
				want = append(want, id.String())
			}
			suite.ElementsMatch(want, got)
		})
	}
}

func (suite *QueryHandlersTestSuite) TestGetReadyForPickupOrders_NoMatch_EmptySlice() {
	query, err := queries.NewGetReadyForPickupOrdersQuery(404, nil, false)
	suite.Require().NoError(err)

	views, err := queries.NewGetReadyForPickupOrdersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(views)
	suite.Empty(views)
}

func (suite *QueryHandlersTestSuite) TestHandle_CancelledContext_ReturnsError() {
	suite.storeOrder(201, order.Placed)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	query, err := queries.NewGetReadyForPickupOrdersQuery(1, nil, false)
	suite.Require().NoError(err)
	result, err := queries.NewGetReadyForPickupOrdersQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *QueryHandlersTestSuite) storeOrder(restaurantID int64, status order.Status) *order.Order {
	price, err := kernel.MoneyFromString("9.00")
	suite.Require().NoError(err)
	item, err := order.NewLineItem(5, "Ramen", 2, price)
	suite.Require().NoError(err)
	total, err := kernel.MoneyFromString("18.00")
	suite.Require().NoError(err)

	now := time.Now().UTC()
	o, err := order.RestoreOrder(order.RestoreParams{
		ID:           kernel.NewUUID(),
		CustomerID:   101,
		RestaurantID: restaurantID,
		Status:       status,
		Items:        []order.LineItem{item},
		Total:        total,
		Address:      "4 Elm Rd",
		CreatedAt:    now,
		UpdatedAt:    now,
		Version:      order.InitialVersion,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *QueryHandlersTestSuite) appendEntry(orderID kernel.UUID, status order.Status, at time.Time) {
	entry, err := audit.NewEntry(orderID, status, "kitchen", actor.RestaurantOwner, 12, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.auditRepo.Append(context.Background(), entry))
}

func (suite *QueryHandlersTestSuite) mapTo(orderID kernel.UUID, agentID int64) {
	mapping, err := delivery.NewMapping(orderID, agentID, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.deliveryRepo.Add(context.Background(), mapping))
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
