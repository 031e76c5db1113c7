package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"orderlifecycle/internal/core/application/usecases/commands"
	"orderlifecycle/internal/core/domain/model/audit"
	"orderlifecycle/internal/core/domain/model/delivery"
	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/lifecycle"
	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ArchiveSettledBefore(ctx context.Context, cutoff time.Time) ([]kernel.UUID, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Append(ctx context.Context, e *audit.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockAuditRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*audit.Entry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.Entry), args.Error(1)
}

func (m *MockAuditRepository) ArchiveByOrders(ctx context.Context, orderIDs []kernel.UUID) (int64, error) {
	args := m.Called(ctx, orderIDs)
	return args.Get(0).(int64), args.Error(1)
}

type MockLifecycleContextRepository struct{ mock.Mock }

func (m *MockLifecycleContextRepository) Get(ctx context.Context, orderID kernel.UUID) (*lifecycle.Context, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lifecycle.Context), args.Error(1)
}

func (m *MockLifecycleContextRepository) Save(ctx context.Context, c *lifecycle.Context) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockDeliveryMappingRepository struct{ mock.Mock }

func (m *MockDeliveryMappingRepository) Add(ctx context.Context, d *delivery.Mapping) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryMappingRepository) Update(ctx context.Context, d *delivery.Mapping) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryMappingRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Mapping, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Mapping), args.Error(1)
}

func (m *MockDeliveryMappingRepository) ArchiveByOrders(ctx context.Context, orderIDs []kernel.UUID) (int64, error) {
	args := m.Called(ctx, orderIDs)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every unit of work flavour the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

func (m *MockUoW) LifecycleContextRepository() ports.LifecycleContextRepository {
	args := m.Called()
	return args.Get(0).(ports.LifecycleContextRepository)
}

func (m *MockUoW) DeliveryMappingRepository() ports.DeliveryMappingRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryMappingRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockLifecycleUoWFactory struct{ mock.Mock }

func (m *MockLifecycleUoWFactory) Create() commands.LifecycleUoW {
	args := m.Called()
	return args.Get(0).(commands.LifecycleUoW)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockStatusPublisher struct{ mock.Mock }

func (m *MockStatusPublisher) Publish(ctx context.Context, change ports.StatusChanged) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func testItems(t *testing.T) []order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(7, "Margherita", 2, testMoney(t, "12.50"))
	require.NoError(t, err)
	return []order.LineItem{item}
}

func storedOrder(t *testing.T, id kernel.UUID, status order.Status, version int64) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.RestoreParams{
		ID:           id,
		CustomerID:   101,
		RestaurantID: 201,
		Status:       status,
		Items:        testItems(t),
		Total:        testMoney(t, "25.00"),
		Address:      "12 Baker St",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
		Version:      version,
	})
	require.NoError(t, err)
	return o
}
