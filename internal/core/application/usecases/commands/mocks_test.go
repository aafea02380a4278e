package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// MockOrderRepository is a testify mock of ports.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllUnrouted(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if orders := args.Get(0); orders != nil {
		return orders.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllByCustomer(ctx context.Context, customerID string) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if orders := args.Get(0); orders != nil {
		return orders.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockOrderUoW is a testify mock of commands.OrderUoW.
type MockOrderUoW struct {
	mock.Mock
}

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

// MockOrderUoWFactory is a testify mock of commands.OrderUoWFactory.
type MockOrderUoWFactory struct {
	mock.Mock
}

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// MockWarehouseProvider is a testify mock of ports.WarehouseProvider.
type MockWarehouseProvider struct {
	mock.Mock
}

func (m *MockWarehouseProvider) GetAvailableWarehouses(ctx context.Context) ([]fleet.Warehouse, error) {
	args := m.Called(ctx)
	if warehouses := args.Get(0); warehouses != nil {
		return warehouses.([]fleet.Warehouse), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockDriverProvider is a testify mock of ports.DriverProvider.
type MockDriverProvider struct {
	mock.Mock
}

func (m *MockDriverProvider) GetAvailableDrivers(ctx context.Context, warehouseID string) ([]fleet.Driver, error) {
	args := m.Called(ctx, warehouseID)
	if drivers := args.Get(0); drivers != nil {
		return drivers.([]fleet.Driver), args.Error(1)
	}
	return nil, args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	price, err := kernel.NewMoneyFromString("10.00")
	require.NoError(t, err)
	item, err := order.NewItem("SKU-1", "Widget", 2, price)
	require.NoError(t, err)
	return []order.Item{item}
}

func testAddress() order.Address {
	return order.Address{"street": "123 Main St", "city": "Los Angeles"}
}

func storedOrder(t *testing.T, orderType order.Type, source order.Source, data order.IndustryData) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewOrderID(), "CUST-001", orderType, source, testItems(t), testAddress(), data)
	require.NoError(t, err)
	return o
}
