package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
)

func routingFleet() ([]fleet.Warehouse, []fleet.Driver) {
	warehouses := []fleet.Warehouse{
		{ID: "WH-001", Name: "Main Distribution Center", Capabilities: []string{"ecommerce", "retail", "3pl"}},
		{ID: "WH-002", Name: "Food Hub", Capabilities: []string{"food_delivery"}, TemperatureControlled: true},
	}
	drivers := []fleet.Driver{
		{
			ID: "DRV-001", Name: "John Doe", VehicleType: "van",
			Certifications:  []string{"food_safety", "hazmat"},
			Specializations: []string{"food_delivery", "ecommerce"},
			CurrentLoad:     3, MaxLoad: 15, Rating: 4.8,
		},
	}
	return warehouses, drivers
}

func newRouteHandler(
	factory commands.OrderUoWFactory,
	warehouses *MockWarehouseProvider,
	drivers *MockDriverProvider,
) commands.RouteOrderCommandHandler {
	return commands.NewRouteOrderCommandHandler(
		factory,
		warehouses,
		drivers,
		services.NewWarehouseRouter(discardLogger()),
		services.NewDriverAssigner(discardLogger()),
	)
}

func TestRouteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.TypeFoodDeliveryCustomer, order.SourceUberEats, nil)
	availableWarehouses, availableDrivers := routingFleet()

	repo := &MockOrderRepository{}
	uow := &MockOrderUoW{}
	factory := &MockOrderUoWFactory{}
	warehouses := &MockWarehouseProvider{}
	drivers := &MockDriverProvider{}

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	warehouses.On("GetAvailableWarehouses", ctx).Return(availableWarehouses, nil).Once()
	drivers.On("GetAvailableDrivers", ctx, "WH-002").Return(availableDrivers, nil).Once()
	repo.On("Update", ctx, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := newRouteHandler(factory, warehouses, drivers)

	cmd, err := commands.NewRouteOrderCommand(o.ID())
	require.NoError(t, err)

	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, o.ID().String(), result.OrderID)
	assert.Equal(t, "Food Delivery", result.Industry)
	assert.Equal(t, "WH-002", result.Routing.WarehouseID)
	require.NotNil(t, result.Driver)
	assert.Equal(t, "DRV-001", result.Driver.DriverID)

	require.Len(t, result.Steps, 2)
	assert.Equal(t, "warehouse_routing", result.Steps[0].Step)
	assert.Equal(t, "driver_assignment", result.Steps[1].Step)
	assert.Equal(t, 100.0, result.AutomationRate)

	assert.Equal(t, "WH-002", o.WarehouseID())
	assert.Equal(t, "DRV-001", o.AssignedDriver())
	warehouses.AssertExpectations(t)
	drivers.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRouteOrderCommandHandler_Handle_ManualRouting(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.TypeEcommerceDirect, order.SourceShopify, nil)

	repo := &MockOrderRepository{}
	uow := &MockOrderUoW{}
	factory := &MockOrderUoWFactory{}
	warehouses := &MockWarehouseProvider{}
	drivers := &MockDriverProvider{}

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	warehouses.On("GetAvailableWarehouses", ctx).Return([]fleet.Warehouse{}, nil).Once()
	repo.On("Update", ctx, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := newRouteHandler(factory, warehouses, drivers)

	cmd, err := commands.NewRouteOrderCommand(o.ID())
	require.NoError(t, err)

	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Routing.IsManual())
	assert.Nil(t, result.Driver)
	assert.Len(t, result.Steps, 1)
	assert.Empty(t, o.WarehouseID())
	drivers.AssertNotCalled(t, "GetAvailableDrivers", mock.Anything, mock.Anything)
}

func TestRouteOrderCommandHandler_Handle_NoDrivers(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.TypeEcommerceDirect, order.SourceShopify, nil)
	availableWarehouses, _ := routingFleet()

	repo := &MockOrderRepository{}
	uow := &MockOrderUoW{}
	factory := &MockOrderUoWFactory{}
	warehouses := &MockWarehouseProvider{}
	drivers := &MockDriverProvider{}

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	warehouses.On("GetAvailableWarehouses", ctx).Return(availableWarehouses, nil).Once()
	drivers.On("GetAvailableDrivers", ctx, "WH-001").Return([]fleet.Driver{}, nil).Once()
	repo.On("Update", ctx, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := newRouteHandler(factory, warehouses, drivers)

	cmd, err := commands.NewRouteOrderCommand(o.ID())
	require.NoError(t, err)

	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result.Driver)
	assert.False(t, result.Driver.IsAssigned())
	assert.Equal(t, "No drivers available", result.Driver.Reason)
	assert.Equal(t, "WH-001", o.WarehouseID())
	assert.Empty(t, o.AssignedDriver())
}

func TestRouteOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	handler := newRouteHandler(&MockOrderUoWFactory{}, &MockWarehouseProvider{}, &MockDriverProvider{})

	_, err := handler.Handle(t.Context(), commands.RouteOrderCommand{})

	assert.ErrorIs(t, err, commands.ErrRouteOrderCommandIsNotConstructed)
}
