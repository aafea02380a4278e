package orderrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.OrderID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(order.TypeEcommerceDirect, "CUST-100")

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, &order.Order{})
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)

	suite.assertOrderCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	originalOrder := suite.createFoodOrder("CUST-200")
	originalOrder.AddTag("fragile")
	suite.Require().NoError(originalOrder.AssignWarehouse("WH-002"))

	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	err := suite.repository.Add(ctx, originalOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(originalOrder.ID(), retrievedOrder.ID())
	suite.Equal("CUST-200", retrievedOrder.CustomerID())
	suite.Equal(order.StatusPending, retrievedOrder.Status())
	suite.Equal(order.TypeFoodDeliveryCustomer, retrievedOrder.OrderType())
	suite.Equal(order.CategoryFoodDelivery, retrievedOrder.IndustryCategory())
	suite.Equal("WH-002", retrievedOrder.WarehouseID())
	suite.Equal([]string{"fragile"}, retrievedOrder.Tags())
	suite.Equal(originalOrder.TotalAmount().String(), retrievedOrder.TotalAmount().String())
	suite.Len(retrievedOrder.Items(), 1)

	foodData, ok := retrievedOrder.IndustryData().(*order.FoodDeliveryData)
	suite.Require().True(ok, "industry payload should decode to FoodDeliveryData")
	suite.Equal("REST-42", foodData.RestaurantID)
	suite.Equal("Trattoria Nonna", foodData.RestaurantName)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentID := kernel.NewOrderID()
	retrievedOrder, err := suite.repository.Get(ctx, nonExistentID)

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusAndAssignments_Persisted() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(order.TypeEcommerceDirect, "CUST-300")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.Require().NoError(testOrder.ApplyStatus(order.StatusConfirmed))
	suite.Require().NoError(testOrder.AssignWarehouse("WH-001"))
	suite.Require().NoError(testOrder.AssignDriver("DRV-007"))

	err = suite.repository.Update(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, retrievedOrder.Status())
	suite.Equal("WH-001", retrievedOrder.WarehouseID())
	suite.Equal("DRV-007", retrievedOrder.AssignedDriver())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	nonExistentOrder := suite.createTestOrder(order.TypeEcommerceDirect, "CUST-400")

	// No expectations on tracker since operation should fail
	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)
	suite.Contains(strings.ToLower(err.Error()), "record not found")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllUnrouted_FiltersRoutedAndTerminalOrders() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.OrderID"), mock.Anything).Times(4)

	unrouted1 := suite.createTestOrder(order.TypeEcommerceDirect, "CUST-500")
	unrouted2 := suite.createFoodOrder("CUST-501")

	routed := suite.createTestOrder(order.TypeRetailPurchaseOrder, "CUST-502")
	suite.Require().NoError(routed.AssignWarehouse("WH-001"))

	cancelled := suite.createTestOrder(order.TypeEcommerceDirect, "CUST-503")
	suite.Require().NoError(cancelled.ApplyStatus(order.StatusCancelled))

	for _, o := range []*order.Order{unrouted1, unrouted2, routed, cancelled} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	result, err := suite.repository.GetAllUnrouted(ctx)
	suite.Require().NoError(err)
	suite.Len(result, 2)

	resultIDs := make(map[kernel.OrderID]bool)
	for _, o := range result {
		resultIDs[o.ID()] = true
	}
	suite.True(resultIDs[unrouted1.ID()])
	suite.True(resultIDs[unrouted2.ID()])
	suite.False(resultIDs[routed.ID()])
	suite.False(resultIDs[cancelled.ID()])

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCustomer_ReturnsOnlyCustomerOrders() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.OrderID"), mock.Anything).Times(3)

	mine1 := suite.createTestOrder(order.TypeEcommerceDirect, "CUST-600")
	mine2 := suite.createTestOrder(order.TypeRetailPurchaseOrder, "CUST-600")
	other := suite.createTestOrder(order.TypeEcommerceDirect, "CUST-601")

	for _, o := range []*order.Order{mine1, mine2, other} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	result, err := suite.repository.GetAllByCustomer(ctx, "CUST-600")
	suite.Require().NoError(err)
	suite.Len(result, 2)
	for _, o := range result {
		suite.Equal("CUST-600", o.CustomerID())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCustomer_EmptyCustomerID_ReturnsError() {
	ctx := context.Background()

	result, err := suite.repository.GetAllByCustomer(ctx, "")
	suite.Nil(result)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

// TestOrderRepository_Concurrency verifies repository behavior under concurrent access.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_Concurrency() {
	ctx := context.Background()

	initialOrder := suite.createTestOrder(order.TypeEcommerceDirect, "CUST-700")
	suite.tracker.On("TrackAggregate", initialOrder.ID(), initialOrder).Once()
	err := suite.repository.Add(ctx, initialOrder)
	suite.Require().NoError(err)

	results := make(chan *order.Order, 3)
	errors := make(chan error, 3)

	for range 3 {
		go func() {
			retrievedOrder, readErr := suite.repository.Get(ctx, initialOrder.ID())
			if readErr != nil {
				errors <- readErr
			} else {
				results <- retrievedOrder
			}
		}()
	}

	for range 3 {
		select {
		case result := <-results:
			suite.Equal(initialOrder.ID(), result.ID())
		case readErr := <-errors:
			suite.Failf("Unexpected error in concurrent read", "%v", readErr)
		}
	}

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a basic test order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(orderType order.Type, customerID string) *order.Order {
	price, err := kernel.NewMoneyFromString("19.99")
	suite.Require().NoError(err)
	item, err := order.NewItem("SKU-001", "Widget", 2, price)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewOrderID(),
		customerID,
		orderType,
		order.SourceAPI,
		[]order.Item{item},
		order.Address{"street": "1 Main St", "city": "Springfield", "postal_code": "12345"},
		nil,
	)
	suite.Require().NoError(err)
	return testOrder
}

// createFoodOrder creates a food delivery order with a restaurant payload.
func (suite *OrderRepositoryIntegrationTestSuite) createFoodOrder(customerID string) *order.Order {
	price, err := kernel.NewMoneyFromString("12.50")
	suite.Require().NoError(err)
	item, err := order.NewItem("DISH-001", "Margherita", 1, price)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewOrderID(),
		customerID,
		order.TypeFoodDeliveryCustomer,
		order.SourceMobileApp,
		[]order.Item{item},
		order.Address{"street": "2 Oak Ave", "city": "Springfield", "postal_code": "12345"},
		&order.FoodDeliveryData{
			RestaurantID:   "REST-42",
			RestaurantName: "Trattoria Nonna",
			CustomerPhone:  "+15550100",
		},
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
