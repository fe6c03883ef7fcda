package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"pharmacy/internal/adapters/out/postgres/orderrepo"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
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
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

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

	testOrder := suite.createTestOrder(order.PaymentMethodCod)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertRowCount("orders", 1)
	suite.assertRowCount("order_items", 2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrip() {
	ctx := context.Background()

	original := suite.createTestOrder(order.PaymentMethodCod)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.True(original.CustomerID().IsEqual(retrieved.CustomerID()))
	suite.Equal(original.Shipping().FullName(), retrieved.Shipping().FullName())
	suite.Equal(original.Shipping().Phone(), retrieved.Shipping().Phone())
	suite.Equal(original.Shipping().Address(), retrieved.Shipping().Address())
	suite.Equal(order.PaymentMethodCod, retrieved.PaymentMethod())
	suite.Equal(order.StatusPlaced, retrieved.Status())
	suite.False(retrieved.IsPaid())
	suite.Nil(retrieved.FulfillerID())
	suite.Equal(1, retrieved.Version())
	suite.Len(retrieved.Items(), 2)
	suite.True(original.Total().IsEqual(retrieved.Total()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_IncrementsVersion() {
	ctx := context.Background()

	original := suite.createTestOrder(order.PaymentMethodCod)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	loaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Advance(kernel.RoleDelivery, order.StatusPacked))

	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusPacked, reloaded.Status())
	suite.Equal(2, reloaded.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConflict() {
	ctx := context.Background()

	original := suite.createTestOrder(order.PaymentMethodCod)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	first, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	// First writer wins
	suite.Require().NoError(first.Advance(kernel.RoleDelivery, order.StatusPacked))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// Second writer holds a stale version
	suite.Require().NoError(second.Cancel())
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)

	var conflictErr *errs.VersionConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	// The stale write must not have landed
	reloaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusPacked, reloaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByGatewayOrderID() {
	ctx := context.Background()

	original := suite.createTestOrder(order.PaymentMethodRazorpay)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	loaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.AttachGatewayOrder("order_rzp_42"))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	found, err := suite.repository.GetByGatewayOrderID(ctx, "order_rzp_42")
	suite.Require().NoError(err)
	suite.True(original.ID().IsEqual(found.ID()))
	suite.Equal("order_rzp_42", found.GatewayOrderID())

	missing, err := suite.repository.GetByGatewayOrderID(ctx, "order_rzp_unknown")
	suite.Nil(missing)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCustomer_NewestFirst() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	older := suite.restoreTestOrder(customerID, order.PaymentMethodCod, false,
		time.Now().UTC().Add(-2*time.Hour))
	newer := suite.restoreTestOrder(customerID, order.PaymentMethodCod, false,
		time.Now().UTC().Add(-1*time.Hour))
	other := suite.restoreTestOrder(kernel.NewUUID(), order.PaymentMethodCod, false,
		time.Now().UTC())

	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, newer))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	orders, err := suite.repository.GetAllByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.True(newer.ID().IsEqual(orders[0].ID()))
	suite.True(older.ID().IsEqual(orders[1].ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetUnpaidGatewayCreatedBefore() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-30 * time.Minute)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	stale := suite.restoreTestOrder(kernel.NewUUID(), order.PaymentMethodRazorpay, false,
		time.Now().UTC().Add(-1*time.Hour))
	paid := suite.restoreTestOrder(kernel.NewUUID(), order.PaymentMethodRazorpay, true,
		time.Now().UTC().Add(-1*time.Hour))
	fresh := suite.restoreTestOrder(kernel.NewUUID(), order.PaymentMethodRazorpay, false,
		time.Now().UTC())
	cod := suite.restoreTestOrder(kernel.NewUUID(), order.PaymentMethodCod, false,
		time.Now().UTC().Add(-1*time.Hour))

	suite.Require().NoError(suite.repository.Add(ctx, stale))
	suite.Require().NoError(suite.repository.Add(ctx, paid))
	suite.Require().NoError(suite.repository.Add(ctx, fresh))
	suite.Require().NoError(suite.repository.Add(ctx, cod))

	orders, err := suite.repository.GetUnpaidGatewayCreatedBefore(ctx, cutoff)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(stale.ID().IsEqual(orders[0].ID()))
}

// createTestOrder builds a freshly placed two-line order.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(method order.PaymentMethod) *order.Order {
	shipping, err := order.NewShippingInfo("Asha Rao", "+91 9000000001", "12 MG Road, Bengaluru")
	suite.Require().NoError(err)

	price, err := kernel.NewMoney(12550)
	suite.Require().NoError(err)

	first, err := order.NewItem(kernel.NewUUID(), 2, price)
	suite.Require().NoError(err)
	second, err := order.NewItem(kernel.NewUUID(), 1, price)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), shipping, method,
		[]order.Item{first, second})
	suite.Require().NoError(err)

	return testOrder
}

// restoreTestOrder builds a placed single-line order with a controlled
// creation time and paid flag.
func (suite *OrderRepositoryIntegrationTestSuite) restoreTestOrder(
	customerID kernel.UUID,
	method order.PaymentMethod,
	isPaid bool,
	createdAt time.Time,
) *order.Order {
	shipping, err := order.NewShippingInfo("Asha Rao", "+91 9000000001", "12 MG Road, Bengaluru")
	suite.Require().NoError(err)

	price, err := kernel.NewMoney(4999)
	suite.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), 1, price)
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(kernel.NewUUID(), customerID, shipping, method,
		order.StatusPlaced, isPaid, nil, "", "", "", createdAt, 1, []order.Item{item})
	suite.Require().NoError(err)

	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertRowCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
