package queries_test

import (
	"context"
	"testing"
	"time"

	"pharmacy/internal/adapters/out/postgres/medicinerepo"
	"pharmacy/internal/adapters/out/postgres/orderrepo"
	"pharmacy/internal/adapters/out/session"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/model/cart"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/medicine"
	"pharmacy/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ interface{}) {}

// QueryHandlersIntegrationTestSuite exercises the read side against a
// PostgreSQL container, seeding data through the write-side repositories.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container    *tcpostgres.PostgresContainer
	db           *gorm.DB
	medicineRepo *medicinerepo.GormMedicineRepository
	orderRepo    *orderrepo.GormOrderRepository
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&medicinerepo.MedicineDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	suite.Require().NoError(err)

	suite.medicineRepo = medicinerepo.NewGormMedicineRepository(db, &mockAggregateTracker{})
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE medicines, orders, order_items CASCADE").Error)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetActiveMedicines_FiltersAndOrders() {
	ctx := context.Background()

	suite.seedMedicine("Paracetamol 500mg", "Cipla", 40, true)
	suite.seedMedicine("Cetirizine 10mg", "Dr. Reddy's", 0, true)
	suite.seedMedicine("Aspirin 75mg", "Bayer", 10, false)

	handler := queries.NewGetActiveMedicinesQueryHandler(suite.db)

	// Inactive medicines never appear; ordering is by name
	all, err := handler.Handle(ctx, queries.NewGetActiveMedicinesQuery("", false))
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal("Cetirizine 10mg", all[0].Name)
	suite.Equal("Paracetamol 500mg", all[1].Name)

	// inStockOnly drops the zero-stock row
	inStock, err := handler.Handle(ctx, queries.NewGetActiveMedicinesQuery("", true))
	suite.Require().NoError(err)
	suite.Require().Len(inStock, 1)
	suite.Equal("Paracetamol 500mg", inStock[0].Name)

	// Search matches name or brand, case-insensitively
	byBrand, err := handler.Handle(ctx, queries.NewGetActiveMedicinesQuery("cipla", false))
	suite.Require().NoError(err)
	suite.Require().Len(byBrand, 1)
	suite.Equal("Paracetamol 500mg", byBrand[0].Name)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetCustomerOrders_NewestFirstWithItems() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	med := suite.seedMedicine("Paracetamol 500mg", "Cipla", 40, true)

	older := suite.seedOrder(customerID, nil, med.ID(), order.StatusPlaced,
		time.Now().UTC().Add(-2*time.Hour))
	newer := suite.seedOrder(customerID, nil, med.ID(), order.StatusPacked,
		time.Now().UTC().Add(-1*time.Hour))
	suite.seedOrder(kernel.NewUUID(), nil, med.ID(), order.StatusPlaced, time.Now().UTC())

	handler := queries.NewGetCustomerOrdersQueryHandler(suite.db)
	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	suite.Require().NoError(err)

	orders, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)

	suite.Equal(newer.ID(), orders[0].ID)
	suite.Equal("Packed", orders[0].Status)
	suite.Equal(older.ID(), orders[1].ID)
	suite.Equal("Placed", orders[1].Status)

	suite.Require().Len(orders[0].Items, 1)
	suite.Equal("Paracetamol 500mg", orders[0].Items[0].MedicineName)
	suite.Equal(int64(4999), orders[0].Items[0].PriceMinor)
	suite.Equal(int64(4999*2), orders[0].TotalMinor)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetAssignedOrders_OnlyAssignee() {
	ctx := context.Background()
	fulfillerID := kernel.NewUUID()

	med := suite.seedMedicine("Paracetamol 500mg", "Cipla", 40, true)
	assigned := suite.seedOrder(kernel.NewUUID(), &fulfillerID, med.ID(),
		order.StatusPacked, time.Now().UTC())
	suite.seedOrder(kernel.NewUUID(), nil, med.ID(), order.StatusPlaced, time.Now().UTC())

	handler := queries.NewGetAssignedOrdersQueryHandler(suite.db)
	query, err := queries.NewGetAssignedOrdersQuery(fulfillerID)
	suite.Require().NoError(err)

	orders, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(assigned.ID(), orders[0].ID)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetDashboardStats_CountsPipeline() {
	ctx := context.Background()

	med := suite.seedMedicine("Paracetamol 500mg", "Cipla", 40, true)
	suite.seedOrder(kernel.NewUUID(), nil, med.ID(), order.StatusDelivered, time.Now().UTC())
	suite.seedOrder(kernel.NewUUID(), nil, med.ID(), order.StatusCancelled, time.Now().UTC())
	suite.seedOrder(kernel.NewUUID(), nil, med.ID(), order.StatusPlaced, time.Now().UTC())
	suite.seedOrder(kernel.NewUUID(), nil, med.ID(), order.StatusShipped, time.Now().UTC())

	handler := queries.NewGetDashboardStatsQueryHandler(suite.db)

	stats, err := handler.Handle(ctx, queries.NewGetDashboardStatsQuery())
	suite.Require().NoError(err)
	suite.Equal(int64(4), stats.TotalOrders)
	suite.Equal(int64(1), stats.DeliveredOrders)
	suite.Equal(int64(1), stats.CancelledOrders)
	suite.Equal(int64(2), stats.PendingOrders)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetCart_ResolvesLivePricesAndDropsInactive() {
	ctx := context.Background()

	active := suite.seedMedicine("Paracetamol 500mg", "Cipla", 40, true)
	retired := suite.seedMedicine("Aspirin 75mg", "Bayer", 10, false)

	cartStore := session.NewInMemoryCartStore()
	c := cart.NewCart()
	_, err := c.Change(active, 3)
	suite.Require().NoError(err)
	// The retired medicine was added while still active
	c2 := cart.RestoreCart(append(c.Entries(), cart.Entry{MedicineID: retired.ID(), Quantity: 1}))
	suite.Require().NoError(cartStore.Put(ctx, "session-1", c2))

	handler := queries.NewGetCartQueryHandler(cartStore, suite.db)
	query, err := queries.NewGetCartQuery("session-1")
	suite.Require().NoError(err)

	view, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(view.Lines, 1)
	suite.Equal(active.ID(), view.Lines[0].MedicineID)
	suite.Equal("Paracetamol 500mg", view.Lines[0].MedicineName)
	suite.Equal(int64(4999), view.Lines[0].PriceMinor)
	suite.Equal(3, view.Lines[0].Quantity)
	suite.Equal(int64(4999*3), view.Lines[0].SubtotalMinor)
	suite.Equal(int64(4999*3), view.TotalMinor)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetCart_UnknownSessionIsEmpty() {
	ctx := context.Background()

	handler := queries.NewGetCartQueryHandler(session.NewInMemoryCartStore(), suite.db)
	query, err := queries.NewGetCartQuery("session-unknown")
	suite.Require().NoError(err)

	view, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(view.Lines)
	suite.Equal(int64(0), view.TotalMinor)
}

// seedMedicine persists a medicine priced at 4999 minor units.
func (suite *QueryHandlersIntegrationTestSuite) seedMedicine(name, brand string, stock int, isActive bool) *medicine.Medicine {
	price, err := kernel.NewMoney(4999)
	suite.Require().NoError(err)

	med, err := medicine.RestoreMedicine(kernel.NewUUID(), name, brand, price, stock, "", isActive)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.medicineRepo.Add(context.Background(), med))

	return med
}

// seedOrder persists a cod order with a two-unit line for the medicine.
func (suite *QueryHandlersIntegrationTestSuite) seedOrder(
	customerID kernel.UUID,
	fulfillerID *kernel.UUID,
	medicineID kernel.UUID,
	status order.Status,
	createdAt time.Time,
) *order.Order {
	shipping, err := order.NewShippingInfo("Asha Rao", "+91 9000000001", "12 MG Road, Bengaluru")
	suite.Require().NoError(err)

	price, err := kernel.NewMoney(4999)
	suite.Require().NoError(err)

	item, err := order.NewItem(medicineID, 2, price)
	suite.Require().NoError(err)

	aggregate, err := order.RestoreOrder(kernel.NewUUID(), customerID, shipping,
		order.PaymentMethodCod, status, false, fulfillerID, "", "", "",
		createdAt, 1, []order.Item{item})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))

	return aggregate
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
