package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"efood/internal/adapters/out/postgres/orderrepo"
	"efood/internal/core/domain/model/kernel"
	"efood/internal/core/domain/model/order"
	"efood/internal/pkg/errs"

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

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers, including the conditional
// updates that settle contested transitions.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	orderRepository *orderrepo.GormOrderRepository
	tracker         *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.orderRepository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createCardOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.orderRepository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAggregate() {
	ctx := context.Background()

	original := suite.createCardOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.orderRepository.Add(ctx, original))

	retrieved, err := suite.orderRepository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.RestaurantID(), retrieved.RestaurantID())
	suite.Equal(original.Status(), retrieved.Status())
	suite.Equal(original.DeliveryStatus(), retrieved.DeliveryStatus())
	suite.Equal("40.00", retrieved.Subtotal().String())
	suite.Equal("5.00", retrieved.DeliveryFee().String())
	suite.Equal("45.00", retrieved.Total().String())
	suite.Equal("38.00", retrieved.RevenueSplit().RestaurantAmount().String())
	suite.Equal("2.00", retrieved.RevenueSplit().PlatformFee().String())
	suite.Require().Len(retrieved.Items(), len(original.Items()))
	suite.Equal(original.Items()[0].Name(), retrieved.Items()[0].Name())
	suite.Equal(original.Items()[0].Quantity(), retrieved.Items()[0].Quantity())
	suite.Equal(original.Address().Street(), retrieved.Address().Street())
	suite.Equal(original.Payment().Method(), retrieved.Payment().Method())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.orderRepository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateGuarded_RowMoved_ReturnsAlreadyProcessed() {
	ctx := context.Background()

	// Persist a pool order, then simulate another writer moving it on.
	poolOrder := suite.createPoolOrder(time.Now())
	suite.tracker.On("TrackAggregate", poolOrder.ID(), poolOrder).Once()
	suite.Require().NoError(suite.orderRepository.Add(ctx, poolOrder))

	suite.Require().NoError(suite.db.Exec(
		"UPDATE orders SET delivery_status = ? WHERE id = ?",
		order.DeliveryStatusAccepted.String(), poolOrder.ID().Bytes(),
	).Error)

	err := suite.orderRepository.UpdateGuarded(
		ctx, poolOrder, order.StatusDelivering, order.DeliveryStatusWaiting,
	)
	suite.Require().Error(err)

	var processedErr *errs.AlreadyProcessedError
	suite.Require().ErrorAs(err, &processedErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAssignDriver_PoolOrder_ClaimsAtomically() {
	ctx := context.Background()

	poolOrder := suite.createPoolOrder(time.Now())
	suite.tracker.On("TrackAggregate", poolOrder.ID(), poolOrder).Once()
	suite.Require().NoError(suite.orderRepository.Add(ctx, poolOrder))

	driverID := kernel.NewUUID()
	acceptedAt := time.Now()
	err := suite.orderRepository.AssignDriver(ctx, poolOrder.ID(), driverID, acceptedAt)
	suite.Require().NoError(err)

	claimed, err := suite.orderRepository.Get(ctx, poolOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(claimed.DriverID())
	suite.Equal(driverID, *claimed.DriverID())
	suite.Equal(order.DeliveryStatusAccepted, claimed.DeliveryStatus())
	suite.Require().NotNil(claimed.DeliveryAcceptedAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAssignDriver_ClaimedOrder_ReturnsAlreadyAssigned() {
	ctx := context.Background()

	poolOrder := suite.createPoolOrder(time.Now())
	suite.tracker.On("TrackAggregate", poolOrder.ID(), poolOrder).Once()
	suite.Require().NoError(suite.orderRepository.Add(ctx, poolOrder))

	firstDriver := kernel.NewUUID()
	suite.Require().NoError(suite.orderRepository.AssignDriver(ctx, poolOrder.ID(), firstDriver, time.Now()))

	err := suite.orderRepository.AssignDriver(ctx, poolOrder.ID(), kernel.NewUUID(), time.Now())
	suite.Require().Error(err)

	var assignedErr *errs.AlreadyAssignedError
	suite.Require().ErrorAs(err, &assignedErr)

	// The first claim is untouched.
	claimed, err := suite.orderRepository.Get(ctx, poolOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(firstDriver, *claimed.DriverID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAssignDriver_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.orderRepository.AssignDriver(ctx, kernel.NewUUID(), kernel.NewUUID(), time.Now())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAssignDriver_ConcurrentClaims_ExactlyOneWinner() {
	ctx := context.Background()

	poolOrder := suite.createPoolOrder(time.Now())
	suite.tracker.On("TrackAggregate", poolOrder.ID(), poolOrder).Once()
	suite.Require().NoError(suite.orderRepository.Add(ctx, poolOrder))

	const claimants = 8
	results := make(chan error, claimants)
	winners := make(chan kernel.UUID, claimants)

	var wg sync.WaitGroup
	for range claimants {
		wg.Add(1)
		go func() {
			defer wg.Done()
			driverID := kernel.NewUUID()
			err := suite.orderRepository.AssignDriver(ctx, poolOrder.ID(), driverID, time.Now())
			if err == nil {
				winners <- driverID
			}
			results <- err
		}()
	}
	wg.Wait()
	close(results)
	close(winners)

	var wins, losses int
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		var assignedErr *errs.AlreadyAssignedError
		suite.Require().ErrorAs(err, &assignedErr)
		losses++
	}
	suite.Equal(1, wins, "exactly one driver must win the claim")
	suite.Equal(claimants-1, losses)

	// The persisted driver is the winner's.
	winnerID := <-winners
	claimed, err := suite.orderRepository.Get(ctx, poolOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(winnerID, *claimed.DriverID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetWaitingSince_FiltersPoolByAgeAndEscalation() {
	ctx := context.Background()

	now := time.Now()
	staleOrder := suite.createPoolOrder(now.Add(-20 * time.Minute))
	freshOrder := suite.createPoolOrder(now.Add(-1 * time.Minute))
	claimedOrder := suite.createPoolOrder(now.Add(-30 * time.Minute))

	for _, aggregate := range []*order.Order{staleOrder, freshOrder, claimedOrder} {
		suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
		suite.Require().NoError(suite.orderRepository.Add(ctx, aggregate))
	}
	suite.Require().NoError(suite.orderRepository.AssignDriver(ctx, claimedOrder.ID(), kernel.NewUUID(), now))

	waiting, err := suite.orderRepository.GetWaitingSince(ctx, now.Add(-10*time.Minute))
	suite.Require().NoError(err)

	suite.Require().Len(waiting, 1)
	suite.Equal(staleOrder.ID(), waiting[0].ID())

	// Escalated orders are not reported again.
	suite.Require().NoError(waiting[0].Escalate(now))
	waiting[0].ClearDomainEvents()
	suite.tracker.On("TrackAggregate", waiting[0].ID(), waiting[0]).Once()
	suite.Require().NoError(suite.orderRepository.UpdateGuarded(
		ctx, waiting[0], order.StatusDelivering, order.DeliveryStatusWaiting,
	))

	waiting, err = suite.orderRepository.GetWaitingSince(ctx, now.Add(-10*time.Minute))
	suite.Require().NoError(err)
	suite.Empty(waiting)

	suite.tracker.AssertExpectations(suite.T())
}

// createCardOrder creates a card-paid order fresh from checkout.
func (suite *OrderRepositoryIntegrationTestSuite) createCardOrder() *order.Order {
	items := suite.createTestItems()
	address := suite.createTestAddress()

	payment, err := order.NewPaymentInfo(order.PaymentMethodCard, "visa", "****4242")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), nil, kernel.NewUUID(),
		items, address, payment,
		suite.money("40.00"), suite.money("5.00"), suite.money("45.00"),
		order.NewRevenueSplit(suite.money("38.00"), suite.money("5.00"), suite.money("2.00")),
		time.Now(),
	)
	suite.Require().NoError(err)
	testOrder.ClearDomainEvents()

	return testOrder
}

// createPoolOrder restores an order sitting in the marketplace pool:
// delivering, waiting, unclaimed.
func (suite *OrderRepositoryIntegrationTestSuite) createPoolOrder(createdAt time.Time) *order.Order {
	payment, err := order.NewPaymentInfo(order.PaymentMethodCard, "", "")
	suite.Require().NoError(err)

	poolOrder, err := order.RestoreOrder(
		kernel.NewUUID(), nil, kernel.NewUUID(), nil,
		suite.createTestItems(), suite.createTestAddress(), payment,
		suite.money("40.00"), suite.money("5.00"), suite.money("45.00"),
		order.NewRevenueSplit(suite.money("38.00"), suite.money("5.00"), suite.money("2.00")),
		order.StatusDelivering, false, order.DeliveryStatusWaiting,
		order.Timestamps{CreatedAt: createdAt},
		nil, "", nil,
	)
	suite.Require().NoError(err)

	return poolOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestItems() []order.Item {
	item, err := order.NewItem("Bandeja de pollo", suite.money("20.00"), 2)
	suite.Require().NoError(err)
	return []order.Item{item}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestAddress() order.Address {
	address, err := order.NewAddress(
		"Calle 23", "456", "", "Vedado", "Plaza", "La Habana", "",
	)
	suite.Require().NoError(err)
	return address
}

func (suite *OrderRepositoryIntegrationTestSuite) money(amount string) kernel.Money {
	m, err := kernel.NewMoneyFromString(amount)
	suite.Require().NoError(err)
	return m
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
