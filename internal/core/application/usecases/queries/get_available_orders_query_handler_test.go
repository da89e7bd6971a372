package queries_test

import (
	"context"
	"testing"
	"time"

	"efood/internal/adapters/out/postgres/orderrepo"
	"efood/internal/core/application/usecases/queries"
	"efood/internal/core/domain/model/kernel"
	"efood/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for query tests, which never
// commit through a unit of work.
type mockAggregateTracker struct{}

func (t *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ interface{}) {}

type GetAvailableOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAvailableOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAvailableOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAvailableOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsOnlyPool() {
	ctx := context.Background()
	now := time.Now()

	// Orders at every lifecycle stage; only the two unclaimed delivering
	// orders belong to the marketplace pool.
	poolOrders := []*order.Order{
		restorePoolOrder(suite.T(), now.Add(-2*time.Minute), nil),
		restorePoolOrder(suite.T(), now.Add(-1*time.Minute), nil),
	}
	outOfPool := []*order.Order{
		restoreOrderInState(suite.T(), order.StatusPendingAdminApproval, true,
			order.DeliveryStatusWaiting, nil, now),
		restoreOrderInState(suite.T(), order.StatusPending, false,
			order.DeliveryStatusWaiting, nil, now),
		restoreOrderInState(suite.T(), order.StatusPreparing, false,
			order.DeliveryStatusWaiting, nil, now),
		restoreClaimedOrder(suite.T(), now),
		restoreCompletedOrder(suite.T(), now),
	}

	for _, o := range append(poolOrders, outOfPool...) {
		suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	}

	result, err := suite.handler.Handle(ctx, queries.NewGetAvailableOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	resultIDs := make(map[kernel.UUID]bool)
	for _, entry := range result {
		resultIDs[entry.ID] = true
	}
	for _, o := range poolOrders {
		suite.True(resultIDs[o.ID()], "Pool order %s should be in results", o.ID())
	}
	for _, o := range outOfPool {
		suite.False(resultIDs[o.ID()], "Order %s should not be in results", o.ID())
	}
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_PoolIsOrderedOldestFirst() {
	ctx := context.Background()
	now := time.Now()

	// Insert newest first to prove ordering comes from the query.
	newest := restorePoolOrder(suite.T(), now.Add(-1*time.Minute), nil)
	middle := restorePoolOrder(suite.T(), now.Add(-5*time.Minute), nil)
	oldest := restorePoolOrder(suite.T(), now.Add(-10*time.Minute), nil)

	for _, o := range []*order.Order{newest, middle, oldest} {
		suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	}

	result, err := suite.handler.Handle(ctx, queries.NewGetAvailableOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(oldest.ID(), result[0].ID)
	suite.Equal(middle.ID(), result[1].ID)
	suite.Equal(newest.ID(), result[2].ID)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_EscalatedOrderStaysInPool() {
	ctx := context.Background()
	now := time.Now()
	escalatedAt := now.Add(-1 * time.Minute)

	escalated := restorePoolOrder(suite.T(), now.Add(-30*time.Minute), &escalatedAt)
	suite.Require().NoError(suite.orderRepo.Add(ctx, escalated))

	result, err := suite.handler.Handle(ctx, queries.NewGetAvailableOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(escalated.ID(), result[0].ID)
	suite.Require().NotNil(result[0].EscalatedAt)
	suite.WithinDuration(escalatedAt, *result[0].EscalatedAt, time.Second)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_MapsPayoutAndDestination() {
	ctx := context.Background()

	poolOrder := restorePoolOrder(suite.T(), time.Now(), nil)
	suite.Require().NoError(suite.orderRepo.Add(ctx, poolOrder))

	result, err := suite.handler.Handle(ctx, queries.NewGetAvailableOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	entry := result[0]
	suite.Equal(poolOrder.RestaurantID(), entry.RestaurantID)
	suite.Equal(poolOrder.Address().Street(), entry.Street)
	suite.Equal(poolOrder.Address().Municipality(), entry.Municipality)
	suite.Equal(poolOrder.RevenueSplit().DeliveryAmount().String(), entry.DeliveryAmount.String())
	suite.Equal(poolOrder.Total().String(), entry.Total.String())
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAvailableOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAvailableOrdersQuery constructor")
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, queries.NewGetAvailableOrdersQuery())

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetAvailableOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAvailableOrdersQueryHandlerTestSuite))
}
