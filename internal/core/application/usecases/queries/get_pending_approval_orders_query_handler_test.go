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

type GetPendingApprovalOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetPendingApprovalOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetPendingApprovalOrdersQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetPendingApprovalOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetPendingApprovalOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetPendingApprovalOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *GetPendingApprovalOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetPendingApprovalOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetPendingApprovalOrdersQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsOnlyGatedOrdersOldestFirst() {
	ctx := context.Background()
	now := time.Now()

	// Insert newer gated order first to prove ordering comes from the query.
	newerGated := restoreOrderInState(suite.T(), order.StatusPendingAdminApproval, true,
		order.DeliveryStatusWaiting, nil, now.Add(-5*time.Minute))
	olderGated := restoreOrderInState(suite.T(), order.StatusPendingAdminApproval, true,
		order.DeliveryStatusWaiting, nil, now.Add(-20*time.Minute))
	approved := restoreOrderInState(suite.T(), order.StatusPending, false,
		order.DeliveryStatusWaiting, nil, now.Add(-30*time.Minute))
	inPool := restorePoolOrder(suite.T(), now.Add(-40*time.Minute), nil)

	for _, o := range []*order.Order{newerGated, olderGated, approved, inPool} {
		suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	}

	result, err := suite.handler.Handle(ctx, queries.NewGetPendingApprovalOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(olderGated.ID(), result[0].ID)
	suite.Equal(newerGated.ID(), result[1].ID)
}

func (suite *GetPendingApprovalOrdersQueryHandlerTestSuite) TestHandle_MapsCustomerReference() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	withCustomer := restoreOrderInState(suite.T(), order.StatusPendingAdminApproval, true,
		order.DeliveryStatusWaiting, &customerID, time.Now().Add(-2*time.Minute))
	anonymous := restoreOrderInState(suite.T(), order.StatusPendingAdminApproval, true,
		order.DeliveryStatusWaiting, nil, time.Now().Add(-1*time.Minute))

	suite.Require().NoError(suite.orderRepo.Add(ctx, withCustomer))
	suite.Require().NoError(suite.orderRepo.Add(ctx, anonymous))

	result, err := suite.handler.Handle(ctx, queries.NewGetPendingApprovalOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Require().NotNil(result[0].CustomerID)
	suite.Equal(customerID, *result[0].CustomerID)
	suite.Nil(result[1].CustomerID)
}

func (suite *GetPendingApprovalOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetPendingApprovalOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetPendingApprovalOrdersQuery constructor")
}

func TestGetPendingApprovalOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPendingApprovalOrdersQueryHandlerTestSuite))
}
