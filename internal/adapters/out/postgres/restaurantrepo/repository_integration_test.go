package restaurantrepo_test

import (
	"context"
	"testing"
	"time"

	"efood/internal/adapters/out/postgres/restaurantrepo"
	"efood/internal/core/domain/model/kernel"
	"efood/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type RestaurantRepositoryIntegrationTestSuite struct {
	suite.Suite
	container            *postgres.PostgresContainer
	db                   *gorm.DB
	restaurantRepository *restaurantrepo.GormRestaurantRepository
}

func (suite *RestaurantRepositoryIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&restaurantrepo.RestaurantDTO{})
	suite.Require().NoError(err)

	suite.restaurantRepository = restaurantrepo.NewGormRestaurantRepository(db)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *RestaurantRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE restaurants").Error
	suite.Require().NoError(err)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestExists_RegisteredRestaurant() {
	ctx := context.Background()
	restaurantID := kernel.NewUUID()

	err := suite.db.Create(&restaurantrepo.RestaurantDTO{
		ID:        restaurantID.Bytes(),
		Name:      "Paladar Dona Mercedes",
		CreatedAt: time.Now(),
	}).Error
	suite.Require().NoError(err)

	exists, err := suite.restaurantRepository.Exists(ctx, restaurantID)

	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestExists_UnknownRestaurant() {
	exists, err := suite.restaurantRepository.Exists(context.Background(), kernel.NewUUID())

	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestExists_InvalidID() {
	var zero kernel.UUID

	exists, err := suite.restaurantRepository.Exists(context.Background(), zero)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsRequired)
	suite.False(exists)
}

func TestRestaurantRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RestaurantRepositoryIntegrationTestSuite))
}
