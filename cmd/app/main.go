package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"efood/cmd"
	httpadapter "efood/internal/adapters/in/http"
	"efood/internal/adapters/out/amqp"
	"efood/internal/adapters/out/postgres/driverrepo"
	"efood/internal/adapters/out/postgres/orderrepo"
	"efood/internal/adapters/out/postgres/outboxrepo"
	"efood/internal/adapters/out/postgres/restaurantrepo"
	_ "efood/internal/generated/docs"
	"efood/internal/generated/servers"
	"efood/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	publisher, err := amqp.NewPublisher(configs.AmqpURL)
	if err != nil {
		log.Fatalf("Failed to connect to the broker: %v", err)
	}
	defer publisher.Close()

	jobManager := jobs.NewJobManager(
		app.CreateOutboxRepository(),
		publisher,
		app.CreateEscalateStaleOrdersCommandHandler(),
		waitingOrderTTL(configs),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		AmqpURL:         goDotEnvVariable("AMQP_URL"),
		WaitingOrderTTL: goDotEnvVariable("WAITING_ORDER_TTL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&driverrepo.DriverDTO{},
		&restaurantrepo.RestaurantDTO{},
		&outboxrepo.OutboxMessageDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate the database: %v", err)
	}

	return gormDB
}

func waitingOrderTTL(configs cmd.Config) time.Duration {
	ttl, err := time.ParseDuration(configs.WaitingOrderTTL)
	if err != nil || ttl <= 0 {
		log.Fatalf("Invalid WAITING_ORDER_TTL: %q", configs.WaitingOrderTTL)
	}
	return ttl
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateApproveOrderCommandHandler(),
		app.CreateRejectOrderCommandHandler(),
		app.CreateAdvanceOrderStatusCommandHandler(),
		app.CreateAcceptOrderCommandHandler(),
		app.CreateIgnoreOrderCommandHandler(),
		app.CreateAdvanceDeliveryStatusCommandHandler(),
		app.CreateRateOrderCommandHandler(),
		app.CreateCreateDriverCommandHandler(),
		app.CreateSetDriverAvailabilityCommandHandler(),
		app.CreateGetAvailableOrdersQueryHandler(),
		app.CreateGetPendingApprovalOrdersQueryHandler(),
		app.CreateGetDriverOrdersQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
