package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mantoshmedhansh-dot/lma/cmd"
	httpadapter "github.com/mantoshmedhansh-dot/lma/internal/adapters/in/http"
	"github.com/mantoshmedhansh-dot/lma/internal/adapters/out/postgres/attemptrepo"
	"github.com/mantoshmedhansh-dot/lma/internal/adapters/out/postgres/fleetrepo"
	"github.com/mantoshmedhansh-dot/lma/internal/adapters/out/postgres/hubrepo"
	"github.com/mantoshmedhansh-dot/lma/internal/adapters/out/postgres/importrepo"
	"github.com/mantoshmedhansh-dot/lma/internal/adapters/out/postgres/orderrepo"
	"github.com/mantoshmedhansh-dot/lma/internal/adapters/out/postgres/otprepo"
	"github.com/mantoshmedhansh-dot/lma/internal/adapters/out/postgres/routerepo"
	"github.com/mantoshmedhansh-dot/lma/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustOpenDB(configs)
	mustMigrate(db)

	root := cmd.NewCompositionRoot(configs, db)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		root.CreateCompleteRouteCommandHandler(),
		root.StopUoWFactory(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	server := httpadapter.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateImportOrdersCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateReturnToHubCommandHandler(),
		root.CreateAutoPlanRoutesCommandHandler(),
		root.CreateCreateRouteCommandHandler(),
		root.CreateAssignRouteCommandHandler(),
		root.CreateDispatchRouteCommandHandler(),
		root.CreateDeleteRouteCommandHandler(),
		root.CreateArriveAtStopCommandHandler(),
		root.CreateCompleteStopCommandHandler(),
		root.CreateSendOtpCommandHandler(),
		root.CreateVerifyOtpCommandHandler(),
		root.CreateRecordAttemptCommandHandler(),
		root.CreateListOrdersQueryHandler(),
		root.CreateGetRouteDetailQueryHandler(),
		root.CreateGetImportBatchQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	return db
}

func mustMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&hubrepo.HubDTO{},
		&fleetrepo.VehicleDTO{},
		&fleetrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
		&routerepo.RouteDTO{},
		&routerepo.StopDTO{},
		&otprepo.TokenDTO{},
		&attemptrepo.AttemptDTO{},
		&importrepo.BatchDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
}
