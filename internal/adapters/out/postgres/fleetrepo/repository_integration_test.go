package fleetrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/adapters/out/postgres/fleetrepo"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/fleet"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// VehicleRepositoryIntegrationTestSuite verifies the planner's vehicle
// selection queries against a real PostgreSQL instance.
type VehicleRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *fleetrepo.GormVehicleRepository
	plateSeq   int
}

func (suite *VehicleRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&fleetrepo.VehicleDTO{}))
}

func (suite *VehicleRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE hub_vehicles").Error)
	suite.repository = fleetrepo.NewGormVehicleRepository(suite.db)
}

func (suite *VehicleRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *VehicleRepositoryIntegrationTestSuite) nextPlate() string {
	suite.plateSeq++
	return fmt.Sprintf("KA-01-AB-%04d", suite.plateSeq)
}

func (suite *VehicleRepositoryIntegrationTestSuite) addVehicle(hubID kernel.UUID, active bool) *fleet.Vehicle {
	vehicle, err := fleet.RestoreVehicle(kernel.NewUUID(), hubID, "van", suite.nextPlate(),
		nil, nil, fleet.VehicleAvailable, nil, active)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), vehicle))
	return vehicle
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestGetActiveByIDs_ScopedToHubAndActiveFlag() {
	ctx := context.Background()
	hubID := kernel.NewUUID()

	wanted := suite.addVehicle(hubID, true)
	inactive := suite.addVehicle(hubID, false)
	foreign := suite.addVehicle(kernel.NewUUID(), true)

	vehicles, err := suite.repository.GetActiveByIDs(ctx, hubID,
		[]kernel.UUID{wanted.ID(), inactive.ID(), foreign.ID()})
	suite.Require().NoError(err)
	suite.Require().Len(vehicles, 1)
	suite.True(vehicles[0].ID().IsEqual(wanted.ID()))
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestGetActiveByIDs_OrderedByPlate() {
	ctx := context.Background()
	hubID := kernel.NewUUID()

	first := suite.addVehicle(hubID, true)
	second := suite.addVehicle(hubID, true)

	// Request in reverse, expect plate order back.
	vehicles, err := suite.repository.GetActiveByIDs(ctx, hubID,
		[]kernel.UUID{second.ID(), first.ID()})
	suite.Require().NoError(err)
	suite.Require().Len(vehicles, 2)
	suite.Equal(first.PlateNumber(), vehicles[0].PlateNumber())
	suite.Equal(second.PlateNumber(), vehicles[1].PlateNumber())
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestGetAvailableByHub_SkipsBusyAndInactive() {
	ctx := context.Background()
	hubID := kernel.NewUUID()

	available := suite.addVehicle(hubID, true)
	suite.addVehicle(hubID, false)

	busy, err := fleet.RestoreVehicle(kernel.NewUUID(), hubID, "van", suite.nextPlate(),
		nil, nil, fleet.VehicleOnRoute, nil, true)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, busy))

	vehicles, err := suite.repository.GetAvailableByHub(ctx, hubID)
	suite.Require().NoError(err)
	suite.Require().Len(vehicles, 1)
	suite.True(vehicles[0].ID().IsEqual(available.ID()))
}

func TestVehicleRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(VehicleRepositoryIntegrationTestSuite))
}
