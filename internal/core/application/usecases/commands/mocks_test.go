package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mantoshmedhansh-dot/lma/internal/core/application/usecases/commands"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/attempt"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/fleet"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/hub"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/imports"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/order"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/otp"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/route"
	"github.com/mantoshmedhansh-dot/lma/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetPendingUnrouted(ctx context.Context, hubID kernel.UUID, scheduledDate *time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, hubID, scheduledDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByRoute(ctx context.Context, routeID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) ClaimForRoute(ctx context.Context, orderID, routeID kernel.UUID) error {
	return m.Called(ctx, orderID, routeID).Error(0)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockRouteRepository) Update(ctx context.Context, r *route.Route) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}
func (m *MockRouteRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockRouteRepository) CountForDate(ctx context.Context, hubID kernel.UUID, date time.Time) (int, error) {
	args := m.Called(ctx, hubID, date)
	return args.Int(0), args.Error(1)
}
func (m *MockRouteRepository) GetAllInProgress(ctx context.Context) ([]*route.Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*route.Route), args.Error(1)
}
func (m *MockRouteRepository) AddStops(ctx context.Context, stops []*route.Stop) error {
	return m.Called(ctx, stops).Error(0)
}
func (m *MockRouteRepository) UpdateStop(ctx context.Context, stop *route.Stop) error {
	return m.Called(ctx, stop).Error(0)
}
func (m *MockRouteRepository) GetStops(ctx context.Context, routeID kernel.UUID) ([]*route.Stop, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*route.Stop), args.Error(1)
}
func (m *MockRouteRepository) GetStop(ctx context.Context, id kernel.UUID) (*route.Stop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Stop), args.Error(1)
}
func (m *MockRouteRepository) GetStopByOrder(ctx context.Context, routeID, orderID kernel.UUID) (*route.Stop, error) {
	args := m.Called(ctx, routeID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Stop), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *fleet.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}
func (m *MockVehicleRepository) Update(ctx context.Context, v *fleet.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}
func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Vehicle), args.Error(1)
}
func (m *MockVehicleRepository) GetAvailableByHub(ctx context.Context, hubID kernel.UUID) ([]*fleet.Vehicle, error) {
	args := m.Called(ctx, hubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*fleet.Vehicle), args.Error(1)
}
func (m *MockVehicleRepository) GetActiveByIDs(ctx context.Context, hubID kernel.UUID, ids []kernel.UUID) ([]*fleet.Vehicle, error) {
	args := m.Called(ctx, hubID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*fleet.Vehicle), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *fleet.Driver) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDriverRepository) Update(ctx context.Context, d *fleet.Driver) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Driver), args.Error(1)
}

type MockHubRepository struct{ mock.Mock }

func (m *MockHubRepository) Add(ctx context.Context, h *hub.Hub) error {
	return m.Called(ctx, h).Error(0)
}
func (m *MockHubRepository) Get(ctx context.Context, id kernel.UUID) (*hub.Hub, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hub.Hub), args.Error(1)
}

type MockOtpRepository struct{ mock.Mock }

func (m *MockOtpRepository) Add(ctx context.Context, token *otp.Token) error {
	return m.Called(ctx, token).Error(0)
}
func (m *MockOtpRepository) Update(ctx context.Context, token *otp.Token) error {
	return m.Called(ctx, token).Error(0)
}
func (m *MockOtpRepository) GetActiveByOrder(ctx context.Context, orderID kernel.UUID, tokenType otp.TokenType) (*otp.Token, error) {
	args := m.Called(ctx, orderID, tokenType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*otp.Token), args.Error(1)
}
func (m *MockOtpRepository) InvalidateActiveByOrder(ctx context.Context, orderID kernel.UUID, tokenType otp.TokenType) error {
	return m.Called(ctx, orderID, tokenType).Error(0)
}

type MockAttemptRepository struct{ mock.Mock }

func (m *MockAttemptRepository) Add(ctx context.Context, a *attempt.Attempt) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockAttemptRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*attempt.Attempt, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*attempt.Attempt), args.Error(1)
}
func (m *MockAttemptRepository) LastAttemptNumber(ctx context.Context, orderID kernel.UUID) (int, error) {
	args := m.Called(ctx, orderID)
	return args.Int(0), args.Error(1)
}

type MockImportRepository struct{ mock.Mock }

func (m *MockImportRepository) Add(ctx context.Context, b *imports.Batch) error {
	return m.Called(ctx, b).Error(0)
}
func (m *MockImportRepository) Update(ctx context.Context, b *imports.Batch) error {
	return m.Called(ctx, b).Error(0)
}
func (m *MockImportRepository) Get(ctx context.Context, id kernel.UUID) (*imports.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*imports.Batch), args.Error(1)
}

// MockUnitOfWork satisfies every narrow unit-of-work interface in this
// package. Tests wire only the repositories their handler touches.
type MockUnitOfWork struct {
	mock.Mock

	Orders   *MockOrderRepository
	Routes   *MockRouteRepository
	Vehicles *MockVehicleRepository
	Drivers  *MockDriverRepository
	Hubs     *MockHubRepository
	Otps     *MockOtpRepository
	Attempts *MockAttemptRepository
	Imports  *MockImportRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	uow := &MockUnitOfWork{
		Orders:   new(MockOrderRepository),
		Routes:   new(MockRouteRepository),
		Vehicles: new(MockVehicleRepository),
		Drivers:  new(MockDriverRepository),
		Hubs:     new(MockHubRepository),
		Otps:     new(MockOtpRepository),
		Attempts: new(MockAttemptRepository),
		Imports:  new(MockImportRepository),
	}
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	return uow
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUnitOfWork) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUnitOfWork) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository     { return m.Orders }
func (m *MockUnitOfWork) RouteRepository() ports.RouteRepository     { return m.Routes }
func (m *MockUnitOfWork) VehicleRepository() ports.VehicleRepository { return m.Vehicles }
func (m *MockUnitOfWork) DriverRepository() ports.DriverRepository   { return m.Drivers }
func (m *MockUnitOfWork) HubRepository() ports.HubRepository         { return m.Hubs }
func (m *MockUnitOfWork) OtpRepository() ports.OtpRepository         { return m.Otps }
func (m *MockUnitOfWork) AttemptRepository() ports.AttemptRepository { return m.Attempts }
func (m *MockUnitOfWork) ImportRepository() ports.ImportRepository   { return m.Imports }

// Per-family factory adapters returning the shared mock.
type orderUoWFactory struct{ uow *MockUnitOfWork }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type importUoWFactory struct{ uow *MockUnitOfWork }

func (f importUoWFactory) Create() commands.ImportUoW { return f.uow }

type planningUoWFactory struct{ uow *MockUnitOfWork }

func (f planningUoWFactory) Create() commands.PlanningUoW { return f.uow }

type routeUoWFactory struct{ uow *MockUnitOfWork }

func (f routeUoWFactory) Create() commands.RouteUoW { return f.uow }

type stopUoWFactory struct{ uow *MockUnitOfWork }

func (f stopUoWFactory) Create() commands.StopUoW { return f.uow }

type otpUoWFactory struct{ uow *MockUnitOfWork }

func (f otpUoWFactory) Create() commands.OtpUoW { return f.uow }

type deliveryUoWFactory struct{ uow *MockUnitOfWork }

func (f deliveryUoWFactory) Create() commands.DeliveryUoW { return f.uow }

// Aggregate fixtures.

func floatPtr(v float64) *float64 { return &v }

func testDetails() order.Details {
	return order.Details{
		CustomerName:       "Asha Rao",
		CustomerPhone:      "+919900112233",
		AddressLine:        "12 MG Road",
		City:               "Bengaluru",
		PostalCode:         "560001",
		ProductDescription: "Books",
		PackageCount:       1,
	}
}

func testPendingOrder(t *testing.T, hubID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), hubID, order.NewOrderNumber(),
		order.SourceAPI, testDetails(), order.Payment{}, order.PriorityNormal,
		nil, "", time.Now().UTC())
	require.NoError(t, err)
	return o
}

func testOutForDeliveryOrder(t *testing.T, hubID, routeID, driverID kernel.UUID) *order.Order {
	t.Helper()
	o := testPendingOrder(t, hubID)
	now := time.Now().UTC()
	require.NoError(t, o.Assign(routeID, driverID, now))
	require.NoError(t, o.MarkOutForDelivery(now))
	return o
}

func testAssignedRoute(t *testing.T, hubID, driverID, vehicleID kernel.UUID) *route.Route {
	t.Helper()
	now := time.Now().UTC()
	r, err := route.NewRoute(kernel.NewUUID(), hubID,
		route.NewRouteName("BLR", 1, now), &vehicleID, now, now)
	require.NoError(t, err)
	require.NoError(t, r.Assign(driverID, vehicleID))
	return r
}

func testHub(t *testing.T) *hub.Hub {
	t.Helper()
	h, err := hub.NewHub(kernel.NewUUID(), "Bengaluru Central", "BLR", "Bengaluru", "560001")
	require.NoError(t, err)
	return h
}

func testVehicle(t *testing.T, hubID kernel.UUID, capacityKG *float64) *fleet.Vehicle {
	t.Helper()
	v, err := fleet.NewVehicle(kernel.NewUUID(), hubID, "van", "KA-01-AB-1234", capacityKG, nil)
	require.NoError(t, err)
	return v
}

func testDriver(t *testing.T, hubID kernel.UUID) *fleet.Driver {
	t.Helper()
	d, err := fleet.NewDriver(kernel.NewUUID(), hubID, "Ravi Kumar", "+919911223344")
	require.NoError(t, err)
	return d
}
