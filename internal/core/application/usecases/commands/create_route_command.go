package commands

import (
	"errors"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// CreateRouteCommand is a request to hand-build a route from explicit
// orders. An empty name gets a generated one with a random suffix; the
// driver arrives later through AssignRoute.
type CreateRouteCommand struct {
	hubID     kernel.UUID
	name      string
	vehicleID *kernel.UUID
	routeDate time.Time
	orderIDs  []kernel.UUID

	constructed bool
}

func NewCreateRouteCommand(
	hubID kernel.UUID,
	name string,
	vehicleID *kernel.UUID,
	routeDate time.Time,
	orderIDs []kernel.UUID,
) (CreateRouteCommand, error) {
	if err := hubID.Validate(); err != nil {
		return CreateRouteCommand{}, err
	}
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return CreateRouteCommand{}, err
		}
	}
	if routeDate.IsZero() {
		return CreateRouteCommand{}, errs.NewValueIsRequiredError("route_date")
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return CreateRouteCommand{}, err
		}
	}

	return CreateRouteCommand{
		hubID:       hubID,
		name:        name,
		vehicleID:   vehicleID,
		routeDate:   routeDate,
		orderIDs:    orderIDs,
		constructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	if !c.constructed {
		return ErrCreateRouteCommandIsNotConstructed
	}
	return nil
}

func (c CreateRouteCommand) HubID() kernel.UUID      { return c.hubID }
func (c CreateRouteCommand) Name() string            { return c.name }
func (c CreateRouteCommand) VehicleID() *kernel.UUID { return c.vehicleID }
func (c CreateRouteCommand) RouteDate() time.Time    { return c.routeDate }
func (c CreateRouteCommand) OrderIDs() []kernel.UUID { return c.orderIDs }
