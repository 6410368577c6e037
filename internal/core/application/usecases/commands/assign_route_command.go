package commands

import (
	"errors"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
)

var ErrAssignRouteCommandIsNotConstructed = errors.New(
	"AssignRouteCommand must be created via NewAssignRouteCommand constructor",
)

// AssignRouteCommand is a request to put a driver and vehicle on a route.
type AssignRouteCommand struct {
	routeID   kernel.UUID
	driverID  kernel.UUID
	vehicleID kernel.UUID

	constructed bool
}

func NewAssignRouteCommand(routeID, driverID, vehicleID kernel.UUID) (AssignRouteCommand, error) {
	if err := routeID.Validate(); err != nil {
		return AssignRouteCommand{}, err
	}
	if err := driverID.Validate(); err != nil {
		return AssignRouteCommand{}, err
	}
	if err := vehicleID.Validate(); err != nil {
		return AssignRouteCommand{}, err
	}

	return AssignRouteCommand{
		routeID:     routeID,
		driverID:    driverID,
		vehicleID:   vehicleID,
		constructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRouteCommand) Validate() error {
	if !c.constructed {
		return ErrAssignRouteCommandIsNotConstructed
	}
	return nil
}

func (c AssignRouteCommand) RouteID() kernel.UUID   { return c.routeID }
func (c AssignRouteCommand) DriverID() kernel.UUID  { return c.driverID }
func (c AssignRouteCommand) VehicleID() kernel.UUID { return c.vehicleID }
