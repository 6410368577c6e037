package commands

import (
	"errors"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
)

var ErrDispatchRouteCommandIsNotConstructed = errors.New(
	"DispatchRouteCommand must be created via NewDispatchRouteCommand constructor",
)

// DispatchRouteCommand is a request to send an assigned route out for
// delivery.
type DispatchRouteCommand struct {
	routeID kernel.UUID

	constructed bool
}

func NewDispatchRouteCommand(routeID kernel.UUID) (DispatchRouteCommand, error) {
	if err := routeID.Validate(); err != nil {
		return DispatchRouteCommand{}, err
	}
	return DispatchRouteCommand{routeID: routeID, constructed: true}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchRouteCommand) Validate() error {
	if !c.constructed {
		return ErrDispatchRouteCommandIsNotConstructed
	}
	return nil
}

func (c DispatchRouteCommand) RouteID() kernel.UUID { return c.routeID }
