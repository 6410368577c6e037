package commands

import (
	"errors"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
)

var ErrDeleteRouteCommandIsNotConstructed = errors.New(
	"DeleteRouteCommand must be created via NewDeleteRouteCommand constructor",
)

// DeleteRouteCommand is a request to dissolve a route that has not finished.
type DeleteRouteCommand struct {
	routeID kernel.UUID

	constructed bool
}

func NewDeleteRouteCommand(routeID kernel.UUID) (DeleteRouteCommand, error) {
	if err := routeID.Validate(); err != nil {
		return DeleteRouteCommand{}, err
	}
	return DeleteRouteCommand{routeID: routeID, constructed: true}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRouteCommand) Validate() error {
	if !c.constructed {
		return ErrDeleteRouteCommandIsNotConstructed
	}
	return nil
}

func (c DeleteRouteCommand) RouteID() kernel.UUID { return c.routeID }
