package commands

import (
	"errors"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
)

var ErrCompleteRouteCommandIsNotConstructed = errors.New(
	"CompleteRouteCommand must be created via NewCompleteRouteCommand constructor",
)

// CompleteRouteCommand is a request to close out an in-progress route.
type CompleteRouteCommand struct {
	routeID kernel.UUID

	constructed bool
}

func NewCompleteRouteCommand(routeID kernel.UUID) (CompleteRouteCommand, error) {
	if err := routeID.Validate(); err != nil {
		return CompleteRouteCommand{}, err
	}
	return CompleteRouteCommand{routeID: routeID, constructed: true}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteRouteCommand) Validate() error {
	if !c.constructed {
		return ErrCompleteRouteCommandIsNotConstructed
	}
	return nil
}

func (c CompleteRouteCommand) RouteID() kernel.UUID { return c.routeID }
