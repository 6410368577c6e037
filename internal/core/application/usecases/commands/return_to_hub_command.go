package commands

import (
	"errors"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
)

var ErrReturnToHubCommandIsNotConstructed = errors.New(
	"ReturnToHubCommand must be created via NewReturnToHubCommand constructor",
)

// ReturnToHubCommand marks a failed order as physically back at the hub.
type ReturnToHubCommand struct {
	orderID kernel.UUID

	constructed bool
}

func NewReturnToHubCommand(orderID kernel.UUID) (ReturnToHubCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ReturnToHubCommand{}, err
	}
	return ReturnToHubCommand{orderID: orderID, constructed: true}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnToHubCommand) Validate() error {
	if !c.constructed {
		return ErrReturnToHubCommandIsNotConstructed
	}
	return nil
}

func (c ReturnToHubCommand) OrderID() kernel.UUID { return c.orderID }
