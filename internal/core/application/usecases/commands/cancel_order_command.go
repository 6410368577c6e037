package commands

import (
	"errors"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand withdraws an order from delivery.
type CancelOrderCommand struct {
	orderID kernel.UUID

	constructed bool
}

func NewCancelOrderCommand(orderID kernel.UUID) (CancelOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{orderID: orderID, constructed: true}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	if !c.constructed {
		return ErrCancelOrderCommandIsNotConstructed
	}
	return nil
}

func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }
