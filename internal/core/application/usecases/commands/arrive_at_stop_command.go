package commands

import (
	"errors"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
)

var ErrArriveAtStopCommandIsNotConstructed = errors.New(
	"ArriveAtStopCommand must be created via NewArriveAtStopCommand constructor",
)

// ArriveAtStopCommand is a driver's arrival report for one stop.
type ArriveAtStopCommand struct {
	stopID kernel.UUID

	constructed bool
}

func NewArriveAtStopCommand(stopID kernel.UUID) (ArriveAtStopCommand, error) {
	if err := stopID.Validate(); err != nil {
		return ArriveAtStopCommand{}, err
	}
	return ArriveAtStopCommand{stopID: stopID, constructed: true}, nil
}

// Validate ensures the command was created through the constructor.
func (c ArriveAtStopCommand) Validate() error {
	if !c.constructed {
		return ErrArriveAtStopCommandIsNotConstructed
	}
	return nil
}

func (c ArriveAtStopCommand) StopID() kernel.UUID { return c.stopID }
