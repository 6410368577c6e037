package commands

import (
	"errors"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/route"
)

var ErrCompleteStopCommandIsNotConstructed = errors.New(
	"CompleteStopCommand must be created via NewCompleteStopCommand constructor",
)

// CompleteStopCommand is a driver's terminal report for one stop, either
// delivered or failed.
type CompleteStopCommand struct {
	stopID  kernel.UUID
	outcome route.StopStatus

	constructed bool
}

func NewCompleteStopCommand(stopID kernel.UUID, outcome route.StopStatus) (CompleteStopCommand, error) {
	if err := stopID.Validate(); err != nil {
		return CompleteStopCommand{}, err
	}
	if err := outcome.Validate(); err != nil {
		return CompleteStopCommand{}, err
	}

	return CompleteStopCommand{stopID: stopID, outcome: outcome, constructed: true}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteStopCommand) Validate() error {
	if !c.constructed {
		return ErrCompleteStopCommandIsNotConstructed
	}
	return nil
}

func (c CompleteStopCommand) StopID() kernel.UUID       { return c.stopID }
func (c CompleteStopCommand) Outcome() route.StopStatus { return c.outcome }
