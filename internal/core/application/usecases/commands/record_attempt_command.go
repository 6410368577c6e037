package commands

import (
	"errors"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/attempt"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

var ErrRecordAttemptCommandIsNotConstructed = errors.New(
	"RecordAttemptCommand must be created via NewRecordAttemptCommand constructor",
)

// RecordAttemptCommand is a driver's report of one delivery try, including
// the proof collected at the door. The stop is optional; when omitted it is
// resolved from the order's route.
type RecordAttemptCommand struct {
	orderID       kernel.UUID
	stopID        *kernel.UUID
	outcome       attempt.Outcome
	failureReason string
	notes         string
	proof         attempt.Proof

	constructed bool
}

func NewRecordAttemptCommand(
	orderID kernel.UUID,
	stopID *kernel.UUID,
	outcome attempt.Outcome,
	failureReason, notes string,
	proof attempt.Proof,
) (RecordAttemptCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RecordAttemptCommand{}, err
	}
	if stopID != nil {
		if err := stopID.Validate(); err != nil {
			return RecordAttemptCommand{}, err
		}
	}
	if err := outcome.Validate(); err != nil {
		return RecordAttemptCommand{}, err
	}
	if outcome == attempt.OutcomeFailed && failureReason == "" {
		return RecordAttemptCommand{}, errs.NewValueIsRequiredError("failure_reason")
	}
	if err := proof.Validate(); err != nil {
		return RecordAttemptCommand{}, err
	}

	return RecordAttemptCommand{
		orderID:       orderID,
		stopID:        stopID,
		outcome:       outcome,
		failureReason: failureReason,
		notes:         notes,
		proof:         proof,
		constructed:   true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordAttemptCommand) Validate() error {
	if !c.constructed {
		return ErrRecordAttemptCommandIsNotConstructed
	}
	return nil
}

func (c RecordAttemptCommand) OrderID() kernel.UUID     { return c.orderID }
func (c RecordAttemptCommand) StopID() *kernel.UUID     { return c.stopID }
func (c RecordAttemptCommand) Outcome() attempt.Outcome { return c.outcome }
func (c RecordAttemptCommand) FailureReason() string    { return c.failureReason }
func (c RecordAttemptCommand) Notes() string            { return c.notes }
func (c RecordAttemptCommand) Proof() attempt.Proof     { return c.proof }
