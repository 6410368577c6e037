package route

import (
	"fmt"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

// StopStatus represents the per-stop progress within a route:
// pending -> arrived -> delivered | failed. Completing a stop without an
// arrival mark is allowed; drivers may record both at once, and stops are
// not required to complete in sequence order.
type StopStatus string

const (
	StopPending   StopStatus = "pending"
	StopArrived   StopStatus = "arrived"
	StopDelivered StopStatus = "delivered"
	StopFailed    StopStatus = "failed"
)

// Validate checks that the status is one of the defined states.
func (s StopStatus) Validate() error {
	switch s {
	case StopPending, StopArrived, StopDelivered, StopFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid stop status", string(s)))
	}
}

// IsTerminal reports whether the stop outcome has been recorded.
func (s StopStatus) IsTerminal() bool {
	return s == StopDelivered || s == StopFailed
}

// Stop is one order's visit within a route. Stops are owned by their route:
// they are created with it and deleted with it.
type Stop struct {
	id       kernel.UUID
	routeID  kernel.UUID
	orderID  kernel.UUID
	sequence int
	status   StopStatus

	actualArrival   *time.Time
	actualDeparture *time.Time
}

// NewStop creates a pending stop at the given 1-based sequence position.
func NewStop(id, routeID, orderID kernel.UUID, sequence int) (*Stop, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := routeID.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if sequence < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("sequence",
			fmt.Errorf("%d is not a positive position", sequence))
	}

	return &Stop{
		id:       id,
		routeID:  routeID,
		orderID:  orderID,
		sequence: sequence,
		status:   StopPending,
	}, nil
}

// RestoreStop reconstructs a stop from persistence.
func RestoreStop(
	id, routeID, orderID kernel.UUID,
	sequence int,
	status StopStatus,
	actualArrival, actualDeparture *time.Time,
) (*Stop, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Stop{
		id:              id,
		routeID:         routeID,
		orderID:         orderID,
		sequence:        sequence,
		status:          status,
		actualArrival:   actualArrival,
		actualDeparture: actualDeparture,
	}, nil
}

func (s *Stop) ID() kernel.UUID             { return s.id }
func (s *Stop) RouteID() kernel.UUID        { return s.routeID }
func (s *Stop) OrderID() kernel.UUID        { return s.orderID }
func (s *Stop) Sequence() int               { return s.sequence }
func (s *Stop) Status() StopStatus          { return s.status }
func (s *Stop) ActualArrival() *time.Time   { return s.actualArrival }
func (s *Stop) ActualDeparture() *time.Time { return s.actualDeparture }

// Arrive marks the driver's arrival. Only a pending stop can be arrived at.
func (s *Stop) Arrive(now time.Time) error {
	if s.status != StopPending {
		return errs.NewConflictError(
			fmt.Sprintf("stop is already %s", s.status))
	}
	s.status = StopArrived
	t := now
	s.actualArrival = &t
	return nil
}

// Complete records the stop outcome and departure time.
func (s *Stop) Complete(outcome StopStatus, now time.Time) error {
	if !outcome.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("outcome",
			fmt.Errorf("%q is not a stop outcome", string(outcome)))
	}
	if s.status.IsTerminal() {
		return errs.NewConflictError(
			fmt.Sprintf("stop is already %s", s.status))
	}
	s.status = outcome
	t := now
	s.actualDeparture = &t
	return nil
}
