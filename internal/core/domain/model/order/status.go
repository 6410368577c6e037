package order

import (
	"fmt"

	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
//
// State transitions:
//
//	pending ──> assigned ──> out_for_delivery ──┬──> delivered
//	   ^            │                           └──> failed ──> returned_to_hub
//	   └────────────┘ (route deleted)
//
// cancelled is reachable from every state except delivered and cancelled
// itself. delivered, cancelled and returned_to_hub are terminal.
type Status string

const (
	StatusPending        Status = "pending"
	StatusAssigned       Status = "assigned"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusFailed         Status = "failed"
	StatusReturnedToHub  Status = "returned_to_hub"
	StatusCancelled      Status = "cancelled"
)

// statusTransitions is the directed edge set of the order state machine.
// Unassignment (assigned -> pending) is modelled separately in Unassign
// because it is a compensating move, not a forward transition.
var statusTransitions = map[Status][]Status{
	StatusPending:        {StatusAssigned, StatusCancelled},
	StatusAssigned:       {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered, StatusFailed, StatusCancelled},
	StatusFailed:         {StatusReturnedToHub, StatusCancelled},
	StatusDelivered:      {},
	StatusReturnedToHub:  {StatusCancelled},
	StatusCancelled:      {},
}

// Validate checks that the status is one of the defined states.
func (s Status) Validate() error {
	if _, ok := statusTransitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// CanTransitionTo reports whether to is reachable from s along a defined edge.
func (s Status) CanTransitionTo(to Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no forward transitions are possible except
// cancellation bookkeeping.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusReturnedToHub
}

// Priority is the handling priority of an order.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// Validate checks that the priority is one of the defined levels.
func (p Priority) Validate() error {
	switch p {
	case PriorityUrgent, PriorityNormal, PriorityLow:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%q is not a valid priority", string(p)))
	}
}

// Source records how the order entered the system.
type Source string

const (
	SourceCSV    Source = "csv"
	SourceAPI    Source = "api"
	SourceManual Source = "manual"
)

// Validate checks that the source is one of the defined channels.
func (s Source) Validate() error {
	switch s {
	case SourceCSV, SourceAPI, SourceManual:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("source",
			fmt.Errorf("%q is not a valid order source", string(s)))
	}
}
