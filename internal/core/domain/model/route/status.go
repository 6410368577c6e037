package route

import (
	"fmt"

	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

// Status represents the lifecycle state of a route.
//
// State transitions:
//
//	planned ──> assigned ──> in_progress ──> completed
//	   │            │
//	   └────────────┴──> cancelled
type Status string

const (
	StatusPlanned    Status = "planned"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var statusTransitions = map[Status][]Status{
	StatusPlanned:    {StatusAssigned, StatusCancelled},
	StatusAssigned:   {StatusAssigned, StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// Validate checks that the status is one of the defined states.
func (s Status) Validate() error {
	if _, ok := statusTransitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid route status", string(s)))
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

// IsTerminal reports whether the route has finished its lifecycle.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
