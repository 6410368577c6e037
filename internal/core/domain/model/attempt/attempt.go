// Package attempt contains the immutable delivery attempt log.
package attempt

import (
	"fmt"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

// Outcome is the result of one delivery attempt.
type Outcome string

const (
	OutcomeDelivered Outcome = "delivered"
	OutcomeFailed    Outcome = "failed"
)

// Validate checks that the outcome is one of the defined values.
func (o Outcome) Validate() error {
	switch o {
	case OutcomeDelivered, OutcomeFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("outcome",
			fmt.Errorf("%q is not a valid attempt outcome", string(o)))
	}
}

// Failure reasons recorded on unsuccessful attempts.
const (
	ReasonCustomerUnavailable = "customer_unavailable"
	ReasonAddressIssue        = "address_issue"
	ReasonCustomerRefused     = "customer_refused"
	ReasonCODNotReady         = "cod_not_ready"
	ReasonOther               = "other"
)

// Proof captures what the driver collected at the door: who received the
// package and whether cash on delivery changed hands.
type Proof struct {
	RecipientName string
	CODCollected  bool
	CODAmount     *float64
}

// Validate checks the COD amount when one is present.
func (p Proof) Validate() error {
	if p.CODAmount != nil && *p.CODAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cod_amount",
			fmt.Errorf("%f is negative", *p.CODAmount))
	}
	return nil
}

// Attempt is one delivery try against an order. Attempts are append-only;
// AttemptNumber is assigned from the count of prior attempts for the order.
type Attempt struct {
	id            kernel.UUID
	orderID       kernel.UUID
	routeID       *kernel.UUID
	driverID      *kernel.UUID
	attemptNumber int
	outcome       Outcome
	failureReason string
	notes         string
	proof         Proof
	attemptedAt   time.Time
}

// NewAttempt records a delivery attempt. Failed attempts require a reason.
func NewAttempt(
	id, orderID kernel.UUID,
	routeID, driverID *kernel.UUID,
	attemptNumber int,
	outcome Outcome,
	failureReason, notes string,
	proof Proof,
	attemptedAt time.Time,
) (*Attempt, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := outcome.Validate(); err != nil {
		return nil, err
	}
	if attemptNumber < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("attempt_number",
			fmt.Errorf("%d is not greater than 0", attemptNumber))
	}
	if outcome == OutcomeFailed && failureReason == "" {
		return nil, errs.NewValueIsRequiredError("failure_reason")
	}
	if err := proof.Validate(); err != nil {
		return nil, err
	}

	return &Attempt{
		id:            id,
		orderID:       orderID,
		routeID:       routeID,
		driverID:      driverID,
		attemptNumber: attemptNumber,
		outcome:       outcome,
		failureReason: failureReason,
		notes:         notes,
		proof:         proof,
		attemptedAt:   attemptedAt,
	}, nil
}

// RestoreAttempt reconstructs an attempt from persistence.
func RestoreAttempt(
	id, orderID kernel.UUID,
	routeID, driverID *kernel.UUID,
	attemptNumber int,
	outcome Outcome,
	failureReason, notes string,
	proof Proof,
	attemptedAt time.Time,
) *Attempt {
	return &Attempt{
		id:            id,
		orderID:       orderID,
		routeID:       routeID,
		driverID:      driverID,
		attemptNumber: attemptNumber,
		outcome:       outcome,
		failureReason: failureReason,
		notes:         notes,
		proof:         proof,
		attemptedAt:   attemptedAt,
	}
}

func (a *Attempt) ID() kernel.UUID        { return a.id }
func (a *Attempt) OrderID() kernel.UUID   { return a.orderID }
func (a *Attempt) RouteID() *kernel.UUID  { return a.routeID }
func (a *Attempt) DriverID() *kernel.UUID { return a.driverID }
func (a *Attempt) AttemptNumber() int     { return a.attemptNumber }
func (a *Attempt) Outcome() Outcome       { return a.outcome }
func (a *Attempt) FailureReason() string  { return a.failureReason }
func (a *Attempt) Notes() string          { return a.notes }
func (a *Attempt) Proof() Proof           { return a.proof }
func (a *Attempt) AttemptedAt() time.Time { return a.attemptedAt }
