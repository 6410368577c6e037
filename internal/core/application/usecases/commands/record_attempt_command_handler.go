package commands

import (
	"context"
	"errors"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/attempt"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/order"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/route"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

// RecordAttemptResult reports the appended attempt.
type RecordAttemptResult struct {
	AttemptID     kernel.UUID
	AttemptNumber int
}

// RecordAttemptCommandHandler appends a delivery attempt and cascades the
// outcome onto the order and its route stop. The stop is taken from the
// command when given, otherwise resolved from the order's route.
type RecordAttemptCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewRecordAttemptCommandHandler(uowFactory DeliveryUoWFactory) RecordAttemptCommandHandler {
	return RecordAttemptCommandHandler{uowFactory: uowFactory}
}

func (h *RecordAttemptCommandHandler) Handle(ctx context.Context, cmd RecordAttemptCommand) (RecordAttemptResult, error) {
	if err := cmd.Validate(); err != nil {
		return RecordAttemptResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RecordAttemptResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return RecordAttemptResult{}, err
	}

	last, err := uow.AttemptRepository().LastAttemptNumber(ctx, cmd.OrderID())
	if err != nil {
		return RecordAttemptResult{}, err
	}

	now := time.Now().UTC()
	record, err := attempt.NewAttempt(
		kernel.NewUUID(),
		cmd.OrderID(),
		orderAggregate.RouteID(),
		orderAggregate.DriverID(),
		last+1,
		cmd.Outcome(),
		cmd.FailureReason(),
		cmd.Notes(),
		cmd.Proof(),
		now,
	)
	if err != nil {
		return RecordAttemptResult{}, err
	}

	switch cmd.Outcome() {
	case attempt.OutcomeDelivered:
		err = orderAggregate.MarkDelivered(now)
	case attempt.OutcomeFailed:
		err = orderAggregate.MarkFailed(now)
	}
	if err != nil {
		return RecordAttemptResult{}, err
	}

	if err = uow.AttemptRepository().Add(ctx, record); err != nil {
		return RecordAttemptResult{}, err
	}
	if err = uow.OrderRepository().Update(ctx, orderAggregate); err != nil {
		return RecordAttemptResult{}, err
	}

	stop, err := h.resolveStop(ctx, uow, cmd, orderAggregate)
	if err != nil {
		return RecordAttemptResult{}, err
	}
	if stop != nil {
		outcome := route.StopDelivered
		if cmd.Outcome() == attempt.OutcomeFailed {
			outcome = route.StopFailed
		}
		if err = stop.Complete(outcome, now); err != nil {
			return RecordAttemptResult{}, err
		}
		if err = uow.RouteRepository().UpdateStop(ctx, stop); err != nil {
			return RecordAttemptResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return RecordAttemptResult{}, err
	}

	return RecordAttemptResult{
		AttemptID:     record.ID(),
		AttemptNumber: record.AttemptNumber(),
	}, nil
}

// resolveStop finds the route stop the attempt settles. Without an explicit
// stop id it falls back to the order's stop on its current route; a routed
// order whose stop cannot be found is tolerated, the attempt still counts.
func (h *RecordAttemptCommandHandler) resolveStop(
	ctx context.Context, uow DeliveryUoW, cmd RecordAttemptCommand, orderAggregate *order.Order,
) (*route.Stop, error) {
	if cmd.StopID() != nil {
		return uow.RouteRepository().GetStop(ctx, *cmd.StopID())
	}
	if orderAggregate.RouteID() == nil {
		return nil, nil
	}

	stop, err := uow.RouteRepository().GetStopByOrder(ctx, *orderAggregate.RouteID(), cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return stop, nil
}
