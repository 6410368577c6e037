package commands

import (
	"context"
	"time"
)

// CompleteStopCommandHandler closes a stop with its delivery outcome. The
// order itself is settled by RecordAttempt; this command only moves the stop
// so the route's progress stays accurate when an attempt is logged late.
type CompleteStopCommandHandler struct {
	uowFactory StopUoWFactory
}

func NewCompleteStopCommandHandler(uowFactory StopUoWFactory) CompleteStopCommandHandler {
	return CompleteStopCommandHandler{uowFactory: uowFactory}
}

func (h *CompleteStopCommandHandler) Handle(ctx context.Context, cmd CompleteStopCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stop, err := uow.RouteRepository().GetStop(ctx, cmd.StopID())
	if err != nil {
		return err
	}
	if err = stop.Complete(cmd.Outcome(), time.Now().UTC()); err != nil {
		return err
	}
	if err = uow.RouteRepository().UpdateStop(ctx, stop); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
