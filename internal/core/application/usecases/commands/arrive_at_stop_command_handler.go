package commands

import (
	"context"
	"time"
)

// ArriveAtStopCommandHandler stamps a stop's arrival.
type ArriveAtStopCommandHandler struct {
	uowFactory StopUoWFactory
}

func NewArriveAtStopCommandHandler(uowFactory StopUoWFactory) ArriveAtStopCommandHandler {
	return ArriveAtStopCommandHandler{uowFactory: uowFactory}
}

func (h *ArriveAtStopCommandHandler) Handle(ctx context.Context, cmd ArriveAtStopCommand) error {
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
	if err = stop.Arrive(time.Now().UTC()); err != nil {
		return err
	}
	if err = uow.RouteRepository().UpdateStop(ctx, stop); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
