package commands

import (
	"context"
	"time"
)

// ReturnToHubCommandHandler settles a failed order back into the hub.
type ReturnToHubCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewReturnToHubCommandHandler(uowFactory OrderUoWFactory) ReturnToHubCommandHandler {
	return ReturnToHubCommandHandler{uowFactory: uowFactory}
}

func (h *ReturnToHubCommandHandler) Handle(ctx context.Context, cmd ReturnToHubCommand) error {
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

	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = orderAggregate.ReturnToHub(time.Now().UTC()); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, orderAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
