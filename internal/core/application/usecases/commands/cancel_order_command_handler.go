package commands

import (
	"context"
)

// CancelOrderCommandHandler cancels an order. Delivered and already
// cancelled orders are rejected by the aggregate.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	if err = orderAggregate.Cancel(); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, orderAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
