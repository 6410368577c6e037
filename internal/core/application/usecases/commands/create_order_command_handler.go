package commands

import (
	"context"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/order"
)

// CreateOrderResult reports the server-generated identity of a new order.
type CreateOrderResult struct {
	OrderID     kernel.UUID
	OrderNumber string
}

// CreateOrderCommandHandler creates pending orders.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle generates the order identity and number and persists the order in
// pending status.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.HubID(),
		order.NewOrderNumber(),
		cmd.Source(),
		cmd.Details(),
		cmd.Payment(),
		cmd.Priority(),
		cmd.ScheduledDate(),
		cmd.DeliverySlot(),
		time.Now().UTC(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return CreateOrderResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:     aggregate.ID(),
		OrderNumber: aggregate.OrderNumber(),
	}, nil
}
