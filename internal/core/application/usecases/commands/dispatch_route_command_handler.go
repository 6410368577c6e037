package commands

import (
	"context"
	"time"
)

// DispatchRouteCommandHandler moves an assigned route out for delivery and
// cascades onto its orders and driver.
type DispatchRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewDispatchRouteCommandHandler(uowFactory RouteUoWFactory) DispatchRouteCommandHandler {
	return DispatchRouteCommandHandler{uowFactory: uowFactory}
}

// Handle dispatches the route. The route aggregate rejects dispatch without
// a driver and vehicle, so the cascade below can rely on both being set.
func (h *DispatchRouteCommandHandler) Handle(ctx context.Context, cmd DispatchRouteCommand) error {
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

	routeAggregate, err := uow.RouteRepository().Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = routeAggregate.Dispatch(now); err != nil {
		return err
	}

	driver, err := uow.DriverRepository().Get(ctx, *routeAggregate.DriverID())
	if err != nil {
		return err
	}
	if err = driver.MarkOnDelivery(); err != nil {
		return err
	}

	orders, err := uow.OrderRepository().GetByRoute(ctx, cmd.RouteID())
	if err != nil {
		return err
	}
	for _, o := range orders {
		if err = o.MarkOutForDelivery(now); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.RouteRepository().Update(ctx, routeAggregate); err != nil {
		return err
	}
	if err = uow.DriverRepository().Update(ctx, driver); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
