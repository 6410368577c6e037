package commands

import (
	"context"
	"time"
)

// CompleteRouteCommandHandler closes an in-progress route and returns its
// crew to the pool. The route completion job calls this once every stop on
// a route has reached a terminal state.
type CompleteRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewCompleteRouteCommandHandler(uowFactory RouteUoWFactory) CompleteRouteCommandHandler {
	return CompleteRouteCommandHandler{uowFactory: uowFactory}
}

func (h *CompleteRouteCommandHandler) Handle(ctx context.Context, cmd CompleteRouteCommand) error {
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

	if err = routeAggregate.Complete(time.Now().UTC()); err != nil {
		return err
	}

	if driverID := routeAggregate.DriverID(); driverID != nil {
		driver, err := uow.DriverRepository().Get(ctx, *driverID)
		if err != nil {
			return err
		}
		driver.MarkAvailable()
		if err = uow.DriverRepository().Update(ctx, driver); err != nil {
			return err
		}
	}
	if vehicleID := routeAggregate.VehicleID(); vehicleID != nil {
		vehicle, err := uow.VehicleRepository().Get(ctx, *vehicleID)
		if err != nil {
			return err
		}
		vehicle.Release()
		if err = uow.VehicleRepository().Update(ctx, vehicle); err != nil {
			return err
		}
	}

	if err = uow.RouteRepository().Update(ctx, routeAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
