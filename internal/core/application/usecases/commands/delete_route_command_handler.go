package commands

import (
	"context"
	"fmt"

	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

// DeleteRouteCommandHandler dissolves a route: member orders go back to the
// pending pool, the vehicle is released, and the route and its stops are
// removed.
type DeleteRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewDeleteRouteCommandHandler(uowFactory RouteUoWFactory) DeleteRouteCommandHandler {
	return DeleteRouteCommandHandler{uowFactory: uowFactory}
}

// Handle refuses to delete completed routes; their attempt history must
// stay attached to a real route.
func (h *DeleteRouteCommandHandler) Handle(ctx context.Context, cmd DeleteRouteCommand) error {
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
	if routeAggregate.Status().IsTerminal() {
		return errs.NewConflictError(
			fmt.Sprintf("route %s is %s and cannot be deleted", routeAggregate.Name(), routeAggregate.Status()))
	}

	orders, err := uow.OrderRepository().GetByRoute(ctx, cmd.RouteID())
	if err != nil {
		return err
	}
	for _, o := range orders {
		if err = o.Unassign(); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
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

	if err = uow.RouteRepository().Delete(ctx, cmd.RouteID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
