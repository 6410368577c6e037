package commands

import (
	"context"
	"time"
)

// AssignRouteCommandHandler puts a driver and vehicle on a route and
// cascades the assignment onto the route's orders.
type AssignRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewAssignRouteCommandHandler(uowFactory RouteUoWFactory) AssignRouteCommandHandler {
	return AssignRouteCommandHandler{uowFactory: uowFactory}
}

// Handle assigns the route and marks the vehicle on_route. Re-assignment of
// a not-yet-dispatched route swaps the crew and releases the previous
// vehicle.
func (h *AssignRouteCommandHandler) Handle(ctx context.Context, cmd AssignRouteCommand) error {
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

	// Existence check only. The driver goes on_delivery at dispatch.
	if _, err = uow.DriverRepository().Get(ctx, cmd.DriverID()); err != nil {
		return err
	}
	vehicle, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	previousVehicleID := routeAggregate.VehicleID()

	if err = routeAggregate.Assign(cmd.DriverID(), cmd.VehicleID()); err != nil {
		return err
	}
	if err = vehicle.MarkOnRoute(cmd.DriverID()); err != nil {
		return err
	}

	if previousVehicleID != nil && !previousVehicleID.IsEqual(cmd.VehicleID()) {
		previous, err := uow.VehicleRepository().Get(ctx, *previousVehicleID)
		if err != nil {
			return err
		}
		previous.Release()
		if err = uow.VehicleRepository().Update(ctx, previous); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	orders, err := uow.OrderRepository().GetByRoute(ctx, cmd.RouteID())
	if err != nil {
		return err
	}
	for _, o := range orders {
		if err = o.Assign(cmd.RouteID(), cmd.DriverID(), now); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.RouteRepository().Update(ctx, routeAggregate); err != nil {
		return err
	}
	if err = uow.VehicleRepository().Update(ctx, vehicle); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
