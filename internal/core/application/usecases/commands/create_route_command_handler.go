package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/route"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

// CreateRouteResult reports the hand-built route.
type CreateRouteResult struct {
	RouteID       kernel.UUID
	Name          string
	Stops         int
	TotalWeightKG float64
}

// CreateRouteCommandHandler builds a route from explicitly chosen orders.
// Unlike auto-planning there is no capacity packing; the operator decides
// the load, the handler only claims the orders and sequences the stops.
type CreateRouteCommandHandler struct {
	uowFactory PlanningUoWFactory
}

func NewCreateRouteCommandHandler(uowFactory PlanningUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{uowFactory: uowFactory}
}

func (h *CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) (CreateRouteResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateRouteResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateRouteResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	hubAggregate, err := uow.HubRepository().Get(ctx, cmd.HubID())
	if err != nil {
		return CreateRouteResult{}, err
	}

	if cmd.VehicleID() != nil {
		vehicle, err := uow.VehicleRepository().Get(ctx, *cmd.VehicleID())
		if err != nil {
			return CreateRouteResult{}, err
		}
		if !vehicle.IsActive() || !vehicle.HubID().IsEqual(cmd.HubID()) {
			return CreateRouteResult{}, errs.NewConflictError(
				fmt.Sprintf("vehicle %s is not active at this hub", vehicle.PlateNumber()))
		}
	}

	name := cmd.Name()
	if name == "" {
		name = route.NewManualRouteName(hubAggregate.Code(), cmd.RouteDate())
	}

	now := time.Now().UTC()
	routeAggregate, err := route.NewRoute(
		kernel.NewUUID(), cmd.HubID(), name, cmd.VehicleID(), cmd.RouteDate(), now)
	if err != nil {
		return CreateRouteResult{}, err
	}

	var weight float64
	stops := make([]*route.Stop, 0, len(cmd.OrderIDs()))
	for i, orderID := range cmd.OrderIDs() {
		orderAggregate, err := uow.OrderRepository().Get(ctx, orderID)
		if err != nil {
			return CreateRouteResult{}, err
		}
		// An order already claimed elsewhere fails the whole creation;
		// a hand-built route has no silent drops.
		if err = uow.OrderRepository().ClaimForRoute(ctx, orderID, routeAggregate.ID()); err != nil {
			return CreateRouteResult{}, err
		}
		stop, err := route.NewStop(kernel.NewUUID(), routeAggregate.ID(), orderID, i+1)
		if err != nil {
			return CreateRouteResult{}, err
		}
		stops = append(stops, stop)
		weight += orderAggregate.WeightKG()
	}

	routeAggregate.SetTotals(len(stops), weight)
	if err = uow.RouteRepository().Add(ctx, routeAggregate); err != nil {
		return CreateRouteResult{}, err
	}
	if err = uow.RouteRepository().AddStops(ctx, stops); err != nil {
		return CreateRouteResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateRouteResult{}, err
	}

	return CreateRouteResult{
		RouteID:       routeAggregate.ID(),
		Name:          name,
		Stops:         len(stops),
		TotalWeightKG: weight,
	}, nil
}
