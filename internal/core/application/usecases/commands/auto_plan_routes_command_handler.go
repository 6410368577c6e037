package commands

import (
	"context"
	"errors"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/fleet"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/order"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/route"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/services"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

// PlannedRouteResult describes one route created by a planning pass.
type PlannedRouteResult struct {
	RouteID       kernel.UUID
	Name          string
	VehicleID     kernel.UUID
	Stops         int
	TotalWeightKG float64
}

// AutoPlanRoutesResult summarizes a planning pass.
type AutoPlanRoutesResult struct {
	Routes          []PlannedRouteResult
	OrdersAssigned  int
	OrdersUnplanned int
}

// AutoPlanRoutesCommandHandler packs the hub backlog onto vehicles and
// persists the resulting routes with their stops.
type AutoPlanRoutesCommandHandler struct {
	uowFactory PlanningUoWFactory
	planner    *services.RoutePlanner
}

func NewAutoPlanRoutesCommandHandler(uowFactory PlanningUoWFactory) AutoPlanRoutesCommandHandler {
	return AutoPlanRoutesCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewRoutePlanner(),
	}
}

// Handle plans and persists routes in one transaction. Each order is
// attached through a conditional claim, so an order grabbed by a concurrent
// planning pass is silently dropped from the new route instead of being
// double-assigned.
func (h *AutoPlanRoutesCommandHandler) Handle(ctx context.Context, cmd AutoPlanRoutesCommand) (AutoPlanRoutesResult, error) {
	if err := cmd.Validate(); err != nil {
		return AutoPlanRoutesResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AutoPlanRoutesResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	hubAggregate, err := uow.HubRepository().Get(ctx, cmd.HubID())
	if err != nil {
		return AutoPlanRoutesResult{}, err
	}

	routeDate := cmd.RouteDate()
	orders, err := uow.OrderRepository().GetPendingUnrouted(ctx, cmd.HubID(), &routeDate)
	if err != nil {
		return AutoPlanRoutesResult{}, err
	}

	vehicles, err := h.loadVehicles(ctx, uow, cmd)
	if err != nil {
		return AutoPlanRoutesResult{}, err
	}

	plan := h.planner.Plan(orders, vehicles)

	seq, err := uow.RouteRepository().CountForDate(ctx, cmd.HubID(), cmd.RouteDate())
	if err != nil {
		return AutoPlanRoutesResult{}, err
	}

	now := time.Now().UTC()
	result := AutoPlanRoutesResult{OrdersUnplanned: len(plan.Unassigned)}
	for _, planned := range plan.Routes {
		seq++
		name := route.NewRouteName(hubAggregate.Code(), seq, cmd.RouteDate())
		vehicleID := planned.Vehicle.ID()
		routeAggregate, err := route.NewRoute(
			kernel.NewUUID(), cmd.HubID(), name, &vehicleID, cmd.RouteDate(), now)
		if err != nil {
			return AutoPlanRoutesResult{}, err
		}

		claimed, weight, err := h.claimOrders(ctx, uow, planned.Orders, routeAggregate.ID())
		if err != nil {
			return AutoPlanRoutesResult{}, err
		}
		if len(claimed) == 0 {
			// Every order on this load was taken by a concurrent pass.
			seq--
			continue
		}

		routeAggregate.SetTotals(len(claimed), weight)
		if err = uow.RouteRepository().Add(ctx, routeAggregate); err != nil {
			return AutoPlanRoutesResult{}, err
		}

		stops := make([]*route.Stop, 0, len(claimed))
		for i, o := range claimed {
			stop, err := route.NewStop(kernel.NewUUID(), routeAggregate.ID(), o.ID(), i+1)
			if err != nil {
				return AutoPlanRoutesResult{}, err
			}
			stops = append(stops, stop)
		}
		if err = uow.RouteRepository().AddStops(ctx, stops); err != nil {
			return AutoPlanRoutesResult{}, err
		}

		result.Routes = append(result.Routes, PlannedRouteResult{
			RouteID:       routeAggregate.ID(),
			Name:          name,
			VehicleID:     vehicleID,
			Stops:         len(claimed),
			TotalWeightKG: weight,
		})
		result.OrdersAssigned += len(claimed)
	}

	if err = uow.Commit(ctx); err != nil {
		return AutoPlanRoutesResult{}, err
	}

	return result, nil
}

func (h *AutoPlanRoutesCommandHandler) loadVehicles(
	ctx context.Context, uow PlanningUoW, cmd AutoPlanRoutesCommand,
) ([]*fleet.Vehicle, error) {
	if len(cmd.VehicleIDs()) == 0 {
		return uow.VehicleRepository().GetAvailableByHub(ctx, cmd.HubID())
	}

	// An explicit set is still constrained to the hub's active fleet.
	return uow.VehicleRepository().GetActiveByIDs(ctx, cmd.HubID(), cmd.VehicleIDs())
}

func (h *AutoPlanRoutesCommandHandler) claimOrders(
	ctx context.Context, uow PlanningUoW, orders []*order.Order, routeID kernel.UUID,
) ([]*order.Order, float64, error) {
	var (
		claimed []*order.Order
		weight  float64
	)
	for _, o := range orders {
		err := uow.OrderRepository().ClaimForRoute(ctx, o.ID(), routeID)
		if errors.Is(err, errs.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, 0, err
		}
		claimed = append(claimed, o)
		weight += o.WeightKG()
	}
	return claimed, weight, nil
}
