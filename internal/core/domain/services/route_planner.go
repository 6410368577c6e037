// Package services contains stateless domain services that work across
// aggregates.
package services

import (
	"sort"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/fleet"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/order"
)

// MaxStopsPerRoute caps how many orders an auto-planned route may carry.
const MaxStopsPerRoute = 30

// PlannedRoute is one proposed vehicle load. Orders are already in visit
// order when the plan is produced.
type PlannedRoute struct {
	Vehicle       *fleet.Vehicle
	Orders        []*order.Order
	TotalWeightKG float64
}

// PlanResult is the output of one planning pass over a hub's backlog.
type PlanResult struct {
	Routes     []PlannedRoute
	Unassigned []*order.Order
}

// RoutePlanner packs pending orders onto available vehicles. Orders are
// grouped by destination (postal code, then city) so each route stays in one
// area, and packed greedily against vehicle weight capacity.
type RoutePlanner struct{}

func NewRoutePlanner() *RoutePlanner {
	return &RoutePlanner{}
}

// Plan assigns orders to vehicles one vehicle at a time. A vehicle's route is
// filled until its weight capacity or the stop cap is hit; orders that do not
// fit are retried on later vehicles, and whatever remains is unassigned.
func (p *RoutePlanner) Plan(orders []*order.Order, vehicles []*fleet.Vehicle) PlanResult {
	remaining := make([]*order.Order, len(orders))
	copy(remaining, orders)
	sort.SliceStable(remaining, func(i, j int) bool {
		if remaining[i].Details().PostalCode != remaining[j].Details().PostalCode {
			return remaining[i].Details().PostalCode < remaining[j].Details().PostalCode
		}
		return remaining[i].Details().City < remaining[j].Details().City
	})

	var result PlanResult
	for _, vehicle := range vehicles {
		if len(remaining) == 0 {
			break
		}

		planned := PlannedRoute{Vehicle: vehicle}
		var deferred []*order.Order
		for _, o := range remaining {
			if len(planned.Orders) >= MaxStopsPerRoute {
				deferred = append(deferred, o)
				continue
			}
			weight := o.WeightKG()
			if cap := vehicle.CapacityKG(); cap != nil && planned.TotalWeightKG+weight > *cap {
				deferred = append(deferred, o)
				continue
			}
			planned.Orders = append(planned.Orders, o)
			planned.TotalWeightKG += weight
		}

		remaining = deferred
		if len(planned.Orders) > 0 {
			result.Routes = append(result.Routes, planned)
		}
	}

	result.Unassigned = remaining
	return result
}
