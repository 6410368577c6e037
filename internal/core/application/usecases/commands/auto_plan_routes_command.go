package commands

import (
	"errors"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

var ErrAutoPlanRoutesCommandIsNotConstructed = errors.New(
	"AutoPlanRoutesCommand must be created via NewAutoPlanRoutesCommand constructor",
)

// AutoPlanRoutesCommand is a request to pack a hub's pending backlog onto
// vehicles for one route date. When VehicleIDs is empty every available
// active vehicle at the hub is considered.
type AutoPlanRoutesCommand struct {
	hubID      kernel.UUID
	routeDate  time.Time
	vehicleIDs []kernel.UUID

	constructed bool
}

func NewAutoPlanRoutesCommand(hubID kernel.UUID, routeDate time.Time, vehicleIDs []kernel.UUID) (AutoPlanRoutesCommand, error) {
	if err := hubID.Validate(); err != nil {
		return AutoPlanRoutesCommand{}, err
	}
	if routeDate.IsZero() {
		return AutoPlanRoutesCommand{}, errs.NewValueIsRequiredError("route_date")
	}
	for _, id := range vehicleIDs {
		if err := id.Validate(); err != nil {
			return AutoPlanRoutesCommand{}, err
		}
	}

	return AutoPlanRoutesCommand{
		hubID:       hubID,
		routeDate:   routeDate,
		vehicleIDs:  vehicleIDs,
		constructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AutoPlanRoutesCommand) Validate() error {
	if !c.constructed {
		return ErrAutoPlanRoutesCommandIsNotConstructed
	}
	return nil
}

func (c AutoPlanRoutesCommand) HubID() kernel.UUID        { return c.hubID }
func (c AutoPlanRoutesCommand) RouteDate() time.Time      { return c.routeDate }
func (c AutoPlanRoutesCommand) VehicleIDs() []kernel.UUID { return c.vehicleIDs }
