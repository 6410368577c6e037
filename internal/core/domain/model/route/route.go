package route

import (
	"fmt"
	"strings"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrDriverAndVehicleRequired is returned by Dispatch when the route has no
// driver or no vehicle. Wrapping ErrConflict keeps the transport mapping
// consistent with other illegal transitions.
var ErrDriverAndVehicleRequired = errs.NewConflictError("driver and vehicle required before dispatch")

// Route is the aggregate root for one vehicle's delivery run on a date.
type Route struct {
	id        kernel.UUID
	hubID     kernel.UUID
	name      string
	vehicleID *kernel.UUID
	driverID  *kernel.UUID
	routeDate time.Time

	status        Status
	totalStops    int
	totalWeightKG float64

	startTime *time.Time
	endTime   *time.Time
	createdAt time.Time
}

// NewRouteName builds a planner route name, e.g. "PNQ-R2-20250601".
func NewRouteName(hubCode string, seq int, routeDate time.Time) string {
	return fmt.Sprintf("%s-R%d-%s", hubCode, seq, routeDate.Format("20060102"))
}

// NewManualRouteName builds a name for a hand-created route with a random
// suffix instead of a planner sequence, e.g. "PNQ-R3F0A-20250601".
func NewManualRouteName(hubCode string, routeDate time.Time) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("%s-R%s-%s", hubCode, strings.ToUpper(hex[:4]), routeDate.Format("20060102"))
}

// NewRoute creates a planned route. A vehicle may be attached at planning
// time; the driver arrives only through Assign.
func NewRoute(
	id kernel.UUID,
	hubID kernel.UUID,
	name string,
	vehicleID *kernel.UUID,
	routeDate time.Time,
	now time.Time,
) (*Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := hubID.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("route_name")
	}
	if routeDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("route_date")
	}

	return &Route{
		id:        id,
		hubID:     hubID,
		name:      name,
		vehicleID: vehicleID,
		routeDate: routeDate,
		status:    StatusPlanned,
		createdAt: now,
	}, nil
}

// RestoreRoute reconstructs a route from persistence.
func RestoreRoute(
	id kernel.UUID,
	hubID kernel.UUID,
	name string,
	vehicleID, driverID *kernel.UUID,
	routeDate time.Time,
	status Status,
	totalStops int,
	totalWeightKG float64,
	startTime, endTime *time.Time,
	createdAt time.Time,
) (*Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Route{
		id:            id,
		hubID:         hubID,
		name:          name,
		vehicleID:     vehicleID,
		driverID:      driverID,
		routeDate:     routeDate,
		status:        status,
		totalStops:    totalStops,
		totalWeightKG: totalWeightKG,
		startTime:     startTime,
		endTime:       endTime,
		createdAt:     createdAt,
	}, nil
}

func (r *Route) ID() kernel.UUID         { return r.id }
func (r *Route) HubID() kernel.UUID      { return r.hubID }
func (r *Route) Name() string            { return r.name }
func (r *Route) VehicleID() *kernel.UUID { return r.vehicleID }
func (r *Route) DriverID() *kernel.UUID  { return r.driverID }
func (r *Route) RouteDate() time.Time    { return r.routeDate }
func (r *Route) Status() Status          { return r.status }
func (r *Route) TotalStops() int         { return r.totalStops }
func (r *Route) TotalWeightKG() float64  { return r.totalWeightKG }
func (r *Route) StartTime() *time.Time   { return r.startTime }
func (r *Route) EndTime() *time.Time     { return r.endTime }
func (r *Route) CreatedAt() time.Time    { return r.createdAt }

// SetTotals records the planner's stop count and load weight.
func (r *Route) SetTotals(stops int, weightKG float64) {
	r.totalStops = stops
	r.totalWeightKG = weightKG
}

// Assign attaches a driver and vehicle. Allowed while the route is planned
// or already assigned (swapping driver or vehicle before dispatch).
func (r *Route) Assign(driverID, vehicleID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	if !r.status.CanTransitionTo(StatusAssigned) {
		return r.transitionConflict(StatusAssigned)
	}
	r.driverID = &driverID
	r.vehicleID = &vehicleID
	r.status = StatusAssigned
	return nil
}

// Dispatch starts the run: assigned -> in_progress with a start time.
// Fails with ErrDriverAndVehicleRequired when either is missing.
func (r *Route) Dispatch(now time.Time) error {
	if r.driverID == nil || r.vehicleID == nil {
		return ErrDriverAndVehicleRequired
	}
	if !r.status.CanTransitionTo(StatusInProgress) {
		return r.transitionConflict(StatusInProgress)
	}
	r.status = StatusInProgress
	if r.startTime == nil {
		t := now
		r.startTime = &t
	}
	return nil
}

// Complete closes the run: in_progress -> completed with an end time.
func (r *Route) Complete(now time.Time) error {
	if !r.status.CanTransitionTo(StatusCompleted) {
		return r.transitionConflict(StatusCompleted)
	}
	r.status = StatusCompleted
	if r.endTime == nil {
		t := now
		r.endTime = &t
	}
	return nil
}

// Cancel voids a route that has not yet been dispatched.
func (r *Route) Cancel() error {
	if !r.status.CanTransitionTo(StatusCancelled) {
		return r.transitionConflict(StatusCancelled)
	}
	r.status = StatusCancelled
	return nil
}

func (r *Route) transitionConflict(to Status) error {
	return errs.NewConflictError(
		fmt.Sprintf("invalid route status transition: %s -> %s", r.status, to))
}
