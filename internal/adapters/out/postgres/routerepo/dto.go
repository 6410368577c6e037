// Package routerepo provides the GORM-backed repository for route
// aggregates and their stops.
package routerepo

import (
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO is the database row shape for delivery routes.
type RouteDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	HubID     uuid.UUID  `gorm:"type:uuid;index"`
	Name      string     `gorm:"uniqueIndex"`
	VehicleID *uuid.UUID `gorm:"type:uuid;index"`
	DriverID  *uuid.UUID `gorm:"type:uuid;index"`
	RouteDate time.Time  `gorm:"type:date;index"`

	Status        string  `gorm:"type:varchar(32);index"`
	TotalStops    int
	TotalWeightKG float64 `gorm:"column:total_weight_kg"`

	StartTime *time.Time
	EndTime   *time.Time
	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "delivery_routes".
func (RouteDTO) TableName() string {
	return "delivery_routes"
}

// StopDTO is the database row shape for route stops. Stops live and die
// with their route.
type StopDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID  uuid.UUID `gorm:"type:uuid;index"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	Sequence int
	Status   string `gorm:"type:varchar(32)"`

	ActualArrival   *time.Time
	ActualDeparture *time.Time
}

// TableName overrides GORM's default naming to use "route_stops".
func (StopDTO) TableName() string {
	return "route_stops"
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	k, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func fromDomain(aggregate *route.Route) RouteDTO {
	return RouteDTO{
		ID:            aggregate.ID().Bytes(),
		HubID:         aggregate.HubID().Bytes(),
		Name:          aggregate.Name(),
		VehicleID:     optionalUUID(aggregate.VehicleID()),
		DriverID:      optionalUUID(aggregate.DriverID()),
		RouteDate:     aggregate.RouteDate(),
		Status:        string(aggregate.Status()),
		TotalStops:    aggregate.TotalStops(),
		TotalWeightKG: aggregate.TotalWeightKG(),
		StartTime:     aggregate.StartTime(),
		EndTime:       aggregate.EndTime(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	hubID, err := kernel.UUIDFromBytes(dto.HubID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := optionalKernelUUID(dto.VehicleID)
	if err != nil {
		return nil, err
	}
	driverID, err := optionalKernelUUID(dto.DriverID)
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(
		id,
		hubID,
		dto.Name,
		vehicleID,
		driverID,
		dto.RouteDate,
		route.Status(dto.Status),
		dto.TotalStops,
		dto.TotalWeightKG,
		dto.StartTime,
		dto.EndTime,
		dto.CreatedAt,
	)
}

func stopFromDomain(stop *route.Stop) StopDTO {
	return StopDTO{
		ID:              stop.ID().Bytes(),
		RouteID:         stop.RouteID().Bytes(),
		OrderID:         stop.OrderID().Bytes(),
		Sequence:        stop.Sequence(),
		Status:          string(stop.Status()),
		ActualArrival:   stop.ActualArrival(),
		ActualDeparture: stop.ActualDeparture(),
	}
}

func stopToDomain(dto StopDTO) (*route.Stop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return route.RestoreStop(
		id,
		routeID,
		orderID,
		dto.Sequence,
		route.StopStatus(dto.Status),
		dto.ActualArrival,
		dto.ActualDeparture,
	)
}
