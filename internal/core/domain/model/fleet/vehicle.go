// Package fleet contains the hub-based vehicles and drivers that routes are
// assigned to.
package fleet

import (
	"fmt"
	"strings"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

// VehicleStatus represents vehicle availability at the hub.
type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleOnRoute     VehicleStatus = "on_route"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleInactive    VehicleStatus = "inactive"
)

// Validate checks that the status is one of the defined states.
func (s VehicleStatus) Validate() error {
	switch s {
	case VehicleAvailable, VehicleOnRoute, VehicleMaintenance, VehicleInactive:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid vehicle status", string(s)))
	}
}

// Vehicle is a hub vehicle. A nil capacity means unlimited load.
type Vehicle struct {
	id                kernel.UUID
	hubID             kernel.UUID
	vehicleType       string
	plateNumber       string
	capacityKG        *float64
	capacityVolumeCFT *float64
	status            VehicleStatus
	assignedDriverID  *kernel.UUID
	isActive          bool
}

// NewVehicle registers a vehicle at a hub as available and active.
func NewVehicle(
	id, hubID kernel.UUID,
	vehicleType, plateNumber string,
	capacityKG, capacityVolumeCFT *float64,
) (*Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := hubID.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(plateNumber) == "" {
		return nil, errs.NewValueIsRequiredError("plate_number")
	}
	if capacityKG != nil && *capacityKG <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("capacity_kg",
			fmt.Errorf("%f is not greater than 0", *capacityKG))
	}

	return &Vehicle{
		id:                id,
		hubID:             hubID,
		vehicleType:       vehicleType,
		plateNumber:       plateNumber,
		capacityKG:        capacityKG,
		capacityVolumeCFT: capacityVolumeCFT,
		status:            VehicleAvailable,
		isActive:          true,
	}, nil
}

// RestoreVehicle reconstructs a vehicle from persistence.
func RestoreVehicle(
	id, hubID kernel.UUID,
	vehicleType, plateNumber string,
	capacityKG, capacityVolumeCFT *float64,
	status VehicleStatus,
	assignedDriverID *kernel.UUID,
	isActive bool,
) (*Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Vehicle{
		id:                id,
		hubID:             hubID,
		vehicleType:       vehicleType,
		plateNumber:       plateNumber,
		capacityKG:        capacityKG,
		capacityVolumeCFT: capacityVolumeCFT,
		status:            status,
		assignedDriverID:  assignedDriverID,
		isActive:          isActive,
	}, nil
}

func (v *Vehicle) ID() kernel.UUID                 { return v.id }
func (v *Vehicle) HubID() kernel.UUID              { return v.hubID }
func (v *Vehicle) VehicleType() string             { return v.vehicleType }
func (v *Vehicle) PlateNumber() string             { return v.plateNumber }
func (v *Vehicle) CapacityKG() *float64            { return v.capacityKG }
func (v *Vehicle) CapacityVolumeCFT() *float64     { return v.capacityVolumeCFT }
func (v *Vehicle) Status() VehicleStatus           { return v.status }
func (v *Vehicle) AssignedDriverID() *kernel.UUID  { return v.assignedDriverID }
func (v *Vehicle) IsActive() bool                  { return v.isActive }

// MarkOnRoute puts the vehicle on a route with the given driver.
func (v *Vehicle) MarkOnRoute(driverID kernel.UUID) error {
	if !v.isActive {
		return errs.NewConflictError(
			fmt.Sprintf("vehicle %s is inactive", v.plateNumber))
	}
	if v.status == VehicleMaintenance || v.status == VehicleInactive {
		return errs.NewConflictError(
			fmt.Sprintf("vehicle %s is %s", v.plateNumber, v.status))
	}
	v.status = VehicleOnRoute
	v.assignedDriverID = &driverID
	return nil
}

// Release returns the vehicle to the available pool.
func (v *Vehicle) Release() {
	v.status = VehicleAvailable
	v.assignedDriverID = nil
}
