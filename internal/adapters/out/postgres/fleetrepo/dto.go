// Package fleetrepo provides the GORM-backed repositories for hub vehicles
// and drivers.
package fleetrepo

import (
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/fleet"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// VehicleDTO is the database row shape for hub vehicles.
type VehicleDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	HubID             uuid.UUID  `gorm:"type:uuid;index"`
	VehicleType       string
	PlateNumber       string     `gorm:"uniqueIndex"`
	CapacityKG        *float64   `gorm:"column:capacity_kg"`
	CapacityVolumeCFT *float64   `gorm:"column:capacity_volume_cft"`
	Status            string     `gorm:"type:varchar(32);index"`
	AssignedDriverID  *uuid.UUID `gorm:"type:uuid"`
	IsActive          bool
}

// TableName overrides GORM's default naming to use "hub_vehicles".
func (VehicleDTO) TableName() string {
	return "hub_vehicles"
}

// DriverDTO is the database row shape for drivers.
type DriverDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	HubID    uuid.UUID `gorm:"type:uuid;index"`
	Name     string
	Phone    string `gorm:"uniqueIndex"`
	Status   string `gorm:"type:varchar(32);index"`
	IsActive bool
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

func vehicleFromDomain(vehicle *fleet.Vehicle) VehicleDTO {
	var assignedDriverID *uuid.UUID
	if id := vehicle.AssignedDriverID(); id != nil {
		raw := id.Bytes()
		assignedDriverID = &raw
	}

	return VehicleDTO{
		ID:                vehicle.ID().Bytes(),
		HubID:             vehicle.HubID().Bytes(),
		VehicleType:       vehicle.VehicleType(),
		PlateNumber:       vehicle.PlateNumber(),
		CapacityKG:        vehicle.CapacityKG(),
		CapacityVolumeCFT: vehicle.CapacityVolumeCFT(),
		Status:            string(vehicle.Status()),
		AssignedDriverID:  assignedDriverID,
		IsActive:          vehicle.IsActive(),
	}
}

func vehicleToDomain(dto VehicleDTO) (*fleet.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	hubID, err := kernel.UUIDFromBytes(dto.HubID[:])
	if err != nil {
		return nil, err
	}

	var assignedDriverID *kernel.UUID
	if dto.AssignedDriverID != nil {
		driverID, err := kernel.UUIDFromBytes((*dto.AssignedDriverID)[:])
		if err != nil {
			return nil, err
		}
		assignedDriverID = &driverID
	}

	return fleet.RestoreVehicle(
		id,
		hubID,
		dto.VehicleType,
		dto.PlateNumber,
		dto.CapacityKG,
		dto.CapacityVolumeCFT,
		fleet.VehicleStatus(dto.Status),
		assignedDriverID,
		dto.IsActive,
	)
}

func driverFromDomain(driver *fleet.Driver) DriverDTO {
	return DriverDTO{
		ID:       driver.ID().Bytes(),
		HubID:    driver.HubID().Bytes(),
		Name:     driver.Name(),
		Phone:    driver.Phone(),
		Status:   string(driver.Status()),
		IsActive: driver.IsActive(),
	}
}

func driverToDomain(dto DriverDTO) (*fleet.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	hubID, err := kernel.UUIDFromBytes(dto.HubID[:])
	if err != nil {
		return nil, err
	}

	return fleet.RestoreDriver(
		id,
		hubID,
		dto.Name,
		dto.Phone,
		fleet.DriverStatus(dto.Status),
		dto.IsActive,
	)
}
