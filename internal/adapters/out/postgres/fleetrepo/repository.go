package fleetrepo

import (
	"context"
	"errors"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/fleet"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVehicleRepository implements ports.VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Add saves a new vehicle to the database.
func (r *GormVehicleRepository) Add(ctx context.Context, vehicle *fleet.Vehicle) error {
	dto := vehicleFromDomain(vehicle)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing vehicle to the database.
func (r *GormVehicleRepository) Update(ctx context.Context, vehicle *fleet.Vehicle) error {
	dto := vehicleFromDomain(vehicle)
	result := r.db.WithContext(ctx).Model(&VehicleDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Get retrieves a vehicle by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		return nil, err
	}

	return vehicleToDomain(dto)
}

// GetAvailableByHub retrieves the hub's active, available vehicles ordered
// by plate number. The planner packs vehicles in this order, so it must be
// stable between runs.
func (r *GormVehicleRepository) GetAvailableByHub(ctx context.Context, hubID kernel.UUID) ([]*fleet.Vehicle, error) {
	var dtos []VehicleDTO
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND status = ? AND is_active = ?", hubID.Bytes(), string(fleet.VehicleAvailable), true).
		Order("plate_number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return vehiclesToDomain(dtos)
}

// GetActiveByIDs retrieves the requested vehicles that are active at the
// hub, ordered by plate number. Vehicles from other hubs or marked
// inactive drop out of the result.
func (r *GormVehicleRepository) GetActiveByIDs(ctx context.Context, hubID kernel.UUID, ids []kernel.UUID) ([]*fleet.Vehicle, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []VehicleDTO
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND id IN ? AND is_active = ?", hubID.Bytes(), raw, true).
		Order("plate_number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return vehiclesToDomain(dtos)
}

func vehiclesToDomain(dtos []VehicleDTO) ([]*fleet.Vehicle, error) {
	vehicles := make([]*fleet.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		vehicle, err := vehicleToDomain(dto)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}
	return vehicles, nil
}

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, driver *fleet.Driver) error {
	dto := driverFromDomain(driver)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing driver to the database.
func (r *GormDriverRepository) Update(ctx context.Context, driver *fleet.Driver) error {
	dto := driverFromDomain(driver)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return driverToDomain(dto)
}
