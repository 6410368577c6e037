package ports

import (
	"context"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/fleet"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
)

// VehicleRepository is the persistence contract for hub vehicles.
type VehicleRepository interface {
	// Add persists a new vehicle.
	Add(ctx context.Context, vehicle *fleet.Vehicle) error

	// Update persists changes to an existing vehicle.
	Update(ctx context.Context, vehicle *fleet.Vehicle) error

	// Get retrieves a vehicle by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*fleet.Vehicle, error)

	// GetAvailableByHub retrieves the hub's active, available vehicles in
	// a stable order. The planner packs them in the order returned.
	GetAvailableByHub(ctx context.Context, hubID kernel.UUID) ([]*fleet.Vehicle, error)

	// GetActiveByIDs retrieves the subset of the given vehicles that
	// belong to the hub and are active. IDs from other hubs or of
	// inactive vehicles are silently dropped.
	GetActiveByIDs(ctx context.Context, hubID kernel.UUID, ids []kernel.UUID) ([]*fleet.Vehicle, error)
}

// DriverRepository is the persistence contract for hub drivers.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, driver *fleet.Driver) error

	// Update persists changes to an existing driver.
	Update(ctx context.Context, driver *fleet.Driver) error

	// Get retrieves a driver by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*fleet.Driver, error)
}
