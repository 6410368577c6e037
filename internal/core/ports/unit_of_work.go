package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command so concurrent
// operations stay isolated.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Client code manages the
// transaction lifecycle explicitly and pulls transaction-bound repositories
// from it.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Safe to defer after a
	// successful commit.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// RouteRepository returns a RouteRepository bound to the current
	// transaction.
	RouteRepository() RouteRepository

	// VehicleRepository returns a VehicleRepository bound to the current
	// transaction.
	VehicleRepository() VehicleRepository

	// DriverRepository returns a DriverRepository bound to the current
	// transaction.
	DriverRepository() DriverRepository

	// HubRepository returns a HubRepository bound to the current
	// transaction.
	HubRepository() HubRepository

	// OtpRepository returns an OtpRepository bound to the current
	// transaction.
	OtpRepository() OtpRepository

	// AttemptRepository returns an AttemptRepository bound to the current
	// transaction.
	AttemptRepository() AttemptRepository

	// ImportRepository returns an ImportRepository bound to the current
	// transaction.
	ImportRepository() ImportRepository
}
