// Package postgres provides the GORM-based Unit of Work that spans the
// repositories of the delivery domain. Each business operation gets a fresh
// unit of work; repositories pulled from it share one transaction.
package postgres

import (
	"context"

	"github.com/mantoshmedhansh-dot/lma/internal/adapters/out/postgres/attemptrepo"
	"github.com/mantoshmedhansh-dot/lma/internal/adapters/out/postgres/fleetrepo"
	"github.com/mantoshmedhansh-dot/lma/internal/adapters/out/postgres/hubrepo"
	"github.com/mantoshmedhansh-dot/lma/internal/adapters/out/postgres/importrepo"
	"github.com/mantoshmedhansh-dot/lma/internal/adapters/out/postgres/orderrepo"
	"github.com/mantoshmedhansh-dot/lma/internal/adapters/out/postgres/otprepo"
	"github.com/mantoshmedhansh-dot/lma/internal/adapters/out/postgres/routerepo"
	"github.com/mantoshmedhansh-dot/lma/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances on a shared GORM
// connection. Each Create call returns an isolated instance so concurrent
// commands never share transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given database.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh UnitOfWork.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the domain's
// repositories. Repositories requested before Begin run against the plain
// connection; after Begin they are bound to the transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a new database transaction. Calling Begin again on an
// instance with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// RouteRepository returns a route repository bound to the current
// transaction.
func (uow *GormUnitOfWork) RouteRepository() ports.RouteRepository {
	return routerepo.NewGormRouteRepository(uow.conn())
}

// VehicleRepository returns a vehicle repository bound to the current
// transaction.
func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return fleetrepo.NewGormVehicleRepository(uow.conn())
}

// DriverRepository returns a driver repository bound to the current
// transaction.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return fleetrepo.NewGormDriverRepository(uow.conn())
}

// HubRepository returns a hub repository bound to the current transaction.
func (uow *GormUnitOfWork) HubRepository() ports.HubRepository {
	return hubrepo.NewGormHubRepository(uow.conn())
}

// OtpRepository returns an OTP repository bound to the current transaction.
func (uow *GormUnitOfWork) OtpRepository() ports.OtpRepository {
	return otprepo.NewGormOtpRepository(uow.conn())
}

// AttemptRepository returns an attempt repository bound to the current
// transaction.
func (uow *GormUnitOfWork) AttemptRepository() ports.AttemptRepository {
	return attemptrepo.NewGormAttemptRepository(uow.conn())
}

// ImportRepository returns an import batch repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ImportRepository() ports.ImportRepository {
	return importrepo.NewGormImportRepository(uow.conn())
}
