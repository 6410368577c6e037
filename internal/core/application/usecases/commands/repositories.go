// Package commands contains the write operations of the delivery hub.
// Every command is a validated struct plus a handler that runs the mutation
// inside one unit of work.
package commands

import (
	"context"

	"github.com/mantoshmedhansh-dot/lma/internal/core/ports"
)

// Narrow unit-of-work interfaces per command family. Handlers declare only
// the repositories they touch, the composition root satisfies all of them
// with the same gorm-backed implementation.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	HubRepoFactory interface {
		HubRepository() ports.HubRepository
	}

	OtpRepoFactory interface {
		OtpRepository() ports.OtpRepository
	}

	AttemptRepoFactory interface {
		AttemptRepository() ports.AttemptRepository
	}

	ImportRepoFactory interface {
		ImportRepository() ports.ImportRepository
	}

	// OrderUoW covers commands that only mutate order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ImportUoW covers the CSV ingestion cascade: one batch row plus the
	// orders it produces.
	ImportUoW interface {
		TxManager
		ImportRepoFactory
		OrderRepoFactory
	}

	ImportUoWFactory interface {
		Create() ImportUoW
	}

	// PlanningUoW covers auto-planning: backlog, fleet, and the routes
	// being created.
	PlanningUoW interface {
		TxManager
		OrderRepoFactory
		RouteRepoFactory
		VehicleRepoFactory
		HubRepoFactory
	}

	PlanningUoWFactory interface {
		Create() PlanningUoW
	}

	// RouteUoW covers route lifecycle commands and their cascades onto
	// member orders, the vehicle, and the driver.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
		OrderRepoFactory
		VehicleRepoFactory
		DriverRepoFactory
	}

	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// StopUoW covers single-stop transitions.
	StopUoW interface {
		TxManager
		RouteRepoFactory
	}

	StopUoWFactory interface {
		Create() StopUoW
	}

	// OtpUoW covers issuing and verifying delivery confirmation codes.
	OtpUoW interface {
		TxManager
		OtpRepoFactory
		OrderRepoFactory
	}

	OtpUoWFactory interface {
		Create() OtpUoW
	}

	// DeliveryUoW covers attempt recording and its cascade onto the order
	// and its stop.
	DeliveryUoW interface {
		TxManager
		AttemptRepoFactory
		OrderRepoFactory
		RouteRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
