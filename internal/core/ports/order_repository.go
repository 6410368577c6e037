// Package ports defines the persistence contracts between the domain layer
// and infrastructure.
package ports

import (
	"context"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetPendingUnrouted retrieves the hub's plannable backlog: pending
	// orders that no route has claimed yet. A non-nil scheduledDate
	// narrows the backlog to orders scheduled for that date.
	GetPendingUnrouted(ctx context.Context, hubID kernel.UUID, scheduledDate *time.Time) ([]*order.Order, error)

	// GetByRoute retrieves all orders attached to a route.
	GetByRoute(ctx context.Context, routeID kernel.UUID) ([]*order.Order, error)

	// ClaimForRoute atomically attaches a pending, unrouted order to a
	// route. Returns errs.ErrConflict when a concurrent planning pass
	// claimed the order first.
	ClaimForRoute(ctx context.Context, orderID, routeID kernel.UUID) error
}
