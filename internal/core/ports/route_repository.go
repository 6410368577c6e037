package ports

import (
	"context"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/route"
)

// RouteRepository is the persistence contract for route aggregates and
// their stops.
type RouteRepository interface {
	// Add persists a new route.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists changes to an existing route.
	Update(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// Delete removes a route and its stops.
	Delete(ctx context.Context, id kernel.UUID) error

	// CountForDate reports how many routes already exist for a hub on a
	// date. Auto-planned route names take the next sequence number.
	CountForDate(ctx context.Context, hubID kernel.UUID, date time.Time) (int, error)

	// GetAllInProgress retrieves every route currently out for delivery,
	// across hubs. The completion job sweeps these.
	GetAllInProgress(ctx context.Context) ([]*route.Route, error)

	// AddStops persists the ordered stop list of a route.
	AddStops(ctx context.Context, stops []*route.Stop) error

	// UpdateStop persists changes to a single stop.
	UpdateStop(ctx context.Context, stop *route.Stop) error

	// GetStops retrieves a route's stops in sequence order.
	GetStops(ctx context.Context, routeID kernel.UUID) ([]*route.Stop, error)

	// GetStop retrieves a stop by its identifier.
	GetStop(ctx context.Context, id kernel.UUID) (*route.Stop, error)

	// GetStopByOrder retrieves the stop visiting the given order on the
	// given route.
	GetStopByOrder(ctx context.Context, routeID, orderID kernel.UUID) (*route.Stop, error)
}
