package queries

import (
	"errors"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
)

var ErrGetRouteDetailQueryIsNotConstructed = errors.New(
	"GetRouteDetailQuery must be created via NewGetRouteDetailQuery constructor",
)

// GetRouteDetailQuery retrieves one route with its stops in visit order.
type GetRouteDetailQuery struct {
	routeID kernel.UUID

	constructed bool
}

func NewGetRouteDetailQuery(routeID kernel.UUID) (GetRouteDetailQuery, error) {
	if err := routeID.Validate(); err != nil {
		return GetRouteDetailQuery{}, err
	}
	return GetRouteDetailQuery{routeID: routeID, constructed: true}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRouteDetailQuery) Validate() error {
	if !q.constructed {
		return ErrGetRouteDetailQueryIsNotConstructed
	}
	return nil
}

func (q GetRouteDetailQuery) RouteID() kernel.UUID { return q.routeID }

// OrderBrief is the slice of an order a driver needs at the door.
type OrderBrief struct {
	ID              kernel.UUID
	OrderNumber     string
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	ProductDesc     string
	Status          string
	IsCOD           bool
	CODAmount       float64
}

// StopDetail is one stop with its order brief.
type StopDetail struct {
	ID              kernel.UUID
	Sequence        int
	Status          string
	ActualArrival   *time.Time
	ActualDeparture *time.Time
	Order           OrderBrief
}

// RouteDetailResponse is the route header plus its ordered stops.
type RouteDetailResponse struct {
	ID            kernel.UUID
	Name          string
	RouteDate     time.Time
	Status        string
	VehicleID     *kernel.UUID
	DriverID      *kernel.UUID
	TotalStops    int
	TotalWeightKG float64
	StartTime     *time.Time
	EndTime       *time.Time
	Stops         []StopDetail
}
