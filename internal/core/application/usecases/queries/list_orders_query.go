// Package queries contains the read side: raw SQL projections that bypass
// the aggregates.
package queries

import (
	"errors"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/order"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// ListOrdersQuery pages through a hub's orders, newest first. All filters
// are optional.
type ListOrdersQuery struct {
	hubID         *kernel.UUID
	status        *order.Status
	routeID       *kernel.UUID
	scheduledDate *time.Time
	page          int
	pageSize      int

	constructed bool
}

func NewListOrdersQuery(
	hubID *kernel.UUID,
	status *order.Status,
	routeID *kernel.UUID,
	scheduledDate *time.Time,
	page, pageSize int,
) (ListOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("page_size")
	}

	return ListOrdersQuery{
		hubID:         hubID,
		status:        status,
		routeID:       routeID,
		scheduledDate: scheduledDate,
		page:          page,
		pageSize:      pageSize,
		constructed:   true,
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	if !q.constructed {
		return ErrListOrdersQueryIsNotConstructed
	}
	return nil
}

func (q ListOrdersQuery) HubID() *kernel.UUID        { return q.hubID }
func (q ListOrdersQuery) Status() *order.Status      { return q.status }
func (q ListOrdersQuery) RouteID() *kernel.UUID      { return q.routeID }
func (q ListOrdersQuery) ScheduledDate() *time.Time  { return q.scheduledDate }
func (q ListOrdersQuery) Page() int                  { return q.page }
func (q ListOrdersQuery) PageSize() int              { return q.pageSize }
func (q ListOrdersQuery) Offset() int                { return (q.page - 1) * q.pageSize }

// OrderSummary is one row of the order list.
type OrderSummary struct {
	ID              kernel.UUID
	OrderNumber     string
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	City            string
	PostalCode      string
	Status          string
	Priority        string
	IsCOD           bool
	CODAmount       float64
	RouteID         *kernel.UUID
	CreatedAt       time.Time
}

// ListOrdersResponse is a page of orders plus the unpaged total.
type ListOrdersResponse struct {
	Orders []OrderSummary
	Total  int64
	Page   int
}
