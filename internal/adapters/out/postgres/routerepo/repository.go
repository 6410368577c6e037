package routerepo

import (
	"context"
	"errors"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/route"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteRepository implements ports.RouteRepository using GORM.
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

// Add saves a new route to the database.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing route to the database.
func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RouteDTO{}).
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

// Get retrieves a route by ID.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a route together with its stops.
func (r *GormRouteRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&StopDTO{}, "route_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RouteDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("route", id.String())
	}
	return nil
}

// CountForDate reports how many routes already exist for a hub on a date.
func (r *GormRouteRepository) CountForDate(ctx context.Context, hubID kernel.UUID, date time.Time) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&RouteDTO{}).
		Where("hub_id = ? AND route_date = ?", hubID.Bytes(), date.Format("2006-01-02")).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// GetAllInProgress retrieves every dispatched route across hubs.
func (r *GormRouteRepository) GetAllInProgress(ctx context.Context) ([]*route.Route, error) {
	var dtos []RouteDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", string(route.StatusInProgress)).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	routes := make([]*route.Route, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		routes = append(routes, aggregate)
	}
	return routes, nil
}

// AddStops saves a route's stop list to the database.
func (r *GormRouteRepository) AddStops(ctx context.Context, stops []*route.Stop) error {
	if len(stops) == 0 {
		return nil
	}

	dtos := make([]StopDTO, 0, len(stops))
	for _, stop := range stops {
		dtos = append(dtos, stopFromDomain(stop))
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// UpdateStop saves an existing stop to the database.
func (r *GormRouteRepository) UpdateStop(ctx context.Context, stop *route.Stop) error {
	dto := stopFromDomain(stop)
	result := r.db.WithContext(ctx).Model(&StopDTO{}).
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

// GetStops retrieves a route's stops in sequence order.
func (r *GormRouteRepository) GetStops(ctx context.Context, routeID kernel.UUID) ([]*route.Stop, error) {
	var dtos []StopDTO
	err := r.db.WithContext(ctx).
		Where("route_id = ?", routeID.Bytes()).
		Order("sequence").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	stops := make([]*route.Stop, 0, len(dtos))
	for _, dto := range dtos {
		stop, err := stopToDomain(dto)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}
	return stops, nil
}

// GetStop retrieves a stop by ID.
func (r *GormRouteRepository) GetStop(ctx context.Context, id kernel.UUID) (*route.Stop, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StopDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stop", id.String())
		}
		return nil, err
	}

	return stopToDomain(dto)
}

// GetStopByOrder retrieves the stop visiting the given order on the route.
func (r *GormRouteRepository) GetStopByOrder(ctx context.Context, routeID, orderID kernel.UUID) (*route.Stop, error) {
	var dto StopDTO
	err := r.db.WithContext(ctx).
		First(&dto, "route_id = ? AND order_id = ?", routeID.Bytes(), orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stop for order", orderID.String())
		}
		return nil, err
	}

	return stopToDomain(dto)
}
