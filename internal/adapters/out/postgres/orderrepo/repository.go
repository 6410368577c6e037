package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/order"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order to the database. All columns are written
// so cleared optional fields, e.g. route_id after an unassign, reach the
// database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
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

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingUnrouted retrieves the hub's plannable backlog in creation
// order, narrowed to one scheduled date when given.
func (r *GormOrderRepository) GetPendingUnrouted(ctx context.Context, hubID kernel.UUID, scheduledDate *time.Time) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).
		Where("hub_id = ? AND status = ? AND route_id IS NULL", hubID.Bytes(), string(order.StatusPending))
	if scheduledDate != nil {
		query = query.Where("scheduled_date = ?", scheduledDate.Format("2006-01-02"))
	}

	var dtos []OrderDTO
	if err := query.Order("created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByRoute retrieves all orders attached to a route.
func (r *GormOrderRepository) GetByRoute(ctx context.Context, routeID kernel.UUID) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("route_id = ?", routeID.Bytes()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// ClaimForRoute attaches a pending, unrouted order to a route with a
// conditional update. Losing the claim to a concurrent planning pass is
// reported as a conflict, not an error in the database sense.
func (r *GormOrderRepository) ClaimForRoute(ctx context.Context, orderID, routeID kernel.UUID) error {
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND route_id IS NULL AND status = ?", orderID.Bytes(), string(order.StatusPending)).
		Update("route_id", routeID.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError(
			fmt.Sprintf("order %s is no longer available for routing", orderID))
	}
	return nil
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
