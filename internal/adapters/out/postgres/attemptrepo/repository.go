package attemptrepo

import (
	"context"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/attempt"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAttemptRepository implements ports.AttemptRepository using GORM.
type GormAttemptRepository struct {
	db *gorm.DB
}

// NewGormAttemptRepository creates a new GORM attempt repository.
func NewGormAttemptRepository(db *gorm.DB) *GormAttemptRepository {
	return &GormAttemptRepository{db: db}
}

// Add appends an attempt to the log.
func (r *GormAttemptRepository) Add(ctx context.Context, aggregate *attempt.Attempt) error {
	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByOrder retrieves an order's attempts in attempt-number order.
func (r *GormAttemptRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*attempt.Attempt, error) {
	var dtos []AttemptDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("attempt_number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	attempts := make([]*attempt.Attempt, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}

// LastAttemptNumber reports the highest attempt number recorded for the
// order, zero when none exist.
func (r *GormAttemptRepository) LastAttemptNumber(ctx context.Context, orderID kernel.UUID) (int, error) {
	var last int
	err := r.db.WithContext(ctx).Model(&AttemptDTO{}).
		Where("order_id = ?", orderID.Bytes()).
		Select("COALESCE(MAX(attempt_number), 0)").
		Scan(&last).Error
	if err != nil {
		return 0, err
	}
	return last, nil
}
