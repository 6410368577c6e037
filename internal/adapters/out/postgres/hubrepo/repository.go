package hubrepo

import (
	"context"
	"errors"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/hub"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHubRepository implements ports.HubRepository using GORM.
type GormHubRepository struct {
	db *gorm.DB
}

// NewGormHubRepository creates a new GORM hub repository.
func NewGormHubRepository(db *gorm.DB) *GormHubRepository {
	return &GormHubRepository{db: db}
}

// Add saves a new hub to the database.
func (r *GormHubRepository) Add(ctx context.Context, aggregate *hub.Hub) error {
	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a hub by ID.
func (r *GormHubRepository) Get(ctx context.Context, id kernel.UUID) (*hub.Hub, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto HubDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("hub", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
