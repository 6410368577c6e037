package importrepo

import (
	"context"
	"errors"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/imports"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormImportRepository implements ports.ImportRepository using GORM.
type GormImportRepository struct {
	db *gorm.DB
}

// NewGormImportRepository creates a new GORM import batch repository.
func NewGormImportRepository(db *gorm.DB) *GormImportRepository {
	return &GormImportRepository{db: db}
}

// Add saves a new batch to the database.
func (r *GormImportRepository) Add(ctx context.Context, batch *imports.Batch) error {
	dto, err := fromDomain(batch)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing batch to the database.
func (r *GormImportRepository) Update(ctx context.Context, batch *imports.Batch) error {
	dto, err := fromDomain(batch)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&BatchDTO{}).
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

// Get retrieves a batch by ID.
func (r *GormImportRepository) Get(ctx context.Context, id kernel.UUID) (*imports.Batch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BatchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("import batch", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
