package otprepo

import (
	"context"
	"errors"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/otp"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOtpRepository implements ports.OtpRepository using GORM.
type GormOtpRepository struct {
	db *gorm.DB
}

// NewGormOtpRepository creates a new GORM OTP repository.
func NewGormOtpRepository(db *gorm.DB) *GormOtpRepository {
	return &GormOtpRepository{db: db}
}

// Add saves a newly issued token to the database.
func (r *GormOtpRepository) Add(ctx context.Context, token *otp.Token) error {
	dto := fromDomain(token)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing token to the database.
func (r *GormOtpRepository) Update(ctx context.Context, token *otp.Token) error {
	dto := fromDomain(token)
	result := r.db.WithContext(ctx).Model(&TokenDTO{}).
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

// GetActiveByOrder retrieves the order's newest token of the given type
// that has been neither invalidated nor verified. Expiry is checked by the
// caller against the token itself.
func (r *GormOtpRepository) GetActiveByOrder(ctx context.Context, orderID kernel.UUID, tokenType otp.TokenType) (*otp.Token, error) {
	var dto TokenDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND otp_type = ? AND invalidated = ? AND verified_at IS NULL",
			orderID.Bytes(), string(tokenType), false).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active otp for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// InvalidateActiveByOrder retires every active token of the given type for
// the order. Tokens of the other type are untouched, and invalidating when
// no active token exists is not an error.
func (r *GormOtpRepository) InvalidateActiveByOrder(ctx context.Context, orderID kernel.UUID, tokenType otp.TokenType) error {
	return r.db.WithContext(ctx).Model(&TokenDTO{}).
		Where("order_id = ? AND otp_type = ? AND invalidated = ? AND verified_at IS NULL",
			orderID.Bytes(), string(tokenType), false).
		Update("invalidated", true).Error
}
