// Package otprepo provides the GORM-backed repository for delivery
// confirmation codes.
package otprepo

import (
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/otp"

	"github.com/google/uuid"
)

// TokenDTO is the database row shape for OTP tokens.
type TokenDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	OtpType     string    `gorm:"type:varchar(16);index"`
	Code        string    `gorm:"type:varchar(6)"`
	Destination string
	ExpiresAt   time.Time
	VerifiedAt  *time.Time
	Invalidated bool
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "otp_tokens".
func (TokenDTO) TableName() string {
	return "otp_tokens"
}

func fromDomain(token *otp.Token) TokenDTO {
	return TokenDTO{
		ID:          token.ID().Bytes(),
		OrderID:     token.OrderID().Bytes(),
		OtpType:     string(token.Type()),
		Code:        token.Code(),
		Destination: token.Destination(),
		ExpiresAt:   token.ExpiresAt(),
		VerifiedAt:  token.VerifiedAt(),
		Invalidated: token.Invalidated(),
		CreatedAt:   token.CreatedAt(),
	}
}

func toDomain(dto TokenDTO) (*otp.Token, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return otp.RestoreToken(
		id,
		orderID,
		otp.TokenType(dto.OtpType),
		dto.Code,
		dto.Destination,
		dto.ExpiresAt,
		dto.VerifiedAt,
		dto.Invalidated,
		dto.CreatedAt,
	), nil
}
