// Package attemptrepo provides the GORM-backed repository for the
// append-only delivery attempt log.
package attemptrepo

import (
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/attempt"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AttemptDTO is the database row shape for delivery attempts.
type AttemptDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID  `gorm:"type:uuid;index"`
	RouteID       *uuid.UUID `gorm:"type:uuid"`
	DriverID      *uuid.UUID `gorm:"type:uuid"`
	AttemptNumber int
	Outcome       string `gorm:"type:varchar(16)"`
	FailureReason string
	Notes         string
	RecipientName string
	CODCollected  bool     `gorm:"column:cod_collected"`
	CODAmount     *float64 `gorm:"column:cod_amount"`
	AttemptedAt   time.Time
}

// TableName overrides GORM's default naming to use "delivery_attempts".
func (AttemptDTO) TableName() string {
	return "delivery_attempts"
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	k, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func fromDomain(aggregate *attempt.Attempt) AttemptDTO {
	return AttemptDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		RouteID:       optionalUUID(aggregate.RouteID()),
		DriverID:      optionalUUID(aggregate.DriverID()),
		AttemptNumber: aggregate.AttemptNumber(),
		Outcome:       string(aggregate.Outcome()),
		FailureReason: aggregate.FailureReason(),
		Notes:         aggregate.Notes(),
		RecipientName: aggregate.Proof().RecipientName,
		CODCollected:  aggregate.Proof().CODCollected,
		CODAmount:     aggregate.Proof().CODAmount,
		AttemptedAt:   aggregate.AttemptedAt(),
	}
}

func toDomain(dto AttemptDTO) (*attempt.Attempt, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	routeID, err := optionalKernelUUID(dto.RouteID)
	if err != nil {
		return nil, err
	}
	driverID, err := optionalKernelUUID(dto.DriverID)
	if err != nil {
		return nil, err
	}

	return attempt.RestoreAttempt(
		id,
		orderID,
		routeID,
		driverID,
		dto.AttemptNumber,
		attempt.Outcome(dto.Outcome),
		dto.FailureReason,
		dto.Notes,
		attempt.Proof{
			RecipientName: dto.RecipientName,
			CODCollected:  dto.CODCollected,
			CODAmount:     dto.CODAmount,
		},
		dto.AttemptedAt,
	), nil
}
