// Package hubrepo provides the GORM-backed repository for hubs.
package hubrepo

import (
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/hub"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// HubDTO is the database row shape for hubs.
type HubDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Code       string `gorm:"uniqueIndex"`
	City       string
	PostalCode string
	IsActive   bool
}

// TableName overrides GORM's default naming to use "hubs".
func (HubDTO) TableName() string {
	return "hubs"
}

func fromDomain(aggregate *hub.Hub) HubDTO {
	return HubDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		Code:       aggregate.Code(),
		City:       aggregate.City(),
		PostalCode: aggregate.PostalCode(),
		IsActive:   aggregate.IsActive(),
	}
}

func toDomain(dto HubDTO) (*hub.Hub, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return hub.RestoreHub(id, dto.Name, dto.Code, dto.City, dto.PostalCode, dto.IsActive)
}
