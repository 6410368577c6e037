// Package importrepo provides the GORM-backed repository for CSV import
// batches. Row errors are stored as a JSON document alongside the counters.
package importrepo

import (
	"encoding/json"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/imports"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BatchDTO is the database row shape for import batches.
type BatchDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	HubID      uuid.UUID `gorm:"type:uuid;index"`
	FileName   string
	TotalRows  int
	Processed  int
	Failed     int
	ErrorLog   []byte `gorm:"type:jsonb"`
	Status     string `gorm:"type:varchar(32)"`
	CreatedBy  string
	CreatedAt  time.Time
	FinishedAt *time.Time
}

// TableName overrides GORM's default naming to use "order_imports".
func (BatchDTO) TableName() string {
	return "order_imports"
}

func fromDomain(batch *imports.Batch) (BatchDTO, error) {
	rowErrors := batch.RowErrors()
	if rowErrors == nil {
		rowErrors = []imports.RowError{}
	}
	errorLog, err := json.Marshal(rowErrors)
	if err != nil {
		return BatchDTO{}, err
	}

	return BatchDTO{
		ID:         batch.ID().Bytes(),
		HubID:      batch.HubID().Bytes(),
		FileName:   batch.FileName(),
		TotalRows:  batch.TotalRows(),
		Processed:  batch.Processed(),
		Failed:     batch.Failed(),
		ErrorLog:   errorLog,
		Status:     string(batch.Status()),
		CreatedBy:  batch.CreatedBy(),
		CreatedAt:  batch.CreatedAt(),
		FinishedAt: batch.FinishedAt(),
	}, nil
}

func toDomain(dto BatchDTO) (*imports.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	hubID, err := kernel.UUIDFromBytes(dto.HubID[:])
	if err != nil {
		return nil, err
	}

	var rowErrors []imports.RowError
	if len(dto.ErrorLog) > 0 {
		if err := json.Unmarshal(dto.ErrorLog, &rowErrors); err != nil {
			return nil, err
		}
	}

	return imports.RestoreBatch(
		id,
		hubID,
		dto.FileName,
		dto.TotalRows,
		dto.Processed,
		dto.Failed,
		rowErrors,
		imports.BatchStatus(dto.Status),
		dto.CreatedBy,
		dto.CreatedAt,
		dto.FinishedAt,
	)
}
