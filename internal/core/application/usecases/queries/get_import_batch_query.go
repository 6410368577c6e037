package queries

import (
	"errors"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/imports"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
)

var ErrGetImportBatchQueryIsNotConstructed = errors.New(
	"GetImportBatchQuery must be created via NewGetImportBatchQuery constructor",
)

// GetImportBatchQuery retrieves one import batch with its full error log,
// not just the preview returned at import time.
type GetImportBatchQuery struct {
	batchID kernel.UUID

	constructed bool
}

func NewGetImportBatchQuery(batchID kernel.UUID) (GetImportBatchQuery, error) {
	if err := batchID.Validate(); err != nil {
		return GetImportBatchQuery{}, err
	}
	return GetImportBatchQuery{batchID: batchID, constructed: true}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetImportBatchQuery) Validate() error {
	if !q.constructed {
		return ErrGetImportBatchQueryIsNotConstructed
	}
	return nil
}

func (q GetImportBatchQuery) BatchID() kernel.UUID { return q.batchID }

// ImportBatchResponse is the batch record with every row error.
type ImportBatchResponse struct {
	ID         kernel.UUID
	HubID      kernel.UUID
	FileName   string
	TotalRows  int
	Processed  int
	Failed     int
	Status     string
	CreatedBy  string
	CreatedAt  time.Time
	FinishedAt *time.Time
	Errors     []imports.RowError
}
