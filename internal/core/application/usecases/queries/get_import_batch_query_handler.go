package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/imports"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

// GetImportBatchQueryHandler reads one import batch row. The error log is
// stored as JSON and decoded here.
type GetImportBatchQueryHandler struct {
	db *gorm.DB
}

func NewGetImportBatchQueryHandler(db *gorm.DB) GetImportBatchQueryHandler {
	return GetImportBatchQueryHandler{db: db}
}

func (h GetImportBatchQueryHandler) Handle(ctx context.Context, query GetImportBatchQuery) (ImportBatchResponse, error) {
	if err := query.Validate(); err != nil {
		return ImportBatchResponse{}, err
	}

	var row struct {
		ID         uuid.UUID
		HubID      uuid.UUID
		FileName   string
		TotalRows  int
		Processed  int
		Failed     int
		ErrorLog   []byte
		Status     string
		CreatedBy  string
		CreatedAt  time.Time
		FinishedAt *time.Time
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			hub_id,
			file_name,
			total_rows,
			processed,
			failed,
			error_log,
			status,
			created_by,
			created_at,
			finished_at
		FROM order_imports
		WHERE id = ?
	`, query.BatchID().Bytes()).Row().Scan(
		&row.ID,
		&row.HubID,
		&row.FileName,
		&row.TotalRows,
		&row.Processed,
		&row.Failed,
		&row.ErrorLog,
		&row.Status,
		&row.CreatedBy,
		&row.CreatedAt,
		&row.FinishedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ImportBatchResponse{}, errs.NewObjectNotFoundError("import_id", query.BatchID())
	}
	if err != nil {
		return ImportBatchResponse{}, err
	}

	response := ImportBatchResponse{
		FileName:   row.FileName,
		TotalRows:  row.TotalRows,
		Processed:  row.Processed,
		Failed:     row.Failed,
		Status:     row.Status,
		CreatedBy:  row.CreatedBy,
		CreatedAt:  row.CreatedAt,
		FinishedAt: row.FinishedAt,
	}
	if response.ID, err = kernel.UUIDFromBytes(row.ID[:]); err != nil {
		return ImportBatchResponse{}, err
	}
	if response.HubID, err = kernel.UUIDFromBytes(row.HubID[:]); err != nil {
		return ImportBatchResponse{}, err
	}
	if len(row.ErrorLog) > 0 {
		var rowErrors []imports.RowError
		if err = json.Unmarshal(row.ErrorLog, &rowErrors); err != nil {
			return ImportBatchResponse{}, err
		}
		response.Errors = rowErrors
	}

	return response, nil
}
