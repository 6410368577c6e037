// Package imports contains the bulk CSV ingestion batch and its row-level
// error accounting.
package imports

import (
	"fmt"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

// ErrorPreviewLimit caps how many row errors are surfaced in responses.
const ErrorPreviewLimit = 20

// BatchStatus is the terminal disposition of an import run.
type BatchStatus string

const (
	BatchProcessing          BatchStatus = "processing"
	BatchCompleted           BatchStatus = "completed"
	BatchCompletedWithErrors BatchStatus = "completed_with_errors"
	BatchFailed              BatchStatus = "failed"
)

// Validate checks that the status is one of the defined states.
func (s BatchStatus) Validate() error {
	switch s {
	case BatchProcessing, BatchCompleted, BatchCompletedWithErrors, BatchFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid import batch status", string(s)))
	}
}

// RowError records why one CSV row was rejected. Row numbers are 1-based
// and count the header row.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Batch tracks one CSV import run. Rows are recorded one at a time and the
// batch is finalized once the file is exhausted.
type Batch struct {
	id         kernel.UUID
	hubID      kernel.UUID
	fileName   string
	totalRows  int
	processed  int
	failed     int
	rowErrors  []RowError
	status     BatchStatus
	createdBy  string
	createdAt  time.Time
	finishedAt *time.Time
}

// NewBatch starts an import run in the processing state.
func NewBatch(id, hubID kernel.UUID, fileName, createdBy string, now time.Time) (*Batch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := hubID.Validate(); err != nil {
		return nil, err
	}
	if fileName == "" {
		return nil, errs.NewValueIsRequiredError("file_name")
	}

	return &Batch{
		id:        id,
		hubID:     hubID,
		fileName:  fileName,
		status:    BatchProcessing,
		createdBy: createdBy,
		createdAt: now,
	}, nil
}

// RestoreBatch reconstructs a batch from persistence.
func RestoreBatch(
	id, hubID kernel.UUID,
	fileName string,
	totalRows, processed, failed int,
	rowErrors []RowError,
	status BatchStatus,
	createdBy string,
	createdAt time.Time,
	finishedAt *time.Time,
) (*Batch, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Batch{
		id:         id,
		hubID:      hubID,
		fileName:   fileName,
		totalRows:  totalRows,
		processed:  processed,
		failed:     failed,
		rowErrors:  rowErrors,
		status:     status,
		createdBy:  createdBy,
		createdAt:  createdAt,
		finishedAt: finishedAt,
	}, nil
}

func (b *Batch) ID() kernel.UUID         { return b.id }
func (b *Batch) HubID() kernel.UUID      { return b.hubID }
func (b *Batch) FileName() string        { return b.fileName }
func (b *Batch) TotalRows() int          { return b.totalRows }
func (b *Batch) Processed() int          { return b.processed }
func (b *Batch) Failed() int             { return b.failed }
func (b *Batch) RowErrors() []RowError   { return b.rowErrors }
func (b *Batch) Status() BatchStatus     { return b.status }
func (b *Batch) CreatedBy() string       { return b.createdBy }
func (b *Batch) CreatedAt() time.Time    { return b.createdAt }
func (b *Batch) FinishedAt() *time.Time  { return b.finishedAt }

// RecordSuccess counts one imported row.
func (b *Batch) RecordSuccess() {
	b.totalRows++
	b.processed++
}

// RecordFailure counts one rejected row and keeps its error.
func (b *Batch) RecordFailure(row int, message string) {
	b.totalRows++
	b.failed++
	b.rowErrors = append(b.rowErrors, RowError{Row: row, Message: message})
}

// Finalize closes the batch. The run only counts as failed when nothing at
// all was imported; partial success completes with errors.
func (b *Batch) Finalize(now time.Time) error {
	if b.status != BatchProcessing {
		return errs.NewConflictError(
			fmt.Sprintf("import batch already finalized as %s", b.status))
	}

	switch {
	case b.processed == 0 && b.failed > 0:
		b.status = BatchFailed
	case b.failed > 0:
		b.status = BatchCompletedWithErrors
	default:
		b.status = BatchCompleted
	}
	b.finishedAt = &now
	return nil
}

// ErrorPreview returns at most ErrorPreviewLimit row errors.
func (b *Batch) ErrorPreview() []RowError {
	if len(b.rowErrors) <= ErrorPreviewLimit {
		return b.rowErrors
	}
	return b.rowErrors[:ErrorPreviewLimit]
}
