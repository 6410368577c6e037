package ports

import (
	"context"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/imports"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
)

// ImportRepository is the persistence contract for CSV import batches.
type ImportRepository interface {
	// Add persists a new batch.
	Add(ctx context.Context, batch *imports.Batch) error

	// Update persists changes to an existing batch.
	Update(ctx context.Context, batch *imports.Batch) error

	// Get retrieves a batch by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*imports.Batch, error)
}
