package ports

import (
	"context"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/attempt"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
)

// AttemptRepository is the persistence contract for the delivery attempt log.
type AttemptRepository interface {
	// Add appends an attempt. Attempts are never updated or deleted.
	Add(ctx context.Context, aggregate *attempt.Attempt) error

	// GetByOrder retrieves an order's attempts in attempt-number order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*attempt.Attempt, error)

	// LastAttemptNumber reports the highest attempt number recorded for
	// the order, zero when none exist.
	LastAttemptNumber(ctx context.Context, orderID kernel.UUID) (int, error)
}
