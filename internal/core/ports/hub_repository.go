package ports

import (
	"context"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/hub"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
)

// HubRepository is the persistence contract for hubs.
type HubRepository interface {
	// Add persists a new hub.
	Add(ctx context.Context, aggregate *hub.Hub) error

	// Get retrieves a hub by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*hub.Hub, error)
}
