package jobs

import (
	"fmt"
	"log/slog"

	"github.com/mantoshmedhansh-dot/lma/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	routeCompletionJob *RouteCompletionJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	completeRouteHandler commands.CompleteRouteCommandHandler,
	uowFactory commands.StopUoWFactory,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		routeCompletionJob: NewRouteCompletionJob(completeRouteHandler, uowFactory, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.routeCompletionJob.Start(); err != nil {
		return fmt.Errorf("failed to start route completion job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.routeCompletionJob.Stop()
}
