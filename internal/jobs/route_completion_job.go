package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mantoshmedhansh-dot/lma/internal/core/application/usecases/commands"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// RouteCompletionJob is the reconciliation pass for dispatched routes.
// Drivers settle stops one by one; once every stop on a route is terminal
// the route itself is completed, releasing its driver and vehicle. Runs
// every minute.
type RouteCompletionJob struct {
	handler    commands.CompleteRouteCommandHandler
	uowFactory commands.StopUoWFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewRouteCompletionJob creates the job. The unit-of-work factory is used
// for the read-side sweep; completion itself goes through the command
// handler so the cascade stays in one place.
func NewRouteCompletionJob(
	handler commands.CompleteRouteCommandHandler,
	uowFactory commands.StopUoWFactory,
	logger *slog.Logger,
) *RouteCompletionJob {
	return &RouteCompletionJob{
		handler:    handler,
		uowFactory: uowFactory,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "route_completion_job"),
	}
}

// Start schedules the sweep to run at the top of every minute.
func (j *RouteCompletionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.sweep(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Route completion sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Route completion job started (running every minute)")
	return nil
}

// Stop stops the job.
func (j *RouteCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Route completion job stopped")
}

func (j *RouteCompletionJob) sweep(ctx context.Context) error {
	uow := j.uowFactory.Create()
	routes, err := uow.RouteRepository().GetAllInProgress(ctx)
	if err != nil {
		return err
	}

	for _, r := range routes {
		stops, err := uow.RouteRepository().GetStops(ctx, r.ID())
		if err != nil {
			return err
		}
		if len(stops) == 0 {
			continue
		}

		settled := true
		for _, stop := range stops {
			if !stop.Status().IsTerminal() {
				settled = false
				break
			}
		}
		if !settled {
			continue
		}

		cmd, err := commands.NewCompleteRouteCommand(r.ID())
		if err != nil {
			return err
		}
		if err := j.handler.Handle(ctx, cmd); err != nil {
			// A concurrent manual completion is fine; anything else is not.
			if errors.Is(err, errs.ErrConflict) {
				continue
			}
			j.logger.ErrorContext(ctx, "Failed to complete route",
				"route", r.Name(), "error", err)
		}
	}

	return nil
}
