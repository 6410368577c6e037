// Package jobs provides scheduled background tasks for the delivery hub.
//
// Jobs are cron-driven (github.com/robfig/cron/v3) and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(completeRouteHandler, uowFactory, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// RouteCompletionJob runs every minute and completes every in-progress
// route whose stops have all reached a terminal state. Completion goes
// through CompleteRouteCommandHandler, so the driver and vehicle release
// cascade is identical to a manual completion.
package jobs
