// Package jobs provides scheduled background tasks.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager, which starts and stops them together:
//
//	jobManager := jobs.NewJobManager(statsHandler, schedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs: ", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is OrderStatsJob, which periodically logs order counts
// per lifecycle status for operational visibility. Job failures are logged
// and never affect request handling.
package jobs
