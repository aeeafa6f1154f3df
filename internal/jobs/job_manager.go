package jobs

import (
	"fmt"

	"dispatch/internal/core/application/usecases/queries"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderStatsJob *OrderStatsJob
}

// NewJobManager creates a job manager with all required jobs wired up.
func NewJobManager(
	statsHandler queries.GetOrderStatsQueryHandler,
	statsSchedule string,
	log *zap.SugaredLogger,
) *JobManager {
	return &JobManager{
		orderStatsJob: NewOrderStatsJob(statsHandler, statsSchedule, log),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start order stats job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStatsJob.Stop()
}
