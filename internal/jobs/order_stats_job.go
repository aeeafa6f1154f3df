package jobs

import (
	"context"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// OrderStatsJob periodically logs how many orders sit in each lifecycle
// status. It is the operational heartbeat of the store: a stuck pipeline
// shows up as a Pending count that only ever grows.
type OrderStatsJob struct {
	handler  queries.GetOrderStatsQueryHandler
	schedule string
	cron     *cron.Cron
	log      *zap.SugaredLogger
}

// NewOrderStatsJob creates the stats job. The schedule is a six-field cron
// expression (with seconds), e.g. "0 * * * * *" for once a minute.
func NewOrderStatsJob(
	handler queries.GetOrderStatsQueryHandler,
	schedule string,
	log *zap.SugaredLogger,
) *OrderStatsJob {
	return &OrderStatsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		log:      log.With("component", "order_stats_job"),
	}
}

// Start schedules the job.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
		if err != nil {
			j.log.Errorw("order stats job failed", "error", err)
			return
		}

		j.log.Infow("order stats",
			"total", stats.Total,
			"byStatus", stats.ByStatus,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.log.Infow("order stats job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job. Does not wait for an in-flight run.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.log.Infow("order stats job stopped")
}
