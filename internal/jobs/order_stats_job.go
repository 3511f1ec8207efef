package jobs

import (
	"context"
	"log/slog"

	"github.com/ryzhova/moberris/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderStatsJob periodically logs the order count per status.
// Runs every minute so operators can follow order flow without a dashboard.
type OrderStatsJob struct {
	handler queries.GetOrderStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderStatsJob creates a job that reports the order status census.
func NewOrderStatsJob(handler queries.GetOrderStatsQueryHandler, logger *slog.Logger) *OrderStatsJob {
	return &OrderStatsJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_stats_job"),
	}
}

// Start begins the order stats job to run every minute.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOrderStatsQuery()

		stats, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
			return
		}

		attrs := make([]any, 0, len(stats)*2)
		for _, stat := range stats {
			attrs = append(attrs, stat.Status, stat.Count)
		}
		j.logger.InfoContext(ctx, "Order status census", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started (running every minute)")
	return nil
}

// Stop stops the order stats job.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
