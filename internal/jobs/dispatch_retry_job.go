package jobs

import (
	"context"
	"log/slog"

	"docdispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DispatchRetryJob periodically re-dispatches orders that are still waiting
// for a delegate. Orders land in this pool when no delegate covered their
// territory at payment time; a later delegate registration makes them
// dispatchable again.
type DispatchRetryJob struct {
	handler commands.DispatchPendingOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchRetryJob creates a job that retries dispatch for unassigned orders.
func NewDispatchRetryJob(
	handler commands.DispatchPendingOrdersCommandHandler, logger *slog.Logger,
) *DispatchRetryJob {
	return &DispatchRetryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispatch_retry_job"),
	}
}

// Start schedules the retry pass to run at the top of every minute.
func (j *DispatchRetryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchPendingOrdersCommand()

		results, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Dispatch retry pass failed", "error", err)
			return
		}

		assigned := 0
		for _, result := range results {
			if result.Outcome == commands.DispatchAssigned {
				assigned++
			}
		}

		// An empty pool is the normal case; only a pass that did work is worth a line.
		if len(results) > 0 {
			j.logger.InfoContext(ctx, "Dispatch retry pass finished",
				"attempted", len(results), "assigned", assigned)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch retry job started (running every minute)")
	return nil
}

// Stop stops the dispatch retry job.
func (j *DispatchRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch retry job stopped")
}
