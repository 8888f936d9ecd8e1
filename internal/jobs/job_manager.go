package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"docdispatch/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchRetryJob *DispatchRetryJob
	invoiceExpiryJob *InvoiceExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	dispatchHandler commands.DispatchPendingOrdersCommandHandler,
	expireHandler commands.ExpireInvoicesCommandHandler,
	invoiceExpiryWindow time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatchRetryJob: NewDispatchRetryJob(dispatchHandler, logger),
		invoiceExpiryJob: NewInvoiceExpiryJob(expireHandler, invoiceExpiryWindow, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchRetryJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch retry job: %w", err)
	}

	if err := jm.invoiceExpiryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dispatchRetryJob.Stop()
		return fmt.Errorf("failed to start invoice expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.invoiceExpiryJob.Stop()
	jm.dispatchRetryJob.Stop()
}
