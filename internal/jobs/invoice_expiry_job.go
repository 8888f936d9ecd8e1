package jobs

import (
	"context"
	"log/slog"
	"time"

	"docdispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// InvoiceExpiryJob periodically closes pending invoices nobody paid.
// The expiry window is configuration; invoices older than the window are
// moved to expired so their references stop being payable.
type InvoiceExpiryJob struct {
	handler commands.ExpireInvoicesCommandHandler
	window  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewInvoiceExpiryJob creates a job that expires stale pending invoices.
func NewInvoiceExpiryJob(
	handler commands.ExpireInvoicesCommandHandler, window time.Duration, logger *slog.Logger,
) *InvoiceExpiryJob {
	return &InvoiceExpiryJob{
		handler: handler,
		window:  window,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "invoice_expiry_job"),
	}
}

// Start schedules the expiry sweep to run every five minutes.
func (j *InvoiceExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-j.window)

		cmd, err := commands.NewExpireInvoicesCommand(cutoff)
		if err != nil {
			j.logger.ErrorContext(ctx, "Invoice expiry sweep misconfigured", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Invoice expiry sweep failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Invoice expiry sweep finished", "expired", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Invoice expiry job started (running every five minutes)",
		"window", j.window.String())
	return nil
}

// Stop stops the invoice expiry job.
func (j *InvoiceExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Invoice expiry job stopped")
}
