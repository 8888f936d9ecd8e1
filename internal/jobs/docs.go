// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the document service.
//
// # Available Jobs
//
// 1. DispatchRetryJob - Runs every minute to re-dispatch orders left without a delegate
// 2. InvoiceExpiryJob - Runs every five minutes to expire pending invoices past the payment window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, expireHandler, window, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Retry job logs a summary only for passes that actually attempted dispatch
// - Expiry job logs sweep failures and the count of invoices it closed
// - Failed job starts will stop any already running jobs
package jobs
