// Package jobs provides scheduled background tasks for the pharmacy
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. PaymentSweepJob - Cancels gateway orders whose payment was never
// completed and releases their reserved stock.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sweepHandler, "*/5 * * * *", logger)
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
// A failing sweep run is logged and retried on the next tick. Orders that
// were paid or cancelled between listing and sweeping are skipped, so a
// race with a late payment callback never fails the sweep.
package jobs
