// Package jobs provides scheduled background tasks for the back office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for branch capital and delivery
// assignment housekeeping.
//
// # Available Jobs
//
// 1. AssignmentExpiryJob - Sweeps active assignments whose due date has passed and marks them EXPIRED
// 2. ReconciliationReportJob - Surfaces unresolved settlement failures so operators notice them
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expiryHandler, reconciliationHandler, schedules, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions (seconds included) supplied by
// configuration. The defaults run the expiry sweep once a minute and the
// reconciliation report once an hour.
//
// # Error Handling
//
// - The expiry job treats rows moved by a concurrent request as already handled, not as errors
// - The reconciliation job logs unresolved records at WARN so they show up in log-based alerting
// - Failed job starts will stop any already running jobs
package jobs
