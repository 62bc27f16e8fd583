package jobs

import (
	"fmt"
	"log/slog"

	"pawnops/internal/core/application/usecases/commands"
	"pawnops/internal/core/application/usecases/queries"
)

// Schedules carries the six-field cron expressions for each job.
type Schedules struct {
	AssignmentExpiry     string
	ReconciliationReport string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	assignmentExpiryJob     *AssignmentExpiryJob
	reconciliationReportJob *ReconciliationReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes handlers as dependencies to wire up the job execution.
func NewJobManager(
	expiryHandler commands.ExpireOverdueAssignmentsCommandHandler,
	reconciliationHandler queries.GetReconciliationLogQueryHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		assignmentExpiryJob:     NewAssignmentExpiryJob(expiryHandler, schedules.AssignmentExpiry, logger),
		reconciliationReportJob: NewReconciliationReportJob(reconciliationHandler, schedules.ReconciliationReport, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.assignmentExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start assignment expiry job: %w", err)
	}

	if err := jm.reconciliationReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.assignmentExpiryJob.Stop()
		return fmt.Errorf("failed to start reconciliation report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.assignmentExpiryJob.Stop()
	jm.reconciliationReportJob.Stop()
}
