package jobs

import (
	"context"
	"log/slog"
	"time"

	"pawnops/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AssignmentExpiryJob periodically sweeps active assignments whose due
// date has passed and marks them EXPIRED. The sweep is idempotent, so
// overlapping ticks are harmless.
type AssignmentExpiryJob struct {
	handler  commands.ExpireOverdueAssignmentsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAssignmentExpiryJob creates a job that runs the overdue sweep on the
// given six-field cron schedule.
func NewAssignmentExpiryJob(
	handler commands.ExpireOverdueAssignmentsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *AssignmentExpiryJob {
	return &AssignmentExpiryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "assignment_expiry_job"),
	}
}

// Start begins the scheduled overdue sweep.
func (j *AssignmentExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireOverdueAssignmentsCommand(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Assignment expiry job failed to build command", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Assignment expiry job failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired overdue assignments", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment expiry job started", "schedule", j.schedule)
	return nil
}

// Stop stops the assignment expiry job.
func (j *AssignmentExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assignment expiry job stopped")
}
