package jobs

import (
	"context"
	"log/slog"

	"pawnops/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ReconciliationReportJob periodically reads the reconciliation log and
// logs every unresolved settlement failure at WARN. The log line is the
// alerting surface; the records themselves stay in the database until an
// operator resolves them.
type ReconciliationReportJob struct {
	handler  queries.GetReconciliationLogQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReconciliationReportJob creates a job that reports unresolved
// settlement failures on the given six-field cron schedule.
func NewReconciliationReportJob(
	handler queries.GetReconciliationLogQueryHandler,
	schedule string,
	logger *slog.Logger,
) *ReconciliationReportJob {
	return &ReconciliationReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "reconciliation_report_job"),
	}
}

// Start begins the scheduled reconciliation report.
func (j *ReconciliationReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		records, err := j.handler.Handle(ctx, queries.NewGetReconciliationLogQuery(true))
		if err != nil {
			j.logger.ErrorContext(ctx, "Reconciliation report job failed", "error", err)
			return
		}

		if len(records) == 0 {
			return
		}

		j.logger.WarnContext(ctx, "Unresolved settlement failures", "count", len(records))
		for _, record := range records {
			j.logger.WarnContext(ctx, "Settlement step needs manual reconciliation",
				"record_id", record.ID,
				"assignment_id", record.AssignmentID,
				"step", record.Step,
				"detail", record.Detail,
				"created_at", record.CreatedAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconciliation report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation report job.
func (j *ReconciliationReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reconciliation report job stopped")
}
