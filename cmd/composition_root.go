package cmd

import (
	"log/slog"
	"os"

	"pawnops/internal/adapters/out/postgres"
	"pawnops/internal/core/application/usecases/commands"
	"pawnops/internal/core/application/usecases/queries"
	"pawnops/internal/core/domain/services"
	"pawnops/internal/jobs"
	"pawnops/internal/tracking"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config            Config
	gormDB            *gorm.DB
	uowFactory        postgres.GormUnitOfWorkFactory
	ledgerService     *services.LedgerService
	settlementService *services.SettlementService
	tracker           *tracking.Tracker
	logger            *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	ledgerService, err := services.NewLedgerService(uowFactory)
	if err != nil {
		return CompositionRoot{}, err
	}

	settlementService, err := services.NewSettlementService(uowFactory, ledgerService, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:            config,
		gormDB:            gormDB,
		uowFactory:        *uowFactory,
		ledgerService:     ledgerService,
		settlementService: settlementService,
		tracker:           tracking.NewTracker(),
		logger:            logger,
	}, nil
}

func (c *CompositionRoot) Tracker() *tracking.Tracker {
	return c.tracker
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) assignmentUoWFactory() commands.AssignmentUoWFactory {
	return FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateAssignmentCommandHandler() commands.CreateAssignmentCommandHandler {
	return commands.NewCreateAssignmentCommandHandler(c.assignmentUoWFactory(), c.settlementService)
}

func (c *CompositionRoot) CreateVerifyPickupCommandHandler() commands.VerifyPickupCommandHandler {
	return commands.NewVerifyPickupCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateVerifyDropoffCommandHandler() commands.VerifyDropoffCommandHandler {
	return commands.NewVerifyDropoffCommandHandler(c.assignmentUoWFactory(), c.settlementService)
}

func (c *CompositionRoot) CreateSetAssignmentStatusCommandHandler() commands.SetAssignmentStatusCommandHandler {
	return commands.NewSetAssignmentStatusCommandHandler(c.assignmentUoWFactory(), c.settlementService)
}

func (c *CompositionRoot) CreateRecordLoanDisbursementCommandHandler() commands.RecordLoanDisbursementCommandHandler {
	return commands.NewRecordLoanDisbursementCommandHandler(c.ledgerService)
}

func (c *CompositionRoot) CreateExpireOverdueAssignmentsCommandHandler() commands.ExpireOverdueAssignmentsCommandHandler {
	return commands.NewExpireOverdueAssignmentsCommandHandler(c.assignmentUoWFactory(), c.settlementService)
}

func (c *CompositionRoot) CreateGetActiveAssignmentsQueryHandler() queries.GetActiveAssignmentsQueryHandler {
	return queries.NewGetActiveAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBranchAssignmentsQueryHandler() queries.GetBranchAssignmentsQueryHandler {
	return queries.NewGetBranchAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignmentQueryHandler() queries.GetAssignmentQueryHandler {
	return queries.NewGetAssignmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBranchCapitalQueryHandler() queries.GetBranchCapitalQueryHandler {
	return queries.NewGetBranchCapitalQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBranchLedgerQueryHandler() queries.GetBranchLedgerQueryHandler {
	return queries.NewGetBranchLedgerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReconciliationLogQueryHandler() queries.GetReconciliationLogQueryHandler {
	return queries.NewGetReconciliationLogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpireOverdueAssignmentsCommandHandler(),
		c.CreateGetReconciliationLogQueryHandler(),
		jobs.Schedules{
			AssignmentExpiry:     c.config.AssignmentExpirySchedule,
			ReconciliationReport: c.config.ReconciliationReportSchedule,
		},
		c.logger,
	)
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}
