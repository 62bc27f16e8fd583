package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pawnops/internal/core/domain/model/assignment"
	"pawnops/internal/core/domain/model/ledger"
	"pawnops/internal/core/ports"
)

// SettlementService applies the capital, inventory and driver-status
// consequences of the assignment lifecycle.
//
// Every consequence is best-effort by design: the assignment write has
// already committed when settlement runs, so a failed consequence is
// logged and recorded in the reconciliation log instead of rolling
// anything back. Operators work off that log.
type SettlementService struct {
	uowFactory ports.UnitOfWorkFactory
	ledger     *LedgerService
	logger     *slog.Logger
}

// NewSettlementService creates a SettlementService.
func NewSettlementService(
	uowFactory ports.UnitOfWorkFactory,
	ledgerService *LedgerService,
	logger *slog.Logger,
) (*SettlementService, error) {
	if uowFactory == nil {
		return nil, fmt.Errorf("uowFactory is required")
	}
	if ledgerService == nil {
		return nil, fmt.Errorf("ledgerService is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SettlementService{
		uowFactory: uowFactory,
		ledger:     ledgerService,
		logger:     logger,
	}, nil
}

// OnAssignmentCreated posts the outbound capital deduction against the
// source branch of a capital-type assignment. Assignments that move no
// capital out of a branch are a no-op.
func (s *SettlementService) OnAssignmentCreated(ctx context.Context, a *assignment.Assignment) {
	if !a.RequiresOutboundSettlement() {
		return
	}

	description := fmt.Sprintf("Assignment %s source deduction (%s)", a.ID(), a.Type())
	_, err := s.ledger.PostEntry(ctx, *a.FromBranchID(), ledger.TransferOut,
		a.Amount().Neg(), nil, description, a.CreatedAt())
	if err != nil {
		s.recordFailure(ctx, a, ports.StepLedgerOutbound, err)
	}
}

// OnAssignmentCompleted relocates carried items to the destination branch
// and posts the inbound capital addition. The two sub-steps are
// independent: a failure in one never blocks the other. Returns how many
// inventory rows moved.
func (s *SettlementService) OnAssignmentCompleted(ctx context.Context, a *assignment.Assignment) int64 {
	var itemsUpdated int64

	if a.RequiresItemRelocation() {
		updated, err := s.relocateItems(ctx, a)
		if err != nil {
			s.recordFailure(ctx, a, ports.StepItemRelocation, err)
		} else {
			itemsUpdated = updated
		}
	}

	if a.RequiresInboundSettlement() {
		description := fmt.Sprintf("Assignment %s destination addition (%s)", a.ID(), a.Type())
		_, err := s.ledger.PostEntry(ctx, *a.ToBranchID(), ledger.TransferIn,
			*a.Amount(), nil, description, time.Now())
		if err != nil {
			s.recordFailure(ctx, a, ports.StepLedgerInbound, err)
		}
	}

	return itemsUpdated
}

// SyncDriverStatus mirrors the assignment's activity onto the driver's
// role-scoped logistics status field. The column is owned by the role of
// the principal who created the assignment, so that role is looked up
// from the assigner's account on every edge; a dropoff verified by the
// driver must reset the same column the creation edge set. Best-effort,
// last write wins.
func (s *SettlementService) SyncDriverStatus(ctx context.Context, a *assignment.Assignment) {
	status := ports.DriverStatusStandby
	if a.Status().IsActive() {
		status = ports.DriverStatusAssigned
	}

	err := s.withUnitOfWork(ctx, func(uow ports.UnitOfWork) error {
		accounts := uow.AccountRepository()
		assignerRole, err := accounts.GetRole(ctx, a.AssignedBy())
		if err != nil {
			return err
		}
		return accounts.SetDriverLogisticsStatus(ctx, a.AssignedTo(), assignerRole, status)
	})
	if err != nil {
		s.recordFailure(ctx, a, ports.StepDriverStatus, err)
	}
}

func (s *SettlementService) relocateItems(ctx context.Context, a *assignment.Assignment) (int64, error) {
	var updated int64
	err := s.withUnitOfWork(ctx, func(uow ports.UnitOfWork) error {
		var err error
		updated, err = uow.InventoryRepository().RelocateItems(ctx, a.Items(), *a.ToBranchID())
		return err
	})
	return updated, err
}

// recordFailure logs the failed side effect and appends a reconciliation
// record. A failure to write the record is itself only logged; the ledger
// entries and assignment rows remain the source of truth for replay.
func (s *SettlementService) recordFailure(ctx context.Context, a *assignment.Assignment, step ports.ReconciliationStep, cause error) {
	s.logger.WarnContext(ctx, "settlement side effect failed",
		"assignment_id", a.ID().String(),
		"step", string(step),
		"error", cause,
	)

	record := &ports.ReconciliationRecord{
		AssignmentID: a.ID().String(),
		Step:         step,
		Detail:       cause.Error(),
		CreatedAt:    time.Now(),
	}

	err := s.withUnitOfWork(ctx, func(uow ports.UnitOfWork) error {
		return uow.ReconciliationRepository().Add(ctx, record)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to write reconciliation record",
			"assignment_id", a.ID().String(),
			"step", string(step),
			"error", err,
		)
	}
}

func (s *SettlementService) withUnitOfWork(ctx context.Context, fn func(ports.UnitOfWork) error) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback(ctx) //nolint:errcheck // no-op after commit

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
