package commands

import (
	"context"
	"time"

	"pawnops/internal/core/domain/model/assignment"
	"pawnops/internal/pkg/errs"
)

// VerifyDropoffResult reports what delivery completion changed beyond the
// assignment itself.
type VerifyDropoffResult struct {
	Assignment *assignment.Assignment

	// ItemsUpdated is how many inventory rows moved to the destination
	// branch.
	ItemsUpdated int64

	// NewBranchID is the destination branch the items now belong to, nil
	// for vault destinations.
	NewBranchID *int64
}

// VerifyDropoffCommandHandler moves an assignment from IN_PROGRESS to
// COMPLETED when the assigned driver confirms delivery, then settles the
// completion: items relocate to the destination branch and capital-type
// assignments credit the destination ledger. Settlement runs after the
// status commit; its failures land in the reconciliation log rather than
// undoing the delivery.
type VerifyDropoffCommandHandler struct {
	uowFactory AssignmentUoWFactory
	settlement SettlementCoordinator
}

// NewVerifyDropoffCommandHandler creates a handler for delivery
// confirmation.
func NewVerifyDropoffCommandHandler(
	uowFactory AssignmentUoWFactory,
	settlement SettlementCoordinator,
) VerifyDropoffCommandHandler {
	return VerifyDropoffCommandHandler{
		uowFactory: uowFactory,
		settlement: settlement,
	}
}

// Handle processes the delivery confirmation.
func (h *VerifyDropoffCommandHandler) Handle(
	ctx context.Context,
	cmd VerifyDropoffCommand,
) (VerifyDropoffResult, error) {
	if err := cmd.Validate(); err != nil {
		return VerifyDropoffResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return VerifyDropoffResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AssignmentRepository()
	aggregate, err := repo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return VerifyDropoffResult{}, err
	}

	if err = authorizeDriverAction(cmd.Actor(), aggregate, "verify dropoff"); err != nil {
		return VerifyDropoffResult{}, err
	}

	// Anything other than IN_PROGRESS, including a repeated dropoff on a
	// COMPLETED assignment, reads as no deliverable assignment, the same
	// answer a lost UpdateIfStatus race gives.
	expected := aggregate.Status()
	if expected != assignment.StatusInProgress {
		return VerifyDropoffResult{}, errs.NewObjectNotFoundError(
			"assignment in status "+assignment.StatusInProgress.String(), cmd.AssignmentID())
	}

	if err = aggregate.VerifyDropoff(cmd.DropoffImage(), time.Now()); err != nil {
		return VerifyDropoffResult{}, err
	}

	if err = repo.UpdateIfStatus(ctx, aggregate, expected); err != nil {
		return VerifyDropoffResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return VerifyDropoffResult{}, err
	}

	itemsUpdated := h.settlement.OnAssignmentCompleted(ctx, aggregate)
	h.settlement.SyncDriverStatus(ctx, aggregate)

	return VerifyDropoffResult{
		Assignment:   aggregate,
		ItemsUpdated: itemsUpdated,
		NewBranchID:  aggregate.ToBranchID(),
	}, nil
}
