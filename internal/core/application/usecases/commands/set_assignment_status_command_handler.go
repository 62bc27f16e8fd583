package commands

import (
	"context"
	"time"

	"pawnops/internal/core/domain/model/assignment"
	"pawnops/internal/pkg/errs"
)

// SetAssignmentStatusCommandHandler applies back-office status overrides.
// Only admins and auditors may override; the aggregate rejects COMPLETED
// targets and transitions out of terminal states. After the override the
// driver's status mirror is refreshed, since a cancelled or failed
// assignment releases its driver.
type SetAssignmentStatusCommandHandler struct {
	uowFactory AssignmentUoWFactory
	settlement SettlementCoordinator
}

// NewSetAssignmentStatusCommandHandler creates a handler for status
// override operations.
func NewSetAssignmentStatusCommandHandler(
	uowFactory AssignmentUoWFactory,
	settlement SettlementCoordinator,
) SetAssignmentStatusCommandHandler {
	return SetAssignmentStatusCommandHandler{
		uowFactory: uowFactory,
		settlement: settlement,
	}
}

// Handle processes the status override and returns the updated aggregate.
func (h *SetAssignmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd SetAssignmentStatusCommand,
) (*assignment.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if !actor.IsAdmin() && !actor.IsAuditor() {
		return nil, errs.NewForbiddenError(actor.Role().String(), "override assignment status")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AssignmentRepository()
	aggregate, err := repo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return nil, err
	}

	expected := aggregate.Status()
	if err = aggregate.Override(cmd.Target(), cmd.Note(), time.Now()); err != nil {
		return nil, err
	}

	if err = repo.UpdateIfStatus(ctx, aggregate, expected); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.settlement.SyncDriverStatus(ctx, aggregate)

	return aggregate, nil
}
