package commands

import (
	"context"
	"errors"

	"pawnops/internal/core/domain/model/assignment"
	"pawnops/internal/pkg/errs"
)

// ExpireOverdueAssignmentsCommandHandler moves every active assignment
// whose due date has passed into the EXPIRED state. Rows that a
// concurrent request moves first are skipped, so the sweep is safe to
// run from overlapping scheduler ticks.
type ExpireOverdueAssignmentsCommandHandler struct {
	uowFactory AssignmentUoWFactory
	settlement SettlementCoordinator
}

// NewExpireOverdueAssignmentsCommandHandler creates a handler for the
// scheduled overdue sweep.
func NewExpireOverdueAssignmentsCommandHandler(
	uowFactory AssignmentUoWFactory,
	settlement SettlementCoordinator,
) ExpireOverdueAssignmentsCommandHandler {
	return ExpireOverdueAssignmentsCommandHandler{
		uowFactory: uowFactory,
		settlement: settlement,
	}
}

// Handle expires all overdue assignments and returns how many rows were
// actually moved.
func (h *ExpireOverdueAssignmentsCommandHandler) Handle(
	ctx context.Context,
	cmd ExpireOverdueAssignmentsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AssignmentRepository()
	overdue, err := repo.GetAllOverdue(ctx, cmd.AsOf())
	if err != nil {
		return 0, err
	}

	expired := make([]*assignment.Assignment, 0, len(overdue))
	for _, aggregate := range overdue {
		expected := aggregate.Status()
		if err = aggregate.Override(assignment.StatusExpired, "due date passed", cmd.AsOf()); err != nil {
			return 0, err
		}

		if err = repo.UpdateIfStatus(ctx, aggregate, expected); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return 0, err
		}

		expired = append(expired, aggregate)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, aggregate := range expired {
		h.settlement.SyncDriverStatus(ctx, aggregate)
	}

	return len(expired), nil
}
