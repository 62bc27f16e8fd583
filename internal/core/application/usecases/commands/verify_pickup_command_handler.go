package commands

import (
	"context"
	"time"

	"pawnops/internal/core/domain/model/assignment"
	"pawnops/internal/core/domain/model/principal"
	"pawnops/internal/pkg/errs"
)

// VerifyPickupCommandHandler moves an assignment from ASSIGNED to
// IN_PROGRESS when the assigned driver confirms pickup. The write is
// conditional on the stored row still being ASSIGNED, which makes
// concurrent duplicate confirmations collapse into one winner.
type VerifyPickupCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewVerifyPickupCommandHandler creates a handler for pickup confirmation.
func NewVerifyPickupCommandHandler(uowFactory AssignmentUoWFactory) VerifyPickupCommandHandler {
	return VerifyPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup confirmation and returns the updated
// aggregate.
func (h *VerifyPickupCommandHandler) Handle(
	ctx context.Context,
	cmd VerifyPickupCommand,
) (*assignment.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
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

	if err = authorizeDriverAction(cmd.Actor(), aggregate, "verify pickup"); err != nil {
		return nil, err
	}

	expected := aggregate.Status()
	if err = aggregate.VerifyPickup(cmd.ItemImage(), time.Now()); err != nil {
		return nil, err
	}

	if err = repo.UpdateIfStatus(ctx, aggregate, expected); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// authorizeDriverAction admits the assigned driver and admins.
func authorizeDriverAction(actor principal.Principal, aggregate *assignment.Assignment, operation string) error {
	if actor.IsAdmin() || actor.ID() == aggregate.AssignedTo() {
		return nil
	}

	return errs.NewForbiddenError(actor.Role().String(), operation+" for assignment "+aggregate.ID().String())
}
