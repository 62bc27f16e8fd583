package commands

import (
	"context"
	"time"

	"pawnops/internal/core/domain/model/assignment"
	"pawnops/internal/pkg/errs"
)

// CreateAssignmentCommandHandler handles the business logic for assignment
// creation. Admins may create any assignment type; auditors only the
// capital-moving ones. The outbound capital deduction and the driver
// status mirror run after the assignment commit, so a settlement failure
// never loses the assignment itself.
type CreateAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
	settlement SettlementCoordinator
}

// NewCreateAssignmentCommandHandler creates a handler for assignment
// creation operations.
func NewCreateAssignmentCommandHandler(
	uowFactory AssignmentUoWFactory,
	settlement SettlementCoordinator,
) CreateAssignmentCommandHandler {
	return CreateAssignmentCommandHandler{
		uowFactory: uowFactory,
		settlement: settlement,
	}
}

// Handle processes the assignment creation command and returns the created
// aggregate.
func (h *CreateAssignmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateAssignmentCommand,
) (*assignment.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorize(cmd); err != nil {
		return nil, err
	}

	aggregate, err := assignment.NewAssignment(
		cmd.AssignmentID(),
		cmd.AssignmentType(),
		cmd.FromLocationType(),
		cmd.ToLocationType(),
		cmd.FromBranchID(),
		cmd.ToBranchID(),
		cmd.Items(),
		cmd.Amount(),
		cmd.Actor().ID(),
		cmd.AssignedTo(),
		cmd.DueDate(),
		cmd.Notes(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AssignmentRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.settlement.OnAssignmentCreated(ctx, aggregate)
	h.settlement.SyncDriverStatus(ctx, aggregate)

	return aggregate, nil
}

func (h *CreateAssignmentCommandHandler) authorize(cmd CreateAssignmentCommand) error {
	actor := cmd.Actor()
	if actor.IsAdmin() {
		return nil
	}

	if actor.IsAuditor() && cmd.AssignmentType().IsCapitalMovement() {
		return nil
	}

	return errs.NewForbiddenError(actor.Role().String(), "create delivery assignments of type "+cmd.AssignmentType().String())
}
