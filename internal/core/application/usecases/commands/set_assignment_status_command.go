package commands

import (
	"errors"

	"pawnops/internal/core/domain/model/assignment"
	"pawnops/internal/core/domain/model/kernel"
	"pawnops/internal/core/domain/model/principal"
	"pawnops/internal/pkg/guard"
)

var ErrSetAssignmentStatusCommandIsNotConstructed = errors.New(
	"SetAssignmentStatusCommand must be created via NewSetAssignmentStatusCommand constructor",
)

// SetAssignmentStatusCommand represents a back-office override of an
// assignment's lifecycle status, for example cancelling an assignment or
// marking it failed. COMPLETED is not reachable this way; delivery must be
// confirmed through the dropoff flow.
type SetAssignmentStatusCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	target       assignment.Status
	note         string
	actor        principal.Principal

	guard guard.ConstructorGuard
}

// NewSetAssignmentStatusCommand creates a command moving the given
// assignment to the target status on behalf of actor.
func NewSetAssignmentStatusCommand(
	assignmentID kernel.UUID,
	target assignment.Status,
	note string,
	actor principal.Principal,
) (SetAssignmentStatusCommand, error) {
	cmd := SetAssignmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignmentID.Validate(),
		target.Validate(),
		actor.Validate(),
	); err != nil {
		return SetAssignmentStatusCommand{}, err
	}

	cmd.assignmentID = assignmentID
	cmd.target = target
	cmd.note = note
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAssignmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetAssignmentStatusCommandIsNotConstructed)
}

func (c SetAssignmentStatusCommand) AssignmentID() kernel.UUID { return c.assignmentID }

func (c SetAssignmentStatusCommand) Target() assignment.Status { return c.target }

func (c SetAssignmentStatusCommand) Note() string { return c.note }

func (c SetAssignmentStatusCommand) Actor() principal.Principal { return c.actor }
