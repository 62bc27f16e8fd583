package commands

import (
	"errors"

	"pawnops/internal/core/domain/model/kernel"
	"pawnops/internal/core/domain/model/principal"
	"pawnops/internal/pkg/guard"
)

var ErrVerifyDropoffCommandIsNotConstructed = errors.New(
	"VerifyDropoffCommand must be created via NewVerifyDropoffCommand constructor",
)

// VerifyDropoffCommand represents a driver confirming delivery of an
// assignment's payload at its destination, optionally with a proof image
// reference.
type VerifyDropoffCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	dropoffImage *string
	actor        principal.Principal

	guard guard.ConstructorGuard
}

// NewVerifyDropoffCommand creates a command confirming delivery of the
// given assignment by actor.
func NewVerifyDropoffCommand(
	assignmentID kernel.UUID,
	dropoffImage *string,
	actor principal.Principal,
) (VerifyDropoffCommand, error) {
	cmd := VerifyDropoffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignmentID.Validate(),
		actor.Validate(),
	); err != nil {
		return VerifyDropoffCommand{}, err
	}

	cmd.assignmentID = assignmentID
	cmd.dropoffImage = dropoffImage
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyDropoffCommand) Validate() error {
	return c.guard.Validate(ErrVerifyDropoffCommandIsNotConstructed)
}

func (c VerifyDropoffCommand) AssignmentID() kernel.UUID { return c.assignmentID }

func (c VerifyDropoffCommand) DropoffImage() *string { return c.dropoffImage }

func (c VerifyDropoffCommand) Actor() principal.Principal { return c.actor }
