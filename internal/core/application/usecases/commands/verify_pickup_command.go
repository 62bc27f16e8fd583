package commands

import (
	"errors"

	"pawnops/internal/core/domain/model/kernel"
	"pawnops/internal/core/domain/model/principal"
	"pawnops/internal/pkg/guard"
)

var ErrVerifyPickupCommandIsNotConstructed = errors.New(
	"VerifyPickupCommand must be created via NewVerifyPickupCommand constructor",
)

// VerifyPickupCommand represents a driver confirming physical pickup of
// an assignment's payload, optionally with a proof image reference.
type VerifyPickupCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	itemImage    *string
	actor        principal.Principal

	guard guard.ConstructorGuard
}

// NewVerifyPickupCommand creates a command confirming pickup of the given
// assignment by actor.
func NewVerifyPickupCommand(
	assignmentID kernel.UUID,
	itemImage *string,
	actor principal.Principal,
) (VerifyPickupCommand, error) {
	cmd := VerifyPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignmentID.Validate(),
		actor.Validate(),
	); err != nil {
		return VerifyPickupCommand{}, err
	}

	cmd.assignmentID = assignmentID
	cmd.itemImage = itemImage
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyPickupCommand) Validate() error {
	return c.guard.Validate(ErrVerifyPickupCommandIsNotConstructed)
}

func (c VerifyPickupCommand) AssignmentID() kernel.UUID { return c.assignmentID }

func (c VerifyPickupCommand) ItemImage() *string { return c.itemImage }

func (c VerifyPickupCommand) Actor() principal.Principal { return c.actor }
