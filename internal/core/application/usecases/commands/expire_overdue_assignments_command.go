package commands

import (
	"errors"
	"time"

	"pawnops/internal/pkg/errs"
	"pawnops/internal/pkg/guard"
)

var ErrExpireOverdueAssignmentsCommandIsNotConstructed = errors.New(
	"ExpireOverdueAssignmentsCommand must be created via NewExpireOverdueAssignmentsCommand constructor",
)

// ExpireOverdueAssignmentsCommand sweeps active assignments whose due
// date has passed and moves them to the expired state. Issued by the
// scheduler, not by a caller, so it carries no principal.
type ExpireOverdueAssignmentsCommand struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewExpireOverdueAssignmentsCommand creates a sweep command anchored at
// the given instant.
func NewExpireOverdueAssignmentsCommand(asOf time.Time) (ExpireOverdueAssignmentsCommand, error) {
	cmd := ExpireOverdueAssignmentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if asOf.IsZero() {
		return ExpireOverdueAssignmentsCommand{}, errs.NewValueIsRequiredError("asOf")
	}

	cmd.asOf = asOf
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireOverdueAssignmentsCommand) Validate() error {
	return c.guard.Validate(ErrExpireOverdueAssignmentsCommandIsNotConstructed)
}

func (c ExpireOverdueAssignmentsCommand) AsOf() time.Time { return c.asOf }
