package commands

import (
	"errors"
	"time"

	"pawnops/internal/core/domain/model/assignment"
	"pawnops/internal/core/domain/model/kernel"
	"pawnops/internal/core/domain/model/principal"
	"pawnops/internal/pkg/errs"
	"pawnops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateAssignmentCommandIsNotConstructed = errors.New(
	"CreateAssignmentCommand must be created via NewCreateAssignmentCommand constructor",
)

// CreateAssignmentCommand represents a request to create a new delivery
// assignment. Route, payload and lifecycle validation belongs to the
// assignment aggregate; the command only checks the inputs it owns.
type CreateAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID     kernel.UUID
	assignmentType   assignment.Type
	fromLocationType assignment.LocationType
	toLocationType   assignment.LocationType
	fromBranchID     *int64
	toBranchID       *int64
	items            []int64
	amount           *decimal.Decimal
	assignedTo       int64
	dueDate          *time.Time
	notes            string
	actor            principal.Principal

	guard guard.ConstructorGuard
}

// NewCreateAssignmentCommand creates a command to register a new delivery
// assignment on behalf of actor.
func NewCreateAssignmentCommand(
	assignmentID kernel.UUID,
	assignmentType assignment.Type,
	fromLocationType assignment.LocationType,
	toLocationType assignment.LocationType,
	fromBranchID *int64,
	toBranchID *int64,
	items []int64,
	amount *decimal.Decimal,
	assignedTo int64,
	dueDate *time.Time,
	notes string,
	actor principal.Principal,
) (CreateAssignmentCommand, error) {
	cmd := CreateAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setAssignedTo(assignedTo),
		cmd.setActor(actor),
	); err != nil {
		return CreateAssignmentCommand{}, err
	}

	cmd.assignmentType = assignmentType
	cmd.fromLocationType = fromLocationType
	cmd.toLocationType = toLocationType
	cmd.fromBranchID = fromBranchID
	cmd.toBranchID = toBranchID
	cmd.items = items
	cmd.amount = amount
	cmd.dueDate = dueDate
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssignmentCommandIsNotConstructed)
}

func (c CreateAssignmentCommand) AssignmentID() kernel.UUID { return c.assignmentID }

func (c CreateAssignmentCommand) AssignmentType() assignment.Type { return c.assignmentType }

func (c CreateAssignmentCommand) FromLocationType() assignment.LocationType {
	return c.fromLocationType
}

func (c CreateAssignmentCommand) ToLocationType() assignment.LocationType { return c.toLocationType }

func (c CreateAssignmentCommand) FromBranchID() *int64 { return c.fromBranchID }

func (c CreateAssignmentCommand) ToBranchID() *int64 { return c.toBranchID }

func (c CreateAssignmentCommand) Items() []int64 { return c.items }

func (c CreateAssignmentCommand) Amount() *decimal.Decimal { return c.amount }

func (c CreateAssignmentCommand) AssignedTo() int64 { return c.assignedTo }

func (c CreateAssignmentCommand) DueDate() *time.Time { return c.dueDate }

func (c CreateAssignmentCommand) Notes() string { return c.notes }

// Actor returns the principal creating the assignment.
func (c CreateAssignmentCommand) Actor() principal.Principal { return c.actor }

func (c *CreateAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *CreateAssignmentCommand) setAssignedTo(assignedTo int64) error {
	if assignedTo <= 0 {
		return errs.NewValueIsRequiredError("assigned to")
	}

	c.assignedTo = assignedTo
	return nil
}

func (c *CreateAssignmentCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
