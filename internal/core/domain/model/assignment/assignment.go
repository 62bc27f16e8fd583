package assignment

import (
	"errors"
	"fmt"
	"time"

	"pawnops/internal/core/domain/model/kernel"
	"pawnops/internal/pkg/errs"
	"pawnops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment was not
// created through NewAssignment or RestoreAssignment.
var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment or RestoreAssignment constructor")

// Assignment is the aggregate root for one inter-branch delivery. It owns
// the lifecycle state machine and the route/payload description; ledger
// and inventory consequences are applied by the settlement service on the
// creation and dropoff edges.
type Assignment struct {
	id kernel.UUID

	assignmentType Type

	// route endpoints; branch ids are nil for VAULT endpoints
	fromLocationType LocationType
	toLocationType   LocationType
	fromBranchID     *int64
	toBranchID       *int64

	// items carried, empty for pure capital moves
	items []int64

	// amount carried, nil for pure item transfers
	amount *decimal.Decimal

	status Status

	// assignedBy is the principal who created the assignment; its role
	// decides which driver status column is synchronized
	assignedBy int64
	assignedTo int64

	// notes is an append-only timestamped log
	notes string

	dueDate          *time.Time
	pickupVerifiedAt *time.Time
	deliveredAt      *time.Time

	itemImage    *string
	dropoffImage *string

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewAssignment creates an assignment in ASSIGNED status.
//
// Validation rules:
//   - assignedBy and assignedTo are required
//   - type and both location types must be valid
//   - BRANCH endpoints require a branch id, VAULT endpoints forbid one
//   - capital-type assignments require a positive amount
//   - capital-type assignments may not route a branch to itself
func NewAssignment(
	id kernel.UUID,
	assignmentType Type,
	fromLocationType LocationType,
	toLocationType LocationType,
	fromBranchID *int64,
	toBranchID *int64,
	items []int64,
	amount *decimal.Decimal,
	assignedBy int64,
	assignedTo int64,
	dueDate *time.Time,
	notes string,
	now time.Time,
) (*Assignment, error) {
	a := &Assignment{
		status:    StatusAssigned,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setType(assignmentType),
		a.setRoute(fromLocationType, toLocationType, fromBranchID, toBranchID),
		a.setPayload(items, amount),
		a.setPrincipals(assignedBy, assignedTo),
	); err != nil {
		return nil, err
	}

	a.dueDate = dueDate
	a.notes = notes
	return a, nil
}

// RestoreAssignment reconstructs a persisted assignment with its full
// lifecycle state. Used by repositories when mapping rows back to the
// domain; it revalidates the construction-time rules.
func RestoreAssignment(
	id kernel.UUID,
	assignmentType Type,
	fromLocationType LocationType,
	toLocationType LocationType,
	fromBranchID *int64,
	toBranchID *int64,
	items []int64,
	amount *decimal.Decimal,
	status Status,
	assignedBy int64,
	assignedTo int64,
	notes string,
	dueDate *time.Time,
	pickupVerifiedAt *time.Time,
	deliveredAt *time.Time,
	itemImage *string,
	dropoffImage *string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Assignment, error) {
	a, err := NewAssignment(id, assignmentType, fromLocationType, toLocationType,
		fromBranchID, toBranchID, items, amount, assignedBy, assignedTo, dueDate, notes, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	a.status = status
	a.pickupVerifiedAt = pickupVerifiedAt
	a.deliveredAt = deliveredAt
	a.itemImage = itemImage
	a.dropoffImage = dropoffImage
	a.updatedAt = updatedAt
	return a, nil
}

// Validate ensures the assignment was created through a constructor.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// IsEqual compares two assignments by identifier.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

func (a *Assignment) ID() kernel.UUID              { return a.id }
func (a *Assignment) Type() Type                   { return a.assignmentType }
func (a *Assignment) FromLocationType() LocationType { return a.fromLocationType }
func (a *Assignment) ToLocationType() LocationType { return a.toLocationType }
func (a *Assignment) FromBranchID() *int64         { return a.fromBranchID }
func (a *Assignment) ToBranchID() *int64           { return a.toBranchID }
func (a *Assignment) Items() []int64               { return a.items }
func (a *Assignment) Amount() *decimal.Decimal     { return a.amount }
func (a *Assignment) Status() Status               { return a.status }
func (a *Assignment) AssignedBy() int64            { return a.assignedBy }
func (a *Assignment) AssignedTo() int64            { return a.assignedTo }
func (a *Assignment) Notes() string                { return a.notes }
func (a *Assignment) DueDate() *time.Time          { return a.dueDate }
func (a *Assignment) PickupVerifiedAt() *time.Time { return a.pickupVerifiedAt }
func (a *Assignment) DeliveredAt() *time.Time      { return a.deliveredAt }
func (a *Assignment) ItemImage() *string           { return a.itemImage }
func (a *Assignment) DropoffImage() *string        { return a.dropoffImage }
func (a *Assignment) CreatedAt() time.Time         { return a.createdAt }
func (a *Assignment) UpdatedAt() time.Time         { return a.updatedAt }

// RequiresOutboundSettlement reports whether creating this assignment must
// deduct capital from the source branch.
func (a *Assignment) RequiresOutboundSettlement() bool {
	return a.assignmentType.IsCapitalMovement() &&
		a.fromBranchID != nil &&
		a.amount != nil && a.amount.IsPositive()
}

// RequiresInboundSettlement reports whether completing this assignment must
// add capital to the destination branch.
func (a *Assignment) RequiresInboundSettlement() bool {
	return a.assignmentType.IsCapitalMovement() &&
		a.toBranchID != nil &&
		a.amount != nil && a.amount.IsPositive()
}

// RequiresItemRelocation reports whether completing this assignment must
// move carried items to the destination branch.
func (a *Assignment) RequiresItemRelocation() bool {
	return len(a.items) > 0 && a.toBranchID != nil
}

// VerifyPickup moves the assignment to IN_PROGRESS and records the proof
// image reference.
func (a *Assignment) VerifyPickup(itemImage *string, now time.Time) error {
	newStatus, err := a.status.VerifyPickup()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.pickupVerifiedAt = &now
	if itemImage != nil {
		a.itemImage = itemImage
	}
	a.updatedAt = now
	return nil
}

// VerifyDropoff moves the assignment to COMPLETED and records the proof
// image reference. This is the only way into COMPLETED.
func (a *Assignment) VerifyDropoff(dropoffImage *string, now time.Time) error {
	newStatus, err := a.status.VerifyDropoff()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.deliveredAt = &now
	if dropoffImage != nil {
		a.dropoffImage = dropoffImage
	}
	a.updatedAt = now
	return nil
}

// Override applies a generic status change with an audit note. COMPLETED
// targets and transitions out of terminal states are rejected.
func (a *Assignment) Override(target Status, note string, now time.Time) error {
	if err := a.status.ValidateOverrideTo(target); err != nil {
		return err
	}

	a.status = target
	if note != "" {
		a.AppendNote(note, now)
	}
	a.updatedAt = now
	return nil
}

// AppendNote adds a timestamped line to the append-only note log.
func (a *Assignment) AppendNote(note string, now time.Time) {
	line := fmt.Sprintf("%s: %s", now.Format(time.RFC3339), note)
	if a.notes == "" {
		a.notes = line
	} else {
		a.notes += "\n" + line
	}
	a.updatedAt = now
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	a.assignmentType = t
	return nil
}

func (a *Assignment) setRoute(from, to LocationType, fromBranchID, toBranchID *int64) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}

	if err := errors.Join(
		validateEndpoint("from", from, fromBranchID),
		validateEndpoint("to", to, toBranchID),
	); err != nil {
		return err
	}

	a.fromLocationType = from
	a.toLocationType = to
	a.fromBranchID = fromBranchID
	a.toBranchID = toBranchID
	return nil
}

func validateEndpoint(side string, lt LocationType, branchID *int64) error {
	if lt == LocationBranch {
		if branchID == nil || *branchID <= 0 {
			return errs.NewValueIsRequiredError(side + " branch id")
		}
		return nil
	}
	if branchID != nil {
		return errs.NewValueIsInvalidErrorWithCause(side+" branch id",
			fmt.Errorf("vault endpoints carry no branch id"))
	}
	return nil
}

func (a *Assignment) setPayload(items []int64, amount *decimal.Decimal) error {
	if amount != nil && !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}

	if a.assignmentType.IsCapitalMovement() {
		if amount == nil {
			return errs.NewValueIsRequiredError("amount")
		}
		if a.fromBranchID != nil && a.toBranchID != nil && *a.fromBranchID == *a.toBranchID {
			return errs.NewValueIsInvalidErrorWithCause("to branch id",
				fmt.Errorf("capital cannot move from branch %d to itself", *a.fromBranchID))
		}
	}

	a.items = items
	a.amount = amount
	return nil
}

func (a *Assignment) setPrincipals(assignedBy, assignedTo int64) error {
	if assignedBy <= 0 {
		return errs.NewValueIsRequiredError("assigned by")
	}
	if assignedTo <= 0 {
		return errs.NewValueIsRequiredError("assigned to")
	}
	a.assignedBy = assignedBy
	a.assignedTo = assignedTo
	return nil
}
