package queries

import (
	"time"

	"pawnops/internal/core/domain/model/assignment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssignmentQueryResponse is the assignment read model shared by the
// assignment queries. Stored item payloads are normalized through
// ExtractItemIDs, so historical shapes read back as a flat id list.
type AssignmentQueryResponse struct {
	ID               string
	AssignmentType   string
	FromLocationType string
	ToLocationType   string
	FromBranchID     *int64
	ToBranchID       *int64
	Items            []int64
	Amount           *decimal.Decimal
	Status           string
	AssignedBy       int64
	AssignedTo       int64
	Notes            string
	DueDate          *time.Time
	PickupVerifiedAt *time.Time
	DeliveredAt      *time.Time
	ItemImage        *string
	DropoffImage     *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// assignmentRow mirrors the delivery_assignments columns scanned by the
// assignment queries.
type assignmentRow struct {
	ID               uuid.UUID
	AssignmentType   string
	FromLocationType string
	ToLocationType   string
	FromBranchID     *int64
	ToBranchID       *int64
	Items            []byte
	Amount           *decimal.Decimal
	Status           string
	AssignedBy       int64
	AssignedTo       int64
	Notes            string
	DueDate          *time.Time
	PickupVerifiedAt *time.Time
	DeliveredAt      *time.Time
	ItemImage        *string
	DropoffImage     *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

const assignmentColumns = `
	id,
	assignment_type,
	from_location_type,
	to_location_type,
	from_branch_id,
	to_branch_id,
	items,
	amount,
	status,
	assigned_by,
	assigned_to,
	notes,
	due_date,
	pickup_verified_at,
	delivered_at,
	item_image,
	dropoff_image,
	created_at,
	updated_at`

func (r assignmentRow) toResponse() AssignmentQueryResponse {
	return AssignmentQueryResponse{
		ID:               r.ID.String(),
		AssignmentType:   r.AssignmentType,
		FromLocationType: r.FromLocationType,
		ToLocationType:   r.ToLocationType,
		FromBranchID:     r.FromBranchID,
		ToBranchID:       r.ToBranchID,
		Items:            assignment.ExtractItemIDs(r.Items),
		Amount:           r.Amount,
		Status:           r.Status,
		AssignedBy:       r.AssignedBy,
		AssignedTo:       r.AssignedTo,
		Notes:            r.Notes,
		DueDate:          r.DueDate,
		PickupVerifiedAt: r.PickupVerifiedAt,
		DeliveredAt:      r.DeliveredAt,
		ItemImage:        r.ItemImage,
		DropoffImage:     r.DropoffImage,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
