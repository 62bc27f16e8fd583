// Package assignmentrepo provides data transfer objects and mapping
// functions for delivery assignment persistence.
package assignmentrepo

import (
	"encoding/json"
	"time"

	"pawnops/internal/core/domain/model/assignment"
	"pawnops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// AssignmentDTO represents the database structure for persisting delivery
// assignment aggregates. Items are stored as a JSON column because legacy
// rows carry several historical shapes; normalization happens on read.
type AssignmentDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssignmentType   string    `gorm:"type:varchar(32);not null"`
	FromLocationType string    `gorm:"type:varchar(16);not null"`
	ToLocationType   string    `gorm:"type:varchar(16);not null"`
	FromBranchID     *int64    `gorm:"index"`
	ToBranchID       *int64    `gorm:"index"`
	Items            datatypes.JSON
	Amount           *decimal.Decimal `gorm:"type:numeric(14,2)"`
	Status           string           `gorm:"type:varchar(16);index;not null"`
	AssignedBy       int64            `gorm:"not null"`
	AssignedTo       int64            `gorm:"index;not null"`
	Notes            string           `gorm:"type:text"`
	DueDate          *time.Time
	PickupVerifiedAt *time.Time
	DeliveredAt      *time.Time
	ItemImage        *string `gorm:"type:text"`
	DropoffImage     *string `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the database table name for assignments.
func (AssignmentDTO) TableName() string {
	return "delivery_assignments"
}

// fromDomain converts an assignment aggregate to its database representation.
func fromDomain(a *assignment.Assignment) AssignmentDTO {
	var items datatypes.JSON
	if len(a.Items()) > 0 {
		raw, _ := json.Marshal(a.Items())
		items = datatypes.JSON(raw)
	}

	return AssignmentDTO{
		ID:               a.ID().Bytes(),
		AssignmentType:   a.Type().String(),
		FromLocationType: a.FromLocationType().String(),
		ToLocationType:   a.ToLocationType().String(),
		FromBranchID:     a.FromBranchID(),
		ToBranchID:       a.ToBranchID(),
		Items:            items,
		Amount:           a.Amount(),
		Status:           a.Status().String(),
		AssignedBy:       a.AssignedBy(),
		AssignedTo:       a.AssignedTo(),
		Notes:            a.Notes(),
		DueDate:          a.DueDate(),
		PickupVerifiedAt: a.PickupVerifiedAt(),
		DeliveredAt:      a.DeliveredAt(),
		ItemImage:        a.ItemImage(),
		DropoffImage:     a.DropoffImage(),
		CreatedAt:        a.CreatedAt(),
		UpdatedAt:        a.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an assignment aggregate. Stored item
// payloads are normalized through ExtractItemIDs so historical shapes keep
// loading.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		id,
		assignment.Type(dto.AssignmentType),
		assignment.LocationType(dto.FromLocationType),
		assignment.LocationType(dto.ToLocationType),
		dto.FromBranchID,
		dto.ToBranchID,
		assignment.ExtractItemIDs(dto.Items),
		dto.Amount,
		assignment.Status(dto.Status),
		dto.AssignedBy,
		dto.AssignedTo,
		dto.Notes,
		dto.DueDate,
		dto.PickupVerifiedAt,
		dto.DeliveredAt,
		dto.ItemImage,
		dto.DropoffImage,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
