package queries

import (
	"context"

	"pawnops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAssignmentQueryHandler retrieves one assignment from the database.
// Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetAssignmentQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentQueryHandler creates a handler for single assignment
// queries.
func NewGetAssignmentQueryHandler(db *gorm.DB) GetAssignmentQueryHandler {
	return GetAssignmentQueryHandler{db: db}
}

// Handle executes the query. A missing assignment is reported as not
// found.
func (h GetAssignmentQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentQuery,
) (AssignmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AssignmentQueryResponse{}, err
	}

	rows := make([]assignmentRow, 0, 1)
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+assignmentColumns+`
		FROM delivery_assignments
		WHERE id = ?
	`, query.AssignmentID().Bytes()).Scan(&rows).Error
	if err != nil {
		return AssignmentQueryResponse{}, err
	}

	if len(rows) == 0 {
		return AssignmentQueryResponse{}, errs.NewObjectNotFoundError("assignment", query.AssignmentID())
	}

	return rows[0].toResponse(), nil
}
