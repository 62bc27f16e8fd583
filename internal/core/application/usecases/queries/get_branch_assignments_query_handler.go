package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetBranchAssignmentsQueryHandler retrieves a branch's assignment history
// from the database. Uses direct SQL queries for optimal read performance
// in the CQRS pattern.
type GetBranchAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetBranchAssignmentsQueryHandler creates a handler for branch
// assignment history queries.
func NewGetBranchAssignmentsQueryHandler(db *gorm.DB) GetBranchAssignmentsQueryHandler {
	return GetBranchAssignmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve every assignment that touches the
// branch as source or destination, newest first.
func (h GetBranchAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetBranchAssignmentsQuery,
) ([]AssignmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows := make([]assignmentRow, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+assignmentColumns+`
		FROM delivery_assignments
		WHERE from_branch_id = ? OR to_branch_id = ?
		ORDER BY created_at DESC
	`, query.BranchID(), query.BranchID()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	responses := make([]AssignmentQueryResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, row.toResponse())
	}

	return responses, nil
}
