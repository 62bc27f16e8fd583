package queries

import (
	"context"

	"pawnops/internal/core/domain/model/assignment"

	"gorm.io/gorm"
)

// GetActiveAssignmentsQueryHandler retrieves in-flight assignments from
// the database. Uses direct SQL queries for optimal read performance in
// the CQRS pattern.
type GetActiveAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveAssignmentsQueryHandler creates a handler for active
// assignment queries.
func NewGetActiveAssignmentsQueryHandler(db *gorm.DB) GetActiveAssignmentsQueryHandler {
	return GetActiveAssignmentsQueryHandler{db: db}
}

// Handle executes the query. ASSIGNED rows come before IN_PROGRESS rows,
// newest first within each group, so dispatchers see unstarted work at
// the top.
func (h GetActiveAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveAssignmentsQuery,
) ([]AssignmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + assignmentColumns + `
		FROM delivery_assignments
		WHERE status IN (?, ?)`
	args := []any{assignment.StatusAssigned.String(), assignment.StatusInProgress.String()}

	if query.BranchID() != nil {
		sql += `
		AND (from_branch_id = ? OR to_branch_id = ?)`
		args = append(args, *query.BranchID(), *query.BranchID())
	}

	sql += `
		ORDER BY CASE status WHEN ? THEN 0 ELSE 1 END, created_at DESC`
	args = append(args, assignment.StatusAssigned.String())

	rows := make([]assignmentRow, 0)
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	responses := make([]AssignmentQueryResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, row.toResponse())
	}

	return responses, nil
}
