package queries

import (
	"errors"

	"pawnops/internal/core/domain/model/kernel"
	"pawnops/internal/pkg/guard"
)

var ErrGetAssignmentQueryIsNotConstructed = errors.New(
	"GetAssignmentQuery must be created via NewGetAssignmentQuery constructor",
)

// GetAssignmentQuery retrieves a single assignment by identifier.
type GetAssignmentQuery struct {
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignmentQuery creates a query for the given assignment.
func NewGetAssignmentQuery(assignmentID kernel.UUID) (GetAssignmentQuery, error) {
	if err := assignmentID.Validate(); err != nil {
		return GetAssignmentQuery{}, err
	}

	return GetAssignmentQuery{
		assignmentID: assignmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignmentQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentQueryIsNotConstructed)
}

// AssignmentID returns the assignment being queried.
func (q GetAssignmentQuery) AssignmentID() kernel.UUID {
	return q.assignmentID
}
