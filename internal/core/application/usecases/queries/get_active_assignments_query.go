package queries

import (
	"errors"

	"pawnops/internal/pkg/errs"
	"pawnops/internal/pkg/guard"
)

var ErrGetActiveAssignmentsQueryIsNotConstructed = errors.New(
	"GetActiveAssignmentsQuery must be created via NewGetActiveAssignmentsQuery constructor",
)

// GetActiveAssignmentsQuery retrieves the in-flight assignments: the ones
// awaiting pickup followed by the ones on the road. Optionally scoped to
// assignments touching one branch.
type GetActiveAssignmentsQuery struct {
	branchID *int64

	guard guard.ConstructorGuard
}

// NewGetActiveAssignmentsQuery creates a query for the active assignment
// list. A nil branchID returns every branch's active assignments.
func NewGetActiveAssignmentsQuery(branchID *int64) (GetActiveAssignmentsQuery, error) {
	if branchID != nil && *branchID <= 0 {
		return GetActiveAssignmentsQuery{}, errs.NewValueIsRequiredError("branch id")
	}

	return GetActiveAssignmentsQuery{
		branchID: branchID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveAssignmentsQueryIsNotConstructed)
}

// BranchID returns the optional branch filter.
func (q GetActiveAssignmentsQuery) BranchID() *int64 {
	return q.branchID
}
