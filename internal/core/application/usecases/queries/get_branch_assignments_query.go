package queries

import (
	"errors"

	"pawnops/internal/pkg/errs"
	"pawnops/internal/pkg/guard"
)

var ErrGetBranchAssignmentsQueryIsNotConstructed = errors.New(
	"GetBranchAssignmentsQuery must be created via NewGetBranchAssignmentsQuery constructor",
)

// GetBranchAssignmentsQuery retrieves a branch's full assignment history,
// inbound and outbound, regardless of status.
type GetBranchAssignmentsQuery struct {
	branchID int64

	guard guard.ConstructorGuard
}

// NewGetBranchAssignmentsQuery creates a query for the given branch.
func NewGetBranchAssignmentsQuery(branchID int64) (GetBranchAssignmentsQuery, error) {
	if branchID <= 0 {
		return GetBranchAssignmentsQuery{}, errs.NewValueIsRequiredError("branch id")
	}

	return GetBranchAssignmentsQuery{
		branchID: branchID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBranchAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetBranchAssignmentsQueryIsNotConstructed)
}

// BranchID returns the branch being queried.
func (q GetBranchAssignmentsQuery) BranchID() int64 {
	return q.branchID
}
