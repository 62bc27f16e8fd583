// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"pawnops/internal/pkg/errs"
	"pawnops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetBranchCapitalQueryIsNotConstructed = errors.New(
	"GetBranchCapitalQuery must be created via NewGetBranchCapitalQuery constructor",
)

// GetBranchCapitalQuery retrieves a branch's current capital: the running
// balance of its latest ledger entry, zero when the branch has no entries.
type GetBranchCapitalQuery struct {
	branchID int64

	guard guard.ConstructorGuard
}

// NewGetBranchCapitalQuery creates a query for the given branch.
func NewGetBranchCapitalQuery(branchID int64) (GetBranchCapitalQuery, error) {
	if branchID <= 0 {
		return GetBranchCapitalQuery{}, errs.NewValueIsRequiredError("branch id")
	}

	return GetBranchCapitalQuery{
		branchID: branchID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBranchCapitalQuery) Validate() error {
	return q.guard.Validate(ErrGetBranchCapitalQueryIsNotConstructed)
}

// BranchID returns the branch being queried.
func (q GetBranchCapitalQuery) BranchID() int64 {
	return q.branchID
}

// GetBranchCapitalQueryResponse is the branch capital read model.
type GetBranchCapitalQueryResponse struct {
	BranchID       int64
	CurrentCapital decimal.Decimal
}
