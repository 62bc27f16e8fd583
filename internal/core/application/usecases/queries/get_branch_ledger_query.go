package queries

import (
	"errors"
	"time"

	"pawnops/internal/pkg/errs"
	"pawnops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetBranchLedgerQueryIsNotConstructed = errors.New(
	"GetBranchLedgerQuery must be created via NewGetBranchLedgerQuery constructor",
)

// GetBranchLedgerQuery retrieves a branch's capital ledger entries, newest
// first, for the back-office statement view.
type GetBranchLedgerQuery struct {
	branchID int64

	guard guard.ConstructorGuard
}

// NewGetBranchLedgerQuery creates a query for the given branch.
func NewGetBranchLedgerQuery(branchID int64) (GetBranchLedgerQuery, error) {
	if branchID <= 0 {
		return GetBranchLedgerQuery{}, errs.NewValueIsRequiredError("branch id")
	}

	return GetBranchLedgerQuery{
		branchID: branchID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBranchLedgerQuery) Validate() error {
	return q.guard.Validate(ErrGetBranchLedgerQueryIsNotConstructed)
}

// BranchID returns the branch being queried.
func (q GetBranchLedgerQuery) BranchID() int64 {
	return q.branchID
}

// GetBranchLedgerQueryResponse is one ledger entry in the read model.
type GetBranchLedgerQueryResponse struct {
	ID              int64
	BranchID        int64
	TransactionType string
	Amount          decimal.Decimal
	RunningBalance  decimal.Decimal
	RelatedLoanID   *int64
	Description     string
	TransactionDate time.Time
	CreatedAt       time.Time
}
