package ports

import (
	"context"

	"pawnops/internal/core/domain/model/ledger"

	"github.com/shopspring/decimal"
)

// BranchCapital is one branch's latest running balance, used by the
// all-branches overview.
type BranchCapital struct {
	BranchID int64
	Balance  decimal.Decimal
}

// LedgerRepository defines the persistence contract for the append-only
// capital ledger. Entries are never updated or deleted.
type LedgerRepository interface {
	// Add persists a new ledger entry. The entry's running balance must
	// already be computed; callers serialize the read/insert pair per
	// branch (see services.LedgerService).
	Add(ctx context.Context, entry *ledger.Entry) error

	// CurrentBalance returns the running balance of the branch's latest
	// entry in (created_at, id) order. Branches with no entries have a
	// zero balance, not an error.
	CurrentBalance(ctx context.Context, branchID int64) (decimal.Decimal, error)

	// CurrentBalances returns the latest running balance of every branch
	// that has at least one entry.
	CurrentBalances(ctx context.Context) ([]BranchCapital, error)

	// GetAllForBranch retrieves the branch's entries, newest first when
	// descending is true.
	GetAllForBranch(ctx context.Context, branchID int64, descending bool) ([]*ledger.Entry, error)
}
