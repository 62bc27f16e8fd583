package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetBranchCapitalQueryHandler reads a branch's current capital straight
// from the ledger table. Uses direct SQL for optimal read performance in
// the CQRS pattern.
type GetBranchCapitalQueryHandler struct {
	db *gorm.DB
}

// NewGetBranchCapitalQueryHandler creates a handler for branch capital
// queries.
func NewGetBranchCapitalQueryHandler(db *gorm.DB) GetBranchCapitalQueryHandler {
	return GetBranchCapitalQueryHandler{db: db}
}

// Handle returns the running balance of the branch's latest ledger entry.
// A branch with no entries has zero capital, not an error.
func (h GetBranchCapitalQueryHandler) Handle(
	ctx context.Context,
	query GetBranchCapitalQuery,
) (GetBranchCapitalQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBranchCapitalQueryResponse{}, err
	}

	var balance decimal.Decimal
	err := h.db.WithContext(ctx).Raw(`
		SELECT running_balance
		FROM capital_ledger
		WHERE branch_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, query.BranchID()).Row().Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return GetBranchCapitalQueryResponse{
			BranchID:       query.BranchID(),
			CurrentCapital: decimal.Zero,
		}, nil
	}
	if err != nil {
		return GetBranchCapitalQueryResponse{}, err
	}

	return GetBranchCapitalQueryResponse{
		BranchID:       query.BranchID(),
		CurrentCapital: balance,
	}, nil
}
