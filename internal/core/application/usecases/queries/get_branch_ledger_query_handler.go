package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetBranchLedgerQueryHandler retrieves a branch's ledger entries from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetBranchLedgerQueryHandler struct {
	db *gorm.DB
}

// NewGetBranchLedgerQueryHandler creates a handler for branch ledger
// queries.
func NewGetBranchLedgerQueryHandler(db *gorm.DB) GetBranchLedgerQueryHandler {
	return GetBranchLedgerQueryHandler{db: db}
}

// Handle executes the query to retrieve the branch's entries, newest
// first. The (created_at, id) ordering matches the running-balance
// computation, so consecutive rows reconcile.
func (h GetBranchLedgerQueryHandler) Handle(
	ctx context.Context,
	query GetBranchLedgerQuery,
) ([]GetBranchLedgerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetBranchLedgerQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			branch_id,
			transaction_type,
			amount,
			running_balance,
			related_loan_id,
			description,
			transaction_date,
			created_at
		FROM capital_ledger
		WHERE branch_id = ?
		ORDER BY created_at DESC, id DESC
	`, query.BranchID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetBranchLedgerQueryResponse

		err = rows.Scan(
			&entry.ID,
			&entry.BranchID,
			&entry.TransactionType,
			&entry.Amount,
			&entry.RunningBalance,
			&entry.RelatedLoanID,
			&entry.Description,
			&entry.TransactionDate,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
