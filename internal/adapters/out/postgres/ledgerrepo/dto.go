// Package ledgerrepo provides persistence for the append-only branch
// capital ledger. Entries are inserted and read, never updated or deleted;
// the running balance stored on each row is the source of truth for a
// branch's current capital.
package ledgerrepo

import (
	"time"

	"pawnops/internal/core/domain/model/ledger"

	"github.com/shopspring/decimal"
)

// EntryDTO represents the database structure for persisting ledger entries.
type EntryDTO struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	BranchID        int64           `gorm:"index:idx_capital_branch_order,priority:1;not null"`
	TransactionType string          `gorm:"type:varchar(32);not null"`
	Amount          decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	RunningBalance  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	RelatedLoanID   *int64
	Description     string    `gorm:"type:text"`
	TransactionDate time.Time `gorm:"not null"`
	CreatedAt       time.Time `gorm:"index:idx_capital_branch_order,priority:2;not null"`
}

// TableName specifies the database table name for ledger entries.
func (EntryDTO) TableName() string {
	return "capital_ledger"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *ledger.Entry) EntryDTO {
	return EntryDTO{
		ID:              entry.ID(),
		BranchID:        entry.BranchID(),
		TransactionType: entry.TransactionType().String(),
		Amount:          entry.Amount(),
		RunningBalance:  entry.RunningBalance(),
		RelatedLoanID:   entry.RelatedLoanID(),
		Description:     entry.Description(),
		TransactionDate: entry.TransactionDate(),
		CreatedAt:       entry.CreatedAt(),
	}
}

// toDomain converts a database DTO to a ledger entry.
func toDomain(dto EntryDTO) (*ledger.Entry, error) {
	return ledger.RestoreEntry(
		dto.ID,
		dto.BranchID,
		ledger.TransactionType(dto.TransactionType),
		dto.Amount,
		dto.RunningBalance,
		dto.RelatedLoanID,
		dto.Description,
		dto.TransactionDate,
		dto.CreatedAt,
	)
}
