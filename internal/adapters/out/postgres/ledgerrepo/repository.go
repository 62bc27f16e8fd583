package ledgerrepo

import (
	"context"
	"errors"

	"pawnops/internal/core/domain/model/ledger"
	"pawnops/internal/core/ports"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormLedgerRepository implements LedgerRepository using GORM.
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// Add inserts a new ledger entry. The entry keeps its database-assigned id
// after the insert.
func (r *GormLedgerRepository) Add(ctx context.Context, entry *ledger.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	dto.ID = 0
	return r.db.WithContext(ctx).Create(&dto).Error
}

// CurrentBalance returns the running balance of the branch's latest entry
// in (created_at, id) order. Branches with no entries have a zero balance.
func (r *GormLedgerRepository) CurrentBalance(ctx context.Context, branchID int64) (decimal.Decimal, error) {
	var dto EntryDTO
	err := r.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Order("created_at DESC, id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	return dto.RunningBalance, nil
}

// CurrentBalances returns the latest running balance of every branch with
// at least one entry.
func (r *GormLedgerRepository) CurrentBalances(ctx context.Context) ([]ports.BranchCapital, error) {
	var results []ports.BranchCapital
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT ON (branch_id)
		       branch_id, running_balance AS balance
		FROM capital_ledger
		ORDER BY branch_id, created_at DESC, id DESC`).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

// GetAllForBranch retrieves the branch's entries ordered by (created_at, id).
func (r *GormLedgerRepository) GetAllForBranch(ctx context.Context, branchID int64, descending bool) ([]*ledger.Entry, error) {
	order := "created_at ASC, id ASC"
	if descending {
		order = "created_at DESC, id DESC"
	}

	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Order(order).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*ledger.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
