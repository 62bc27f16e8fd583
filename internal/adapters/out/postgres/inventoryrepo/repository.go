// Package inventoryrepo provides the settlement-facing slice of the
// pledged-item inventory: relocating items between branches when a
// transfer completes. The inventory table itself is owned by the loan
// system; only branch_id is touched here.
package inventoryrepo

import (
	"context"

	"gorm.io/gorm"
)

// ItemDTO maps the subset of the inventory table settlement cares about.
type ItemDTO struct {
	ID       int64 `gorm:"primaryKey"`
	BranchID int64 `gorm:"index"`
}

// TableName specifies the database table name for inventory items.
func (ItemDTO) TableName() string {
	return "inventory_items"
}

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// RelocateItems moves the given items to the destination branch in one
// bulk update and returns how many rows changed. Unknown ids do not match
// and are silently skipped; the caller compares the count against its
// expectation.
func (r *GormInventoryRepository) RelocateItems(ctx context.Context, itemIDs []int64, toBranchID int64) (int64, error) {
	if len(itemIDs) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("id IN ?", itemIDs).
		Update("branch_id", toBranchID)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
