package ports

import "context"

// InventoryRepository is the settlement service's view of the pledged-item
// inventory. The inventory itself (loans, appraisals, redemption) belongs
// to an external collaborator; settlement only relocates items between
// branches when a transfer completes.
type InventoryRepository interface {
	// RelocateItems moves the given items to the destination branch and
	// returns how many rows changed. Unknown ids simply do not match;
	// they are not an error.
	RelocateItems(ctx context.Context, itemIDs []int64, toBranchID int64) (int64, error)
}
