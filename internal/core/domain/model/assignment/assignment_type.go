package assignment

import (
	"fmt"

	"pawnops/internal/pkg/errs"
)

// Type classifies what an assignment moves.
type Type string

const (
	// ItemTransfer moves pledged items between branches.
	ItemTransfer Type = "ITEM_TRANSFER"

	// CapitalDelivery moves operating capital to a branch.
	CapitalDelivery Type = "CAPITAL_DELIVERY"

	// BalanceDelivery rebalances capital between branches.
	BalanceDelivery Type = "BALANCE_DELIVERY"
)

// Validate checks that the type is one of the known classifications.
func (t Type) Validate() error {
	switch t {
	case ItemTransfer, CapitalDelivery, BalanceDelivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("assignment type",
			fmt.Errorf("%q is not a valid assignment type", string(t)))
	}
}

// IsCapitalMovement reports whether assignments of this type carry an
// amount that must be settled against branch ledgers.
func (t Type) IsCapitalMovement() bool {
	return t == CapitalDelivery || t == BalanceDelivery
}

func (t Type) String() string {
	return string(t)
}
