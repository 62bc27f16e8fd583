package ledger

import (
	"fmt"

	"pawnops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a capital movement.
//
// The legacy schema conflated outbound and inbound transfers under a single
// tag with a signed amount; they are distinct values here so that the sign
// convention can be validated per type.
type TransactionType string

const (
	// LoanDisbursement is cash leaving a branch to fund a pawn loan.
	LoanDisbursement TransactionType = "LOAN_DISBURSEMENT"
	// TransferOut is cash leaving a branch at assignment dispatch.
	TransferOut TransactionType = "TRANSFER_OUT"
	// TransferIn is cash arriving at a branch on delivery completion.
	TransferIn TransactionType = "TRANSFER_IN"
)

// Validate checks that the type is one of the known values.
func (t TransactionType) Validate() error {
	switch t {
	case LoanDisbursement, TransferOut, TransferIn:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("transaction type",
			fmt.Errorf("%q is not a valid transaction type", string(t)))
	}
}

// String returns the persisted tag of the transaction type.
func (t TransactionType) String() string {
	return string(t)
}

// ValidateSign checks the sign convention for the type: outflow types carry
// negative amounts, inflow types positive ones. Zero amounts are always
// invalid; a movement of nothing is not a movement.
func (t TransactionType) ValidateSign(amount decimal.Decimal) error {
	if amount.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("ledger amount must be non-zero"))
	}

	switch t {
	case LoanDisbursement, TransferOut:
		if amount.IsPositive() {
			return errs.NewValueIsInvalidErrorWithCause("amount",
				fmt.Errorf("%s entries must carry a negative amount", t))
		}
	case TransferIn:
		if amount.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause("amount",
				fmt.Errorf("%s entries must carry a positive amount", t))
		}
	}
	return nil
}
