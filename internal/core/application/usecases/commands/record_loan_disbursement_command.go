package commands

import (
	"errors"
	"fmt"
	"time"

	"pawnops/internal/core/domain/model/principal"
	"pawnops/internal/pkg/errs"
	"pawnops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordLoanDisbursementCommandIsNotConstructed = errors.New(
	"RecordLoanDisbursementCommand must be created via NewRecordLoanDisbursementCommand constructor",
)

// RecordLoanDisbursementCommand represents a request to record a loan
// payout against a branch's capital. The amount is the positive sum paid
// out; the ledger entry itself is written as a deduction.
type RecordLoanDisbursementCommand struct { //nolint:recvcheck //using for validation
	branchID        int64
	amount          decimal.Decimal
	relatedLoanID   *int64
	description     string
	transactionDate *time.Time
	actor           principal.Principal

	guard guard.ConstructorGuard
}

// NewRecordLoanDisbursementCommand creates a command recording a loan
// payout of amount from the given branch.
func NewRecordLoanDisbursementCommand(
	branchID int64,
	amount decimal.Decimal,
	relatedLoanID *int64,
	description string,
	transactionDate *time.Time,
	actor principal.Principal,
) (RecordLoanDisbursementCommand, error) {
	cmd := RecordLoanDisbursementCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBranchID(branchID),
		cmd.setAmount(amount),
		cmd.setActor(actor),
	); err != nil {
		return RecordLoanDisbursementCommand{}, err
	}

	cmd.relatedLoanID = relatedLoanID
	cmd.description = description
	cmd.transactionDate = transactionDate
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordLoanDisbursementCommand) Validate() error {
	return c.guard.Validate(ErrRecordLoanDisbursementCommandIsNotConstructed)
}

func (c RecordLoanDisbursementCommand) BranchID() int64 { return c.branchID }

// Amount returns the positive sum paid out to the borrower.
func (c RecordLoanDisbursementCommand) Amount() decimal.Decimal { return c.amount }

func (c RecordLoanDisbursementCommand) RelatedLoanID() *int64 { return c.relatedLoanID }

func (c RecordLoanDisbursementCommand) Description() string { return c.description }

func (c RecordLoanDisbursementCommand) TransactionDate() *time.Time { return c.transactionDate }

func (c RecordLoanDisbursementCommand) Actor() principal.Principal { return c.actor }

func (c *RecordLoanDisbursementCommand) setBranchID(branchID int64) error {
	if branchID <= 0 {
		return errs.NewValueIsRequiredError("branch id")
	}

	c.branchID = branchID
	return nil
}

func (c *RecordLoanDisbursementCommand) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}

	c.amount = amount
	return nil
}

func (c *RecordLoanDisbursementCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
