package ledger

import (
	"errors"
	"time"

	"pawnops/internal/pkg/errs"
	"pawnops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created
// through NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructor")

// Entry is one immutable capital movement affecting one branch's balance.
//
// Invariants:
//   - branch id is positive
//   - transaction type is valid and its sign convention holds
//   - running balance equals the previous balance plus this entry's amount
//     (a write-time responsibility of the caller computing the balance)
//
// The entry id is assigned by the database on insert; entries built with
// NewEntry carry a zero id until persisted.
type Entry struct {
	// id is the database-assigned monotonic identifier (0 until persisted)
	id int64
	// branchID identifies the branch whose balance this entry affects
	branchID int64
	// transactionType classifies the movement
	transactionType TransactionType
	// amount is the signed movement: positive inflow, negative outflow
	amount decimal.Decimal
	// runningBalance is the branch balance immediately after this entry
	runningBalance decimal.Decimal
	// relatedLoanID references the loan for LOAN_DISBURSEMENT entries
	relatedLoanID *int64
	// description is free-form operator text
	description string
	// transactionDate is the calendar date of the movement
	transactionDate time.Time
	// createdAt orders entries within a day
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewEntry creates an unpersisted ledger entry. The caller supplies the
// running balance it computed from the branch's previous balance; see the
// package documentation for the serialization requirement around that
// computation.
func NewEntry(
	branchID int64,
	transactionType TransactionType,
	amount decimal.Decimal,
	runningBalance decimal.Decimal,
	relatedLoanID *int64,
	description string,
	transactionDate time.Time,
	createdAt time.Time,
) (*Entry, error) {
	entry := &Entry{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setBranchID(branchID),
		entry.setTransaction(transactionType, amount),
		entry.setTimes(transactionDate, createdAt),
	); err != nil {
		return nil, err
	}

	entry.runningBalance = runningBalance
	entry.relatedLoanID = relatedLoanID
	entry.description = description
	return entry, nil
}

// RestoreEntry reconstructs a persisted entry, including its
// database-assigned id. Used by repositories when mapping rows back to the
// domain.
func RestoreEntry(
	id int64,
	branchID int64,
	transactionType TransactionType,
	amount decimal.Decimal,
	runningBalance decimal.Decimal,
	relatedLoanID *int64,
	description string,
	transactionDate time.Time,
	createdAt time.Time,
) (*Entry, error) {
	entry, err := NewEntry(branchID, transactionType, amount, runningBalance,
		relatedLoanID, description, transactionDate, createdAt)
	if err != nil {
		return nil, err
	}

	entry.id = id
	return entry, nil
}

// Validate ensures the entry was created through a constructor.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the database-assigned identifier (0 until persisted).
func (e *Entry) ID() int64 {
	return e.id
}

// BranchID returns the branch whose balance this entry affects.
func (e *Entry) BranchID() int64 {
	return e.branchID
}

// TransactionType returns the movement classification.
func (e *Entry) TransactionType() TransactionType {
	return e.transactionType
}

// Amount returns the signed movement amount.
func (e *Entry) Amount() decimal.Decimal {
	return e.amount
}

// RunningBalance returns the branch balance immediately after this entry.
func (e *Entry) RunningBalance() decimal.Decimal {
	return e.runningBalance
}

// RelatedLoanID returns the referenced loan, or nil.
func (e *Entry) RelatedLoanID() *int64 {
	return e.relatedLoanID
}

// Description returns the operator-facing description.
func (e *Entry) Description() string {
	return e.description
}

// TransactionDate returns the calendar date of the movement.
func (e *Entry) TransactionDate() time.Time {
	return e.transactionDate
}

// CreatedAt returns the creation timestamp used for ordering.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) setBranchID(branchID int64) error {
	if branchID <= 0 {
		return errs.NewValueIsRequiredError("branch id")
	}
	e.branchID = branchID
	return nil
}

func (e *Entry) setTransaction(transactionType TransactionType, amount decimal.Decimal) error {
	if err := transactionType.Validate(); err != nil {
		return err
	}
	if err := transactionType.ValidateSign(amount); err != nil {
		return err
	}
	e.transactionType = transactionType
	e.amount = amount
	return nil
}

func (e *Entry) setTimes(transactionDate, createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	if transactionDate.IsZero() {
		transactionDate = createdAt
	}
	e.transactionDate = transactionDate
	e.createdAt = createdAt
	return nil
}
