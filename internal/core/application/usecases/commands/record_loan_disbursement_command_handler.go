package commands

import (
	"context"
	"time"

	"pawnops/internal/core/domain/model/ledger"
	"pawnops/internal/pkg/errs"
)

// RecordLoanDisbursementCommandHandler records loan payouts against a
// branch's capital ledger. The poster serializes the balance computation
// per branch, so concurrent disbursements against the same branch never
// lose each other's deduction.
type RecordLoanDisbursementCommandHandler struct {
	poster LedgerPoster
}

// NewRecordLoanDisbursementCommandHandler creates a handler for loan
// disbursement recording.
func NewRecordLoanDisbursementCommandHandler(poster LedgerPoster) RecordLoanDisbursementCommandHandler {
	return RecordLoanDisbursementCommandHandler{
		poster: poster,
	}
}

// Handle processes the disbursement and returns the created ledger entry.
func (h *RecordLoanDisbursementCommandHandler) Handle(
	ctx context.Context,
	cmd RecordLoanDisbursementCommand,
) (*ledger.Entry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if !actor.IsAdmin() && !actor.IsAuditor() {
		return nil, errs.NewForbiddenError(actor.Role().String(), "record loan disbursements")
	}

	transactionDate := time.Now()
	if cmd.TransactionDate() != nil {
		transactionDate = *cmd.TransactionDate()
	}

	return h.poster.PostEntry(
		ctx,
		cmd.BranchID(),
		ledger.LoanDisbursement,
		cmd.Amount().Neg(),
		cmd.RelatedLoanID(),
		cmd.Description(),
		transactionDate,
	)
}
