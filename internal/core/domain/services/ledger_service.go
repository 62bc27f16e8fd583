package services

import (
	"context"
	"time"

	"pawnops/internal/core/domain/model/ledger"
	"pawnops/internal/core/ports"
	"pawnops/internal/pkg/errs"
	"pawnops/internal/pkg/lock"

	"github.com/shopspring/decimal"
)

// lockAcquireTimeout bounds how long one posting may wait for its branch
// lock before the attempt is abandoned.
const lockAcquireTimeout = 3 * time.Second

// LedgerService posts entries to the append-only capital ledger.
//
// Each entry stores the branch balance that resulted from it, so the
// read-balance/insert-entry pair must not interleave for the same branch.
// The service serializes that pair with a per-branch mutex; the insert
// itself runs in its own transaction.
type LedgerService struct {
	uowFactory  ports.UnitOfWorkFactory
	branchLocks *lock.KeyedMutex
}

// NewLedgerService creates a LedgerService.
func NewLedgerService(uowFactory ports.UnitOfWorkFactory) (*LedgerService, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}

	return &LedgerService{
		uowFactory:  uowFactory,
		branchLocks: lock.NewKeyedMutex(),
	}, nil
}

// PostEntry reads the branch's current balance, computes the new running
// balance and inserts the entry, all under the branch lock. The amount is
// signed; sign conventions are enforced by the entry constructor.
//
// Lock acquisition is bounded and retried once. A second timeout surfaces
// as ErrConcurrencyConflict.
func (s *LedgerService) PostEntry(
	ctx context.Context,
	branchID int64,
	transactionType ledger.TransactionType,
	amount decimal.Decimal,
	relatedLoanID *int64,
	description string,
	transactionDate time.Time,
) (*ledger.Entry, error) {
	unlock, err := s.acquireBranchLock(ctx, branchID)
	if err != nil {
		// one retry absorbs a momentarily congested branch
		unlock, err = s.acquireBranchLock(ctx, branchID)
		if err != nil {
			return nil, errs.NewConcurrencyConflictError("branch ledger", err)
		}
	}
	defer unlock()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback(ctx) //nolint:errcheck // no-op after commit

	balance, err := uow.LedgerRepository().CurrentBalance(ctx, branchID)
	if err != nil {
		return nil, err
	}

	entry, err := ledger.NewEntry(branchID, transactionType, amount,
		balance.Add(amount), relatedLoanID, description, transactionDate, time.Now())
	if err != nil {
		return nil, err
	}

	if err := uow.LedgerRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *LedgerService) acquireBranchLock(ctx context.Context, branchID int64) (func(), error) {
	lockCtx, cancel := context.WithTimeout(ctx, lockAcquireTimeout)
	defer cancel()

	return s.branchLocks.Lock(lockCtx, branchID)
}
