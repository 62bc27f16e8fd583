// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"pawnops/internal/core/domain/model/assignment"
	"pawnops/internal/core/domain/model/ledger"
	"pawnops/internal/core/ports"

	"github.com/shopspring/decimal"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AssignmentRepoFactory provides access to the assignment repository
	// within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// AssignmentUoW manages transactions for assignment operations. The
	// capital and inventory consequences of an assignment run outside
	// this transaction; see SettlementCoordinator.
	AssignmentUoW interface {
		TxManager
		AssignmentRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}
)

// SettlementCoordinator applies the capital, inventory and driver-status
// consequences of assignment lifecycle edges. All of its operations are
// best-effort: the assignment write has already committed when they run,
// and failures surface in the reconciliation log instead of errors.
type SettlementCoordinator interface {
	// OnAssignmentCreated posts the outbound capital deduction for
	// capital-type assignments.
	OnAssignmentCreated(ctx context.Context, a *assignment.Assignment)

	// OnAssignmentCompleted relocates carried items and posts the inbound
	// capital addition. Returns how many inventory rows moved.
	OnAssignmentCompleted(ctx context.Context, a *assignment.Assignment) int64

	// SyncDriverStatus mirrors the assignment's activity onto the
	// driver's logistics status field. The column written is owned by
	// the role of the principal who created the assignment, resolved
	// from the assigner's account.
	SyncDriverStatus(ctx context.Context, a *assignment.Assignment)
}

// LedgerPoster posts entries to the capital ledger, serializing the
// balance computation per branch.
type LedgerPoster interface {
	PostEntry(
		ctx context.Context,
		branchID int64,
		transactionType ledger.TransactionType,
		amount decimal.Decimal,
		relatedLoanID *int64,
		description string,
		transactionDate time.Time,
	) (*ledger.Entry, error)
}
