package ports

import (
	"context"
	"time"
)

// ReconciliationStep identifies which settlement side effect failed.
type ReconciliationStep string

const (
	StepLedgerOutbound ReconciliationStep = "LEDGER_OUTBOUND"
	StepLedgerInbound  ReconciliationStep = "LEDGER_INBOUND"
	StepItemRelocation ReconciliationStep = "ITEM_RELOCATION"
	StepDriverStatus   ReconciliationStep = "DRIVER_STATUS"
)

// ReconciliationRecord is one failed settlement side effect awaiting
// manual follow-up.
type ReconciliationRecord struct {
	ID           int64
	AssignmentID string
	Step         ReconciliationStep
	Detail       string
	Resolved     bool
	CreatedAt    time.Time
}

// ReconciliationRepository persists the operator-facing record of failed
// settlement side effects. Assignments commit independently of their
// capital and inventory consequences, so a failed consequence must leave
// a durable trace instead of rolling anything back.
type ReconciliationRepository interface {
	// Add records a failed side effect.
	Add(ctx context.Context, record *ReconciliationRecord) error

	// GetAll lists records, optionally filtered to unresolved ones,
	// newest first.
	GetAll(ctx context.Context, unresolvedOnly bool) ([]*ReconciliationRecord, error)
}
