package commands_test

import (
	"context"
	"time"

	"pawnops/internal/core/application/usecases/commands"
	"pawnops/internal/core/domain/model/assignment"
	"pawnops/internal/core/domain/model/kernel"
	"pawnops/internal/core/domain/model/ledger"
	"pawnops/internal/core/domain/model/principal"
	"pawnops/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) UpdateIfStatus(ctx context.Context, a *assignment.Assignment, expected assignment.Status) error {
	args := m.Called(ctx, a, expected)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetAllOverdue(ctx context.Context, asOf time.Time) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

type MockAssignmentUoW struct{ mock.Mock }

func (m *MockAssignmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockSettlementCoordinator struct{ mock.Mock }

func (m *MockSettlementCoordinator) OnAssignmentCreated(ctx context.Context, a *assignment.Assignment) {
	m.Called(ctx, a)
}

func (m *MockSettlementCoordinator) OnAssignmentCompleted(ctx context.Context, a *assignment.Assignment) int64 {
	args := m.Called(ctx, a)
	return args.Get(0).(int64)
}

func (m *MockSettlementCoordinator) SyncDriverStatus(ctx context.Context, a *assignment.Assignment) {
	m.Called(ctx, a)
}

type MockLedgerPoster struct{ mock.Mock }

func (m *MockLedgerPoster) PostEntry(
	ctx context.Context,
	branchID int64,
	transactionType ledger.TransactionType,
	amount decimal.Decimal,
	relatedLoanID *int64,
	description string,
	transactionDate time.Time,
) (*ledger.Entry, error) {
	args := m.Called(ctx, branchID, transactionType, amount, relatedLoanID, description, transactionDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Entry), args.Error(1)
}

func mustPrincipal(id int64, role string) principal.Principal {
	p, err := principal.NewPrincipal(id, role)
	if err != nil {
		panic(err)
	}
	return p
}

func int64Ptr(v int64) *int64 { return &v }

func decimalPtr(v decimal.Decimal) *decimal.Decimal { return &v }

// assignedCapitalDelivery builds a CAPITAL_DELIVERY from branch 1 to
// branch 2 in ASSIGNED status, carried by driver 20.
func assignedCapitalDelivery(id kernel.UUID) *assignment.Assignment {
	a, err := assignment.NewAssignment(
		id,
		assignment.CapitalDelivery,
		assignment.LocationBranch, assignment.LocationBranch,
		int64Ptr(1), int64Ptr(2),
		nil,
		decimalPtr(decimal.NewFromInt(5000)),
		1, 20,
		nil, "",
		time.Now(),
	)
	if err != nil {
		panic(err)
	}
	return a
}

// inProgressItemTransfer builds an ITEM_TRANSFER already picked up by
// driver 20.
func inProgressItemTransfer(id kernel.UUID) *assignment.Assignment {
	a, err := assignment.NewAssignment(
		id,
		assignment.ItemTransfer,
		assignment.LocationBranch, assignment.LocationBranch,
		int64Ptr(1), int64Ptr(2),
		[]int64{101, 102},
		nil,
		1, 20,
		nil, "",
		time.Now(),
	)
	if err != nil {
		panic(err)
	}
	if err := a.VerifyPickup(nil, time.Now()); err != nil {
		panic(err)
	}
	return a
}
