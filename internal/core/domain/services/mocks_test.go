package services_test

import (
	"context"
	"time"

	"pawnops/internal/core/domain/model/assignment"
	"pawnops/internal/core/domain/model/kernel"
	"pawnops/internal/core/domain/model/ledger"
	"pawnops/internal/core/domain/model/principal"
	"pawnops/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockLedgerRepository struct{ mock.Mock }

func (m *MockLedgerRepository) Add(ctx context.Context, entry *ledger.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) CurrentBalance(ctx context.Context, branchID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, branchID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) CurrentBalances(ctx context.Context) ([]ports.BranchCapital, error) {
	args := m.Called(ctx)
	return args.Get(0).([]ports.BranchCapital), args.Error(1)
}

func (m *MockLedgerRepository) GetAllForBranch(ctx context.Context, branchID int64, descending bool) ([]*ledger.Entry, error) {
	args := m.Called(ctx, branchID, descending)
	return args.Get(0).([]*ledger.Entry), args.Error(1)
}

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

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) RelocateItems(ctx context.Context, itemIDs []int64, toBranchID int64) (int64, error) {
	args := m.Called(ctx, itemIDs, toBranchID)
	return args.Get(0).(int64), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) GetRole(ctx context.Context, accountID int64) (principal.Role, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(principal.Role), args.Error(1)
}

func (m *MockAccountRepository) SetDriverLogisticsStatus(ctx context.Context, driverID int64, assignerRole principal.Role, status string) error {
	args := m.Called(ctx, driverID, assignerRole, status)
	return args.Error(0)
}

type MockReconciliationRepository struct{ mock.Mock }

func (m *MockReconciliationRepository) Add(ctx context.Context, record *ports.ReconciliationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockReconciliationRepository) GetAll(ctx context.Context, unresolvedOnly bool) ([]*ports.ReconciliationRecord, error) {
	args := m.Called(ctx, unresolvedOnly)
	return args.Get(0).([]*ports.ReconciliationRecord), args.Error(1)
}

type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockUnitOfWork) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

func (m *MockUnitOfWork) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

func (m *MockUnitOfWork) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockUnitOfWork) ReconciliationRepository() ports.ReconciliationRepository {
	args := m.Called()
	return args.Get(0).(ports.ReconciliationRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}
