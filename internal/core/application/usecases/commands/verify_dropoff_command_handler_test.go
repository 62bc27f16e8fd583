package commands_test

import (
	"testing"
	"time"

	"pawnops/internal/core/application/usecases/commands"
	"pawnops/internal/core/domain/model/assignment"
	"pawnops/internal/core/domain/model/kernel"
	"pawnops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVerifyDropoffCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	aggregate := inProgressItemTransfer(id)
	image := "https://img.example/dropoff.jpg"
	cmd, err := commands.NewVerifyDropoffCommand(id, &image, mustPrincipal(20, "logistics"))
	require.NoError(t, err)

	repo := new(MockAssignmentRepository)
	uow := new(MockAssignmentUoW)
	settlement := new(MockSettlementCoordinator)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		repo.On("UpdateIfStatus", mock.Anything, aggregate, assignment.StatusInProgress).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		settlement.On("OnAssignmentCompleted", ctx, aggregate).Return(int64(2)).Once(),
		settlement.On("SyncDriverStatus", ctx, aggregate).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("AssignmentRepository").Return(repo)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyDropoffCommandHandler(factory, settlement)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, assignment.StatusCompleted, result.Assignment.Status())
	require.NotNil(t, result.Assignment.DeliveredAt())
	require.Equal(t, &image, result.Assignment.DropoffImage())
	require.Equal(t, int64(2), result.ItemsUpdated)
	require.NotNil(t, result.NewBranchID)
	require.Equal(t, int64(2), *result.NewBranchID)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	settlement.AssertExpectations(t)
}

func TestVerifyDropoffCommandHandler_Handle_RequiresPickupFirst(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	aggregate := assignedCapitalDelivery(id) // still ASSIGNED
	cmd, err := commands.NewVerifyDropoffCommand(id, nil, mustPrincipal(20, "logistics"))
	require.NoError(t, err)

	repo := new(MockAssignmentRepository)
	uow := new(MockAssignmentUoW)
	settlement := new(MockSettlementCoordinator)
	uow.On("Begin", ctx).Return(nil)
	uow.On("AssignmentRepository").Return(repo)
	repo.On("Get", mock.Anything, id).Return(aggregate, nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewVerifyDropoffCommandHandler(factory, settlement)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "UpdateIfStatus")
	settlement.AssertNotCalled(t, "OnAssignmentCompleted")
}

func TestVerifyDropoffCommandHandler_Handle_RepeatDropoffReadsAsNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	aggregate := inProgressItemTransfer(id)
	require.NoError(t, aggregate.VerifyDropoff(nil, time.Now())) // already delivered
	cmd, err := commands.NewVerifyDropoffCommand(id, nil, mustPrincipal(20, "logistics"))
	require.NoError(t, err)

	repo := new(MockAssignmentRepository)
	uow := new(MockAssignmentUoW)
	settlement := new(MockSettlementCoordinator)
	uow.On("Begin", ctx).Return(nil)
	uow.On("AssignmentRepository").Return(repo)
	repo.On("Get", mock.Anything, id).Return(aggregate, nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewVerifyDropoffCommandHandler(factory, settlement)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "UpdateIfStatus")
	settlement.AssertNotCalled(t, "OnAssignmentCompleted")
	settlement.AssertNotCalled(t, "SyncDriverStatus")
}

func TestVerifyDropoffCommandHandler_Handle_OtherDriverForbidden(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	aggregate := inProgressItemTransfer(id) // carried by driver 20
	cmd, err := commands.NewVerifyDropoffCommand(id, nil, mustPrincipal(99, "logistics"))
	require.NoError(t, err)

	repo := new(MockAssignmentRepository)
	uow := new(MockAssignmentUoW)
	settlement := new(MockSettlementCoordinator)
	uow.On("Begin", ctx).Return(nil)
	uow.On("AssignmentRepository").Return(repo)
	repo.On("Get", mock.Anything, id).Return(aggregate, nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewVerifyDropoffCommandHandler(factory, settlement)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	require.Equal(t, assignment.StatusInProgress, aggregate.Status())
}

func TestVerifyDropoffCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	aggregate := inProgressItemTransfer(id)
	cmd, err := commands.NewVerifyDropoffCommand(id, nil, mustPrincipal(20, "logistics"))
	require.NoError(t, err)

	repo := new(MockAssignmentRepository)
	uow := new(MockAssignmentUoW)
	settlement := new(MockSettlementCoordinator)
	uow.On("Begin", ctx).Return(nil)
	uow.On("AssignmentRepository").Return(repo)
	repo.On("Get", mock.Anything, id).Return(aggregate, nil)
	repo.On("UpdateIfStatus", mock.Anything, aggregate, assignment.StatusInProgress).
		Return(errs.NewObjectNotFoundError("assignment in status IN_PROGRESS", id))
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewVerifyDropoffCommandHandler(factory, settlement)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	settlement.AssertNotCalled(t, "OnAssignmentCompleted")
	uow.AssertNotCalled(t, "Commit")
}

func TestVerifyDropoffCommandHandler_Handle_VaultDestinationHasNoBranch(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	aggregate, err := assignment.NewAssignment(
		id,
		assignment.BalanceDelivery,
		assignment.LocationBranch, assignment.LocationVault,
		int64Ptr(1), nil,
		nil,
		decimalPtr(decimal.NewFromInt(3000)),
		1, 20,
		nil, "",
		time.Now(),
	)
	require.NoError(t, err)
	require.NoError(t, aggregate.VerifyPickup(nil, time.Now()))

	cmd, err := commands.NewVerifyDropoffCommand(id, nil, mustPrincipal(20, "logistics"))
	require.NoError(t, err)

	repo := new(MockAssignmentRepository)
	uow := new(MockAssignmentUoW)
	settlement := new(MockSettlementCoordinator)
	uow.On("Begin", ctx).Return(nil)
	uow.On("AssignmentRepository").Return(repo)
	repo.On("Get", mock.Anything, id).Return(aggregate, nil)
	repo.On("UpdateIfStatus", mock.Anything, aggregate, assignment.StatusInProgress).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	settlement.On("OnAssignmentCompleted", ctx, aggregate).Return(int64(0))
	settlement.On("SyncDriverStatus", ctx, aggregate)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewVerifyDropoffCommandHandler(factory, settlement)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Nil(t, result.NewBranchID)
	require.Zero(t, result.ItemsUpdated)
}
