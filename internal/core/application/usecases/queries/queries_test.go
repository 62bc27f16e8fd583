package queries_test

import (
	"testing"

	"pawnops/internal/core/application/usecases/queries"
	"pawnops/internal/core/domain/model/kernel"
	"pawnops/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestNewGetBranchCapitalQuery(t *testing.T) {
	q, err := queries.NewGetBranchCapitalQuery(3)
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	require.Equal(t, int64(3), q.BranchID())

	_, err = queries.NewGetBranchCapitalQuery(0)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero queries.GetBranchCapitalQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetBranchCapitalQueryIsNotConstructed)
}

func TestNewGetBranchLedgerQuery(t *testing.T) {
	q, err := queries.NewGetBranchLedgerQuery(3)
	require.NoError(t, err)
	require.NoError(t, q.Validate())

	_, err = queries.NewGetBranchLedgerQuery(-1)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero queries.GetBranchLedgerQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetBranchLedgerQueryIsNotConstructed)
}

func TestNewGetActiveAssignmentsQuery(t *testing.T) {
	q, err := queries.NewGetActiveAssignmentsQuery(nil)
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	require.Nil(t, q.BranchID())

	q, err = queries.NewGetActiveAssignmentsQuery(int64Ptr(2))
	require.NoError(t, err)
	require.Equal(t, int64(2), *q.BranchID())

	_, err = queries.NewGetActiveAssignmentsQuery(int64Ptr(0))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero queries.GetActiveAssignmentsQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetActiveAssignmentsQueryIsNotConstructed)
}

func TestNewGetBranchAssignmentsQuery(t *testing.T) {
	q, err := queries.NewGetBranchAssignmentsQuery(1)
	require.NoError(t, err)
	require.NoError(t, q.Validate())

	_, err = queries.NewGetBranchAssignmentsQuery(0)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero queries.GetBranchAssignmentsQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetBranchAssignmentsQueryIsNotConstructed)
}

func TestNewGetAssignmentQuery(t *testing.T) {
	id := kernel.NewUUID()
	q, err := queries.NewGetAssignmentQuery(id)
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	require.Equal(t, id, q.AssignmentID())

	_, err = queries.NewGetAssignmentQuery(kernel.UUID{})
	require.Error(t, err)

	var zero queries.GetAssignmentQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetAssignmentQueryIsNotConstructed)
}

func TestNewGetReconciliationLogQuery(t *testing.T) {
	q := queries.NewGetReconciliationLogQuery(true)
	require.NoError(t, q.Validate())
	require.True(t, q.UnresolvedOnly())

	var zero queries.GetReconciliationLogQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetReconciliationLogQueryIsNotConstructed)
}
