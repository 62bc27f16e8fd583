package commands_test

import (
	"testing"
	"time"

	"pawnops/internal/core/application/usecases/commands"
	"pawnops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewRecordLoanDisbursementCommand_Success(t *testing.T) {
	txDate := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	actor := mustPrincipal(1, "admin")

	cmd, err := commands.NewRecordLoanDisbursementCommand(
		1, decimal.NewFromInt(2500), int64Ptr(77), "loan payout", &txDate, actor)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, int64(1), cmd.BranchID())
	require.True(t, cmd.Amount().Equal(decimal.NewFromInt(2500)))
	require.Equal(t, int64Ptr(77), cmd.RelatedLoanID())
	require.Equal(t, "loan payout", cmd.Description())
	require.Equal(t, &txDate, cmd.TransactionDate())
}

func TestNewRecordLoanDisbursementCommand_BranchRequired(t *testing.T) {
	_, err := commands.NewRecordLoanDisbursementCommand(
		0, decimal.NewFromInt(2500), nil, "", nil, mustPrincipal(1, "admin"))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewRecordLoanDisbursementCommand_AmountMustBePositive(t *testing.T) {
	_, err := commands.NewRecordLoanDisbursementCommand(
		1, decimal.Zero, nil, "", nil, mustPrincipal(1, "admin"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewRecordLoanDisbursementCommand(
		1, decimal.NewFromInt(-100), nil, "", nil, mustPrincipal(1, "admin"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRecordLoanDisbursementCommand_ZeroValueIsInvalid(t *testing.T) {
	var cmd commands.RecordLoanDisbursementCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrRecordLoanDisbursementCommandIsNotConstructed)
}
