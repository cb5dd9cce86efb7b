package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveMonths_InverseOfSchedule(t *testing.T) {
	ac := NewAmortizationCalculator(nil)
	ts := NewTenureSolver()
	rate := decimal.NewFromFloat(8.5)

	// Original installment for the full loan, then solve the shortened tenure
	// after a 5 lakh prepayment.
	installment := ac.ComputeInstallment(decimal.NewFromInt(2500000), rate, 240)
	reduced := decimal.NewFromInt(2000000)

	months, err := ts.SolveMonths(reduced, installment, rate)
	require.NoError(t, err)
	assert.Greater(t, months, 0)
	assert.Less(t, months, 240)

	// Building a schedule for the solved tenure with the same installment
	// retires the loan at (approximately) zero balance.
	schedule := ac.BuildSchedule(reduced, rate, months, installment)
	require.NotEmpty(t, schedule)
	assert.True(t, schedule[len(schedule)-1].EndingBalance.Abs().LessThan(decimal.NewFromFloat(0.01)))
	assert.InDelta(t, months, len(schedule), 1)
	assert.InDelta(t, reduced.InexactFloat64(), schedule.TotalPrincipal().InexactFloat64(), 0.01)
}

func TestSolveMonths_NeverAmortizes(t *testing.T) {
	ts := NewTenureSolver()
	principal := decimal.NewFromInt(1000000)
	rate := decimal.NewFromFloat(12.0)

	// Interest-only payment is exactly 10,000/month.
	_, err := ts.SolveMonths(principal, decimal.NewFromInt(10000), rate)
	assert.ErrorIs(t, err, ErrNeverAmortizes)

	_, err = ts.SolveMonths(principal, decimal.NewFromInt(9000), rate)
	assert.ErrorIs(t, err, ErrNeverAmortizes)

	// Just above interest-only amortizes, however slowly.
	months, err := ts.SolveMonths(principal, decimal.NewFromInt(10500), rate)
	require.NoError(t, err)
	assert.Greater(t, months, 0)
}

func TestSolveMonths_DegenerateInputs(t *testing.T) {
	ts := NewTenureSolver()

	for _, tt := range []struct {
		name                       string
		principal, installment, rt decimal.Decimal
	}{
		{"zero principal", decimal.Zero, decimal.NewFromInt(10000), decimal.NewFromFloat(8.5)},
		{"zero installment", decimal.NewFromInt(100000), decimal.Zero, decimal.NewFromFloat(8.5)},
		{"zero rate", decimal.NewFromInt(100000), decimal.NewFromInt(10000), decimal.Zero},
	} {
		t.Run(tt.name, func(t *testing.T) {
			months, err := ts.SolveMonths(tt.principal, tt.installment, tt.rt)
			require.NoError(t, err)
			assert.Zero(t, months)
		})
	}
}
