package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeInstallment_ReferenceLoan(t *testing.T) {
	ac := NewAmortizationCalculator(nil)

	// 25 lakh at 8.5% over 20 years is the standard reference case.
	installment := ac.ComputeInstallment(decimal.NewFromInt(2500000), decimal.NewFromFloat(8.5), 240)
	assert.InDelta(t, 21696, installment.InexactFloat64(), 1.0)
}

func TestComputeInstallment_DegenerateInputs(t *testing.T) {
	ac := NewAmortizationCalculator(nil)

	tests := []struct {
		name      string
		principal decimal.Decimal
		rate      decimal.Decimal
		months    int
	}{
		{"zero principal", decimal.Zero, decimal.NewFromFloat(8.5), 240},
		{"negative principal", decimal.NewFromInt(-100), decimal.NewFromFloat(8.5), 240},
		{"zero rate", decimal.NewFromInt(2500000), decimal.Zero, 240},
		{"zero months", decimal.NewFromInt(2500000), decimal.NewFromFloat(8.5), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, ac.ComputeInstallment(tt.principal, tt.rate, tt.months).IsZero())
		})
	}
}

func TestBuildSchedule_FullAmortization(t *testing.T) {
	ac := NewAmortizationCalculator(nil)
	principal := decimal.NewFromInt(2500000)
	rate := decimal.NewFromFloat(8.5)
	months := 240

	installment := ac.ComputeInstallment(principal, rate, months)
	schedule := ac.BuildSchedule(principal, rate, months, installment)

	require.NotEmpty(t, schedule)
	assert.LessOrEqual(t, len(schedule), months)

	// Final balance reaches zero within sub-paise tolerance.
	last := schedule[len(schedule)-1]
	assert.True(t, last.EndingBalance.Abs().LessThan(decimal.NewFromFloat(0.01)),
		"final balance should be zero, got %s", last.EndingBalance)

	// Total interest over the full tenure.
	assert.InDelta(t, 2706967, schedule.TotalInterest().InexactFloat64(), 50)

	// Principal portions add back up to the loan amount.
	assert.InDelta(t, principal.InexactFloat64(), schedule.TotalPrincipal().InexactFloat64(), 0.01)
}

func TestBuildSchedule_RowInvariants(t *testing.T) {
	ac := NewAmortizationCalculator(nil)
	principal := decimal.NewFromInt(1000000)
	rate := decimal.NewFromFloat(9.0)
	months := 120

	installment := ac.ComputeInstallment(principal, rate, months)
	schedule := ac.BuildSchedule(principal, rate, months, installment)
	require.NotEmpty(t, schedule)

	prevBalance := principal
	for i, row := range schedule {
		assert.Equal(t, i+1, row.Month, "months are 1-based and sequential")

		// interest + principal equals the installment for every row except a
		// truncated final one.
		if i < len(schedule)-1 {
			sum := row.Interest.Add(row.Principal)
			assert.InDelta(t, installment.InexactFloat64(), sum.InexactFloat64(), 0.0001, "row %d", i+1)
		}

		assert.True(t, row.EndingBalance.LessThanOrEqual(prevBalance), "balance must be non-increasing at row %d", i+1)
		assert.False(t, row.EndingBalance.IsNegative(), "balance must never go negative at row %d", i+1)
		prevBalance = row.EndingBalance
	}
}

func TestBuildSchedule_InterestRoundTrip(t *testing.T) {
	ac := NewAmortizationCalculator(nil)
	principal := decimal.NewFromInt(1500000)
	rate := decimal.NewFromFloat(7.25)
	months := 180

	installment := ac.ComputeInstallment(principal, rate, months)
	schedule := ac.BuildSchedule(principal, rate, months, installment)
	require.NotEmpty(t, schedule)

	// Sum of interest == installment × rows − principal, within tolerance of
	// the truncated final payment.
	expected := installment.Mul(decimal.NewFromInt(int64(len(schedule)))).Sub(principal)
	assert.InDelta(t, expected.InexactFloat64(), schedule.TotalInterest().InexactFloat64(), 1.0)
}

func TestBuildSchedule_TruncatesEarly(t *testing.T) {
	ac := NewAmortizationCalculator(nil)
	principal := decimal.NewFromInt(500000)
	rate := decimal.NewFromFloat(8.0)

	// An installment sized for 60 months retires the loan well before the
	// 240-month bound.
	installment := ac.ComputeInstallment(principal, rate, 60)
	schedule := ac.BuildSchedule(principal, rate, 240, installment)

	require.NotEmpty(t, schedule)
	assert.LessOrEqual(t, len(schedule), 61)
	assert.True(t, schedule[len(schedule)-1].EndingBalance.Abs().LessThan(decimal.NewFromFloat(0.01)))
}

func TestBuildSchedule_NonAmortizingInstallmentIsBounded(t *testing.T) {
	ac := NewAmortizationCalculator(nil)
	principal := decimal.NewFromInt(1000000)
	rate := decimal.NewFromFloat(12.0)
	months := 120

	// Installment below the interest-only payment (10,000/month): the loop
	// must stop at the month bound instead of running forever.
	installment := decimal.NewFromInt(5000)
	schedule := ac.BuildSchedule(principal, rate, months, installment)

	assert.Len(t, schedule, months)
	for _, row := range schedule {
		assert.True(t, row.Principal.IsZero())
		assert.True(t, row.EndingBalance.Equal(principal))
	}
}
