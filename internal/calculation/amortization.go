package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/Vishwanath-Code01/Loan-Advisor/internal/domain"
)

var (
	hundred      = decimal.NewFromInt(100)
	twelve       = decimal.NewFromInt(12)
	one          = decimal.NewFromInt(1)
	monthsInYear = 12
)

// MonthlyRate converts an annual percentage rate to a monthly fraction
// (8.5 -> 0.0070833...).
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(hundred).Div(twelve)
}

// AmortizationCalculator computes installments and month-by-month schedules
// for an amortizing loan.
type AmortizationCalculator struct {
	Logger Logger
}

// NewAmortizationCalculator creates a new amortization calculator
func NewAmortizationCalculator(logger Logger) *AmortizationCalculator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &AmortizationCalculator{Logger: logger}
}

// ComputeInstallment returns the fixed monthly payment that amortizes the
// principal over the given number of months:
//
//	i = P·r·(1+r)^n / ((1+r)^n − 1)
//
// Degenerate inputs (non-positive principal, rate, or months) return zero
// rather than an error; the engine runs against user-editable live input.
func (ac *AmortizationCalculator) ComputeInstallment(principal, annualRatePercent decimal.Decimal, months int) decimal.Decimal {
	if principal.LessThanOrEqual(decimal.Zero) || annualRatePercent.LessThanOrEqual(decimal.Zero) || months <= 0 {
		return decimal.Zero
	}

	rate := MonthlyRate(annualRatePercent)
	factor := one.Add(rate).Pow(decimal.NewFromInt(int64(months)))
	return principal.Mul(rate).Mul(factor).Div(factor.Sub(one))
}

// BuildSchedule produces the month-by-month breakdown of each payment into
// interest and principal. The schedule truncates the moment the balance
// reaches zero, so its length varies with payoff time. The loop is bounded by
// months even when the installment cannot cover the interest; detecting that
// case up front is the caller's job (see TenureSolver and the engine).
func (ac *AmortizationCalculator) BuildSchedule(principal, annualRatePercent decimal.Decimal, months int, installment decimal.Decimal) domain.AmortizationSchedule {
	if principal.LessThanOrEqual(decimal.Zero) || months <= 0 || installment.LessThanOrEqual(decimal.Zero) {
		return domain.AmortizationSchedule{}
	}

	rate := MonthlyRate(annualRatePercent)
	schedule := make(domain.AmortizationSchedule, 0, months)
	balance := principal

	for month := 1; month <= months; month++ {
		interest := balance.Mul(rate)
		principalPart := installment.Sub(interest)
		if principalPart.IsNegative() {
			principalPart = decimal.Zero
		}
		if principalPart.GreaterThan(balance) {
			// Final payment: principal portion capped so the balance never
			// goes negative.
			principalPart = balance
		}
		balance = balance.Sub(principalPart)

		schedule = append(schedule, domain.AmortizationRow{
			Month:         month,
			Interest:      interest,
			Principal:     principalPart,
			EndingBalance: balance,
		})

		if balance.LessThanOrEqual(decimal.Zero) {
			break
		}
	}

	return schedule
}
