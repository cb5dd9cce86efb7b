package calculation

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrNeverAmortizes reports that a fixed installment is at or below the
// interest-only payment, so the loan would never be retired. Callers must
// treat this as a terminal scenario state, not retry or truncate.
var ErrNeverAmortizes = errors.New("installment never amortizes the principal")

// TenureSolver answers how many months a fixed installment takes to retire a
// principal, used when a prepayment keeps the original installment and
// shortens tenure instead.
type TenureSolver struct{}

// NewTenureSolver creates a new tenure solver
func NewTenureSolver() *TenureSolver {
	return &TenureSolver{}
}

// SolveMonths returns the number of monthly payments needed to retire the
// principal at the given fixed installment, via the closed form
//
//	n = ceil( −ln(1 − P·r/E) / ln(1+r) )
//
// Non-positive principal, installment, or rate return zero months. If the
// installment cannot cover even the first month's interest the loan never
// amortizes and ErrNeverAmortizes is returned.
//
// The logarithms are evaluated in float64; the result is a whole month count
// and the sub-paise rounding error is absorbed by the ceiling.
func (ts *TenureSolver) SolveMonths(principal, installment, annualRatePercent decimal.Decimal) (int, error) {
	if principal.LessThanOrEqual(decimal.Zero) || installment.LessThanOrEqual(decimal.Zero) || annualRatePercent.LessThanOrEqual(decimal.Zero) {
		return 0, nil
	}

	rate := MonthlyRate(annualRatePercent)
	interestOnly := principal.Mul(rate)
	if installment.LessThanOrEqual(interestOnly) {
		return 0, ErrNeverAmortizes
	}

	r := rate.InexactFloat64()
	ratio := principal.Mul(rate).Div(installment).InexactFloat64()
	months := math.Ceil(-math.Log(1-ratio) / math.Log(1+r))
	return int(months), nil
}
