package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/Vishwanath-Code01/Loan-Advisor/internal/domain"
)

// STATUTORY MODEL ASSUMPTIONS:
//
// 1. Section 24(b) interest deduction: ₹2,00,000 per year for self-occupied
//    property, doubled to ₹4,00,000 when the loan is held jointly. Let-out
//    property is nominally uncapped but the loss set-off ceiling of ₹2,00,000
//    is modeled identically to a cap.
//
// 2. Section 80C principal deduction: ₹1,50,000 per year, reduced by whatever
//    the borrower has already consumed elsewhere (insurance, PF, ELSS). The
//    remaining allowance is a static input, not recomputed per year.
//
// 3. Equity LTCG: ₹1,00,000 annual exemption, 10% flat rate on the excess.
//
// 4. Caps apply per year independently; unused headroom never rolls over.
//
// 5. The new tax regime allows none of these deductions. Suppression is a
//    hard rule applied by the engine, not an approximation.

// TaxBenefitCalculator aggregates a monthly schedule into loan years and
// applies the statutory deduction caps. One calculator serves both loan
// variants; it carries no per-scenario state.
type TaxBenefitCalculator struct {
	Rules  domain.DeductionRules
	Logger Logger
}

// NewTaxBenefitCalculator creates a calculator with the default statutory rules.
func NewTaxBenefitCalculator() *TaxBenefitCalculator {
	return &TaxBenefitCalculator{Rules: domain.DefaultDeductionRules(), Logger: NopLogger{}}
}

// NewTaxBenefitCalculatorWithRules creates a calculator with configurable caps.
func NewTaxBenefitCalculatorWithRules(rules domain.DeductionRules) *TaxBenefitCalculator {
	return &TaxBenefitCalculator{Rules: rules, Logger: NopLogger{}}
}

// AccrueAnnual buckets the monthly rows into loan years in chronological
// order. A partial trailing year is kept when the schedule is shorter than a
// whole-year multiple.
func (tbc *TaxBenefitCalculator) AccrueAnnual(schedule domain.AmortizationSchedule) []domain.AnnualAggregate {
	if len(schedule) == 0 {
		return nil
	}

	years := (len(schedule) + monthsInYear - 1) / monthsInYear
	aggregates := make([]domain.AnnualAggregate, 0, years)

	for i, row := range schedule {
		if i%monthsInYear == 0 {
			aggregates = append(aggregates, domain.AnnualAggregate{
				Year:      i/monthsInYear + 1,
				Interest:  decimal.Zero,
				Principal: decimal.Zero,
			})
		}
		agg := &aggregates[len(aggregates)-1]
		agg.Interest = agg.Interest.Add(row.Interest)
		agg.Principal = agg.Principal.Add(row.Principal)
	}

	return aggregates
}

// InterestCap returns the per-year interest ceiling for the given ownership
// shape: doubled for a jointly held self-occupied property, otherwise the
// base cap (which also models the let-out loss set-off ceiling).
func (tbc *TaxBenefitCalculator) InterestCap(selfOccupied, jointLoan bool) decimal.Decimal {
	if selfOccupied && jointLoan {
		return tbc.Rules.InterestCap.Mul(decimal.NewFromInt(2))
	}
	return tbc.Rules.InterestCap
}

// RemainingPrincipalCap returns the 80C allowance left after the amount
// already consumed elsewhere.
func (tbc *TaxBenefitCalculator) RemainingPrincipalCap(used decimal.Decimal) decimal.Decimal {
	remaining := tbc.Rules.PrincipalCap.Sub(used)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// ApplyDeductionCaps caps each year's interest and principal independently,
// converts the deductible amounts to a benefit at the marginal slab, and
// returns the per-year breakdown plus the accumulated total.
func (tbc *TaxBenefitCalculator) ApplyDeductionCaps(aggregates []domain.AnnualAggregate, interestCap, principalCapRemaining, slabFraction decimal.Decimal) ([]domain.DeductionResult, decimal.Decimal) {
	results := make([]domain.DeductionResult, 0, len(aggregates))
	total := decimal.Zero

	for _, agg := range aggregates {
		interestDeduction := decimal.Min(agg.Interest, interestCap)
		principalDeduction := decimal.Min(agg.Principal, principalCapRemaining)
		benefit := interestDeduction.Add(principalDeduction).Mul(slabFraction)

		results = append(results, domain.DeductionResult{
			Year:               agg.Year,
			InterestDeduction:  interestDeduction,
			PrincipalDeduction: principalDeduction,
			TaxBenefit:         benefit,
		})
		total = total.Add(benefit)
	}

	return results, total
}

// BenefitForScenario runs the full accrual-and-cap pipeline for one schedule
// using the scenario's ownership shape, 80C usage, and slab.
func (tbc *TaxBenefitCalculator) BenefitForScenario(schedule domain.AmortizationSchedule, scenario *domain.LoanScenario) ([]domain.DeductionResult, decimal.Decimal) {
	aggregates := tbc.AccrueAnnual(schedule)
	interestCap := tbc.InterestCap(scenario.SelfOccupied, scenario.JointLoan)
	principalCap := tbc.RemainingPrincipalCap(scenario.Used80CAmount)
	return tbc.ApplyDeductionCaps(aggregates, interestCap, principalCap, scenario.TaxSlabFraction())
}
