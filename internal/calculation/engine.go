package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Vishwanath-Code01/Loan-Advisor/internal/domain"
)

// CalculationEngine orchestrates the full prepay-vs-invest comparison
type CalculationEngine struct {
	Amortization *AmortizationCalculator
	Tenure       *TenureSolver
	TaxBenefit   *TaxBenefitCalculator
	Investment   *InvestmentProjector
	Comparator   *DecisionComparator
	Logger       Logger
}

// NewCalculationEngine creates a new calculation engine with default statutory rules
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithRules(domain.DefaultDeductionRules())
}

// NewCalculationEngineWithRules creates a new calculation engine with configurable deduction rules
func NewCalculationEngineWithRules(rules domain.DeductionRules) *CalculationEngine {
	logger := NopLogger{}
	return &CalculationEngine{
		Amortization: NewAmortizationCalculator(logger),
		Tenure:       NewTenureSolver(),
		TaxBenefit:   NewTaxBenefitCalculatorWithRules(rules),
		Investment:   NewInvestmentProjectorWithRules(rules),
		Comparator:   NewDecisionComparator(),
		Logger:       logger,
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ce.Logger = l
	ce.Amortization.Logger = l
	ce.TaxBenefit.Logger = l
	ce.Investment.Logger = l
}

// validateScenario rejects unrecognized enum values. Degenerate numerics are
// not errors; they are normalized and degrade to zero results.
func validateScenario(s *domain.LoanScenario) error {
	switch s.InvestmentType {
	case domain.InvestmentEquity, domain.InvestmentFixedDeposit:
	default:
		return fmt.Errorf("investment type must be %q or %q, got %q",
			domain.InvestmentEquity, domain.InvestmentFixedDeposit, s.InvestmentType)
	}
	switch s.TaxRegime {
	case domain.TaxRegimeOld, domain.TaxRegimeNew:
	default:
		return fmt.Errorf("tax regime must be %q or %q, got %q",
			domain.TaxRegimeOld, domain.TaxRegimeNew, s.TaxRegime)
	}
	switch s.PrepaymentMethod {
	case domain.PrepayReduceInstallment, domain.PrepayReduceTenure:
	default:
		return fmt.Errorf("prepayment method must be %q or %q, got %q",
			domain.PrepayReduceInstallment, domain.PrepayReduceTenure, s.PrepaymentMethod)
	}
	return nil
}

// RunScenario runs the complete comparison for one scenario: the original
// loan, the prepaid variant, the investment projection, tax benefits for both
// schedules, the decision, and the yearly charting series. The computation is
// a pure function of the scenario; re-running with the same inputs always
// yields the same result.
func (ce *CalculationEngine) RunScenario(_ context.Context, scenario *domain.LoanScenario) (*domain.AdvisorResult, error) {
	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}

	s := scenario.Normalized()
	months := s.TenureMonths()

	originalInstallment := ce.Amortization.ComputeInstallment(s.Principal, s.AnnualRatePercent, months)
	originalSchedule := ce.Amortization.BuildSchedule(s.Principal, s.AnnualRatePercent, months, originalInstallment)
	totalInterestOriginal := originalSchedule.TotalInterest()

	ce.Logger.Debugf("original loan: installment=%s over %d months, total interest=%s",
		originalInstallment.StringFixed(2), len(originalSchedule), totalInterestOriginal.StringFixed(2))

	result := &domain.AdvisorResult{
		OriginalInstallment:   originalInstallment,
		OriginalTenureMonths:  len(originalSchedule),
		TotalInterestOriginal: totalInterestOriginal,
		OriginalSchedule:      originalSchedule,
	}

	reducedPrincipal := s.Principal.Sub(s.ExtraCash)
	var prepaidSchedule domain.AmortizationSchedule

	switch {
	case reducedPrincipal.LessThanOrEqual(decimal.Zero):
		// Lump sum retires the loan outright: zero installment, zero tenure,
		// full interest-saved credit.
		result.FullyRetired = true
		result.NewInstallment = decimal.Zero
		result.InterestSaved = totalInterestOriginal

	case s.PrepaymentMethod == domain.PrepayReduceTenure:
		result.NewInstallment = originalInstallment
		solvedMonths, err := ce.Tenure.SolveMonths(reducedPrincipal, originalInstallment, s.AnnualRatePercent)
		if errors.Is(err, ErrNeverAmortizes) {
			result.NeverAmortizes = true
			ce.Logger.Warnf("installment %s never amortizes principal %s",
				originalInstallment.StringFixed(2), reducedPrincipal.StringFixed(2))
			break
		}
		prepaidSchedule = ce.Amortization.BuildSchedule(reducedPrincipal, s.AnnualRatePercent, solvedMonths, originalInstallment)

	default: // reduce installment, tenure unchanged
		newInstallment := ce.Amortization.ComputeInstallment(reducedPrincipal, s.AnnualRatePercent, months)
		result.NewInstallment = newInstallment
		interestOnly := reducedPrincipal.Mul(MonthlyRate(s.AnnualRatePercent))
		if newInstallment.IsPositive() && newInstallment.LessThanOrEqual(interestOnly) {
			result.NeverAmortizes = true
			ce.Logger.Warnf("installment %s never amortizes principal %s",
				newInstallment.StringFixed(2), reducedPrincipal.StringFixed(2))
			break
		}
		prepaidSchedule = ce.Amortization.BuildSchedule(reducedPrincipal, s.AnnualRatePercent, months, newInstallment)
	}

	result.PrepaidSchedule = prepaidSchedule
	result.PrepaidTenureMonths = len(prepaidSchedule)
	result.TotalInterestPrepaid = prepaidSchedule.TotalInterest()
	if !result.FullyRetired && !result.NeverAmortizes {
		result.InterestSaved = totalInterestOriginal.Sub(result.TotalInterestPrepaid)
	}

	// New regime allows no home-loan deductions at all. Hard business rule.
	if s.TaxRegime == domain.TaxRegimeOld {
		result.ContinuingDeductions, result.TaxBenefitContinuing = ce.TaxBenefit.BenefitForScenario(originalSchedule, &s)
		result.PrepaidDeductions, result.TaxBenefitPrepaying = ce.TaxBenefit.BenefitForScenario(prepaidSchedule, &s)
	}

	result.Investment = ce.Investment.Project(s.ExtraCash, s.InvestmentReturnPercent, s.TenureYears, s.InvestmentType, s.TaxSlabFraction())

	result.NetBenefitInvesting, result.NetBenefitPrepaying, result.Recommendation = ce.Comparator.Compare(ComparisonInputs{
		InterestSaved:         result.InterestSaved,
		PostTaxInvestmentGain: result.Investment.PostTaxGain,
		TaxBenefitContinuing:  result.TaxBenefitContinuing,
		TaxBenefitPrepaying:   result.TaxBenefitPrepaying,
	})

	result.YearlySeries = ce.buildYearlySeries(&s, originalSchedule, prepaidSchedule)

	ce.Logger.Infof("recommendation: %s (invest=%s, prepay=%s)", result.Recommendation,
		result.NetBenefitInvesting.StringFixed(2), result.NetBenefitPrepaying.StringFixed(2))

	return result, nil
}

// buildYearlySeries re-derives the chart series at each whole-year boundary:
// the compounded investment value and cumulative interest under each variant.
func (ce *CalculationEngine) buildYearlySeries(s *domain.LoanScenario, original, prepaid domain.AmortizationSchedule) []domain.YearlyPoint {
	series := make([]domain.YearlyPoint, 0, s.TenureYears)
	for year := 1; year <= s.TenureYears; year++ {
		series = append(series, domain.YearlyPoint{
			Year:                       year,
			InvestmentValue:            ce.Investment.FutureValue(s.ExtraCash, s.InvestmentReturnPercent, year),
			CumulativeInterestOriginal: original.CumulativeInterestThrough(year * monthsInYear),
			CumulativeInterestPrepaid:  prepaid.CumulativeInterestThrough(year * monthsInYear),
		})
	}
	return series
}
