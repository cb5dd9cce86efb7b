package domain

import (
	"github.com/shopspring/decimal"
)

// Recommendation is the advisor's final call.
type Recommendation string

const (
	RecommendInvest Recommendation = "invest"
	RecommendPrepay Recommendation = "prepay"
)

// YearlyPoint is one year of the charting time series: the compounded value of
// the invested lump sum and cumulative interest paid under each loan variant.
type YearlyPoint struct {
	Year                       int             `json:"year"`
	InvestmentValue            decimal.Decimal `json:"investment_value"`
	CumulativeInterestOriginal decimal.Decimal `json:"cumulative_interest_original"`
	CumulativeInterestPrepaid  decimal.Decimal `json:"cumulative_interest_prepaid"`
}

// AdvisorResult is the complete output of one scenario run, consumed as-is by
// the presentation layer.
type AdvisorResult struct {
	OriginalInstallment  decimal.Decimal `json:"original_installment"`
	NewInstallment       decimal.Decimal `json:"new_installment"`
	OriginalTenureMonths int             `json:"original_tenure_months"`
	PrepaidTenureMonths  int             `json:"prepaid_tenure_months"`

	TotalInterestOriginal decimal.Decimal `json:"total_interest_original"`
	TotalInterestPrepaid  decimal.Decimal `json:"total_interest_prepaid"`
	InterestSaved         decimal.Decimal `json:"interest_saved"`

	Investment InvestmentOutcome `json:"investment"`

	TaxBenefitContinuing decimal.Decimal   `json:"tax_benefit_continuing"`
	TaxBenefitPrepaying  decimal.Decimal   `json:"tax_benefit_prepaying"`
	ContinuingDeductions []DeductionResult `json:"continuing_deductions,omitempty"`
	PrepaidDeductions    []DeductionResult `json:"prepaid_deductions,omitempty"`

	NetBenefitInvesting decimal.Decimal `json:"net_benefit_investing"`
	NetBenefitPrepaying decimal.Decimal `json:"net_benefit_prepaying"`
	Recommendation      Recommendation  `json:"recommendation"`

	// FullyRetired is set when the lump sum covers the outstanding principal:
	// zero installment, empty prepaid schedule, full interest-saved credit.
	FullyRetired bool `json:"fully_retired"`

	// NeverAmortizes is set when the prepaid installment cannot cover even the
	// monthly interest. Terminal state; the prepaid figures are not meaningful.
	NeverAmortizes bool `json:"never_amortizes"`

	OriginalSchedule AmortizationSchedule `json:"original_schedule"`
	PrepaidSchedule  AmortizationSchedule `json:"prepaid_schedule"`

	YearlySeries []YearlyPoint `json:"yearly_series"`
}
