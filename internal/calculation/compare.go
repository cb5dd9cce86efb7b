package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/Vishwanath-Code01/Loan-Advisor/internal/domain"
)

// ComparisonInputs carries the four totals the decision reduces to.
type ComparisonInputs struct {
	InterestSaved         decimal.Decimal
	PostTaxInvestmentGain decimal.Decimal
	TaxBenefitContinuing  decimal.Decimal
	TaxBenefitPrepaying   decimal.Decimal
}

// DecisionComparator combines interest saved, tax benefits, and post-tax
// investment gain into the two net-benefit totals.
type DecisionComparator struct{}

// NewDecisionComparator creates a new decision comparator
func NewDecisionComparator() *DecisionComparator {
	return &DecisionComparator{}
}

// Compare returns the net benefit of each strategy and the recommendation.
// A strict tie favors prepaying; the rule must be deterministic even though
// exact ties are unlikely with real amounts.
func (dc *DecisionComparator) Compare(in ComparisonInputs) (netInvesting, netPrepaying decimal.Decimal, rec domain.Recommendation) {
	netInvesting = in.PostTaxInvestmentGain.Add(in.TaxBenefitContinuing)
	netPrepaying = in.InterestSaved.Add(in.TaxBenefitPrepaying)

	if netInvesting.GreaterThan(netPrepaying) {
		return netInvesting, netPrepaying, domain.RecommendInvest
	}
	return netInvesting, netPrepaying, domain.RecommendPrepay
}
