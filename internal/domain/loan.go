package domain

import (
	"github.com/shopspring/decimal"
)

// InvestmentType selects the tax treatment applied to investment gains.
type InvestmentType string

const (
	InvestmentEquity       InvestmentType = "equity"
	InvestmentFixedDeposit InvestmentType = "fixed_deposit"
)

// TaxRegime selects the statutory deduction model. The new regime allows no
// home-loan deductions at all.
type TaxRegime string

const (
	TaxRegimeOld TaxRegime = "old"
	TaxRegimeNew TaxRegime = "new"
)

// PrepaymentMethod selects how a lump-sum prepayment is absorbed: keep the
// tenure and lower the installment, or keep the installment and shorten tenure.
type PrepaymentMethod string

const (
	PrepayReduceInstallment PrepaymentMethod = "reduce_installment"
	PrepayReduceTenure      PrepaymentMethod = "reduce_tenure"
)

// LoanScenario is the immutable input for one advisor run.
type LoanScenario struct {
	Principal               decimal.Decimal  `yaml:"principal" json:"principal"`
	AnnualRatePercent       decimal.Decimal  `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	TenureYears             int              `yaml:"tenure_years" json:"tenure_years"`
	ExtraCash               decimal.Decimal  `yaml:"extra_cash" json:"extra_cash"`
	InvestmentReturnPercent decimal.Decimal  `yaml:"investment_return_percent" json:"investment_return_percent"`
	InvestmentType          InvestmentType   `yaml:"investment_type" json:"investment_type"`
	TaxRegime               TaxRegime        `yaml:"tax_regime" json:"tax_regime"`
	TaxSlabPercent          decimal.Decimal  `yaml:"tax_slab_percent" json:"tax_slab_percent"`
	Used80CAmount           decimal.Decimal  `yaml:"used_80c_amount" json:"used_80c_amount"`
	SelfOccupied            bool             `yaml:"self_occupied" json:"self_occupied"`
	JointLoan               bool             `yaml:"joint_loan" json:"joint_loan"`
	PrepaymentMethod        PrepaymentMethod `yaml:"prepayment_method" json:"prepayment_method"`
}

// TenureMonths returns the loan tenure in months.
func (s *LoanScenario) TenureMonths() int {
	return s.TenureYears * 12
}

// TaxSlabFraction returns the marginal tax slab as a fraction (30% -> 0.30).
func (s *LoanScenario) TaxSlabFraction() decimal.Decimal {
	return s.TaxSlabPercent.Div(decimal.NewFromInt(100))
}

// Normalized returns a copy with numeric fields coerced into valid ranges.
// The scenario itself is never mutated; every run works on a fresh copy.
func (s LoanScenario) Normalized() LoanScenario {
	n := s
	if n.Principal.IsNegative() {
		n.Principal = decimal.Zero
	}
	if n.AnnualRatePercent.IsNegative() {
		n.AnnualRatePercent = decimal.Zero
	}
	if n.TenureYears < 1 {
		n.TenureYears = 1
	}
	if n.ExtraCash.IsNegative() {
		n.ExtraCash = decimal.Zero
	}
	if n.InvestmentReturnPercent.IsNegative() {
		n.InvestmentReturnPercent = decimal.Zero
	}
	if n.TaxSlabPercent.IsNegative() {
		n.TaxSlabPercent = decimal.Zero
	}
	if n.TaxSlabPercent.GreaterThan(decimal.NewFromInt(100)) {
		n.TaxSlabPercent = decimal.NewFromInt(100)
	}
	if n.Used80CAmount.IsNegative() {
		n.Used80CAmount = decimal.Zero
	}
	return n
}

// AmortizationRow is one month of a payment schedule.
type AmortizationRow struct {
	Month         int             `json:"month"`
	Interest      decimal.Decimal `json:"interest"`
	Principal     decimal.Decimal `json:"principal"`
	EndingBalance decimal.Decimal `json:"ending_balance"`
}

// AmortizationSchedule is an ordered, possibly truncated sequence of monthly
// rows. Length varies with payoff time, not with the nominal tenure.
type AmortizationSchedule []AmortizationRow

// Months returns the number of rows in the schedule.
func (sch AmortizationSchedule) Months() int {
	return len(sch)
}

// TotalInterest sums the interest portion across all rows.
func (sch AmortizationSchedule) TotalInterest() decimal.Decimal {
	total := decimal.Zero
	for _, row := range sch {
		total = total.Add(row.Interest)
	}
	return total
}

// TotalPrincipal sums the principal portion across all rows.
func (sch AmortizationSchedule) TotalPrincipal() decimal.Decimal {
	total := decimal.Zero
	for _, row := range sch {
		total = total.Add(row.Principal)
	}
	return total
}

// CumulativeInterestThrough sums interest for rows up to and including the
// given month index (1-based).
func (sch AmortizationSchedule) CumulativeInterestThrough(month int) decimal.Decimal {
	total := decimal.Zero
	for _, row := range sch {
		if row.Month > month {
			break
		}
		total = total.Add(row.Interest)
	}
	return total
}

// AnnualAggregate is one loan year's summed interest and principal.
// The final year may cover fewer than twelve months.
type AnnualAggregate struct {
	Year      int             `json:"year"`
	Interest  decimal.Decimal `json:"interest"`
	Principal decimal.Decimal `json:"principal"`
}

// DeductionResult is the capped deduction outcome for one loan year.
type DeductionResult struct {
	Year               int             `json:"year"`
	InterestDeduction  decimal.Decimal `json:"interest_deduction"`
	PrincipalDeduction decimal.Decimal `json:"principal_deduction"`
	TaxBenefit         decimal.Decimal `json:"tax_benefit"`
}

// InvestmentOutcome is the result of compounding the lump sum and applying the
// investment-type tax treatment to the gain.
type InvestmentOutcome struct {
	FutureValue decimal.Decimal `json:"future_value"`
	GrossGain   decimal.Decimal `json:"gross_gain"`
	Tax         decimal.Decimal `json:"tax"`
	PostTaxGain decimal.Decimal `json:"post_tax_gain"`
}
