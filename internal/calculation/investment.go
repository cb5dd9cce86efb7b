package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/Vishwanath-Code01/Loan-Advisor/internal/domain"
)

// InvestmentProjector compounds a lump sum and applies the investment-type
// tax treatment to the gain.
//
// Compounding is ANNUAL over whole years. The monthly-compounding variant of
// the same nominal rate was considered and rejected: annual compounding keeps
// the yearly chart series and the projection on the same convention and is
// what the tests pin.
type InvestmentProjector struct {
	Rules  domain.DeductionRules
	Logger Logger
}

// NewInvestmentProjector creates a projector with the default equity tax rules.
func NewInvestmentProjector() *InvestmentProjector {
	return &InvestmentProjector{Rules: domain.DefaultDeductionRules(), Logger: NopLogger{}}
}

// NewInvestmentProjectorWithRules creates a projector with configurable rules.
func NewInvestmentProjectorWithRules(rules domain.DeductionRules) *InvestmentProjector {
	return &InvestmentProjector{Rules: rules, Logger: NopLogger{}}
}

// FutureValue compounds the principal annually for the given number of whole
// years. Non-positive principal or years return the principal unchanged.
func (ip *InvestmentProjector) FutureValue(principal, annualReturnPercent decimal.Decimal, years int) decimal.Decimal {
	if principal.LessThanOrEqual(decimal.Zero) || years <= 0 {
		return principal
	}
	growth := one.Add(annualReturnPercent.Div(hundred)).Pow(decimal.NewFromInt(int64(years)))
	return principal.Mul(growth)
}

// Project compounds the lump sum and taxes the gain per the investment type:
// equity gains above the exemption threshold at the flat LTCG rate, fixed
// deposit gains at the holder's marginal slab.
func (ip *InvestmentProjector) Project(principal, annualReturnPercent decimal.Decimal, years int, investmentType domain.InvestmentType, slabFraction decimal.Decimal) domain.InvestmentOutcome {
	futureValue := ip.FutureValue(principal, annualReturnPercent, years)
	grossGain := futureValue.Sub(principal)
	if grossGain.IsNegative() {
		grossGain = decimal.Zero
	}

	var tax decimal.Decimal
	switch investmentType {
	case domain.InvestmentEquity:
		taxableGain := grossGain.Sub(ip.Rules.EquityExemptionThreshold)
		if taxableGain.IsNegative() {
			taxableGain = decimal.Zero
		}
		tax = taxableGain.Mul(ip.Rules.EquityLTCGRatePercent.Div(hundred))
	case domain.InvestmentFixedDeposit:
		tax = grossGain.Mul(slabFraction)
	default:
		tax = decimal.Zero
	}

	return domain.InvestmentOutcome{
		FutureValue: futureValue,
		GrossGain:   grossGain,
		Tax:         tax,
		PostTaxGain: grossGain.Sub(tax),
	}
}
