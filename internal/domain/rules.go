package domain

import (
	"github.com/shopspring/decimal"
)

// DeductionRules holds the statutory caps and rates for the modeled sections.
// Values are per year; caps apply to each year independently with no rollover.
type DeductionRules struct {
	InterestCap              decimal.Decimal `yaml:"interest_cap" json:"interest_cap"`
	PrincipalCap             decimal.Decimal `yaml:"principal_cap" json:"principal_cap"`
	EquityExemptionThreshold decimal.Decimal `yaml:"equity_exemption_threshold" json:"equity_exemption_threshold"`
	EquityLTCGRatePercent    decimal.Decimal `yaml:"equity_ltcg_rate_percent" json:"equity_ltcg_rate_percent"`
}

// DefaultDeductionRules returns the statutory values currently in force.
func DefaultDeductionRules() DeductionRules {
	return DeductionRules{
		InterestCap:              decimal.NewFromInt(200000),
		PrincipalCap:             decimal.NewFromInt(150000),
		EquityExemptionThreshold: decimal.NewFromInt(100000),
		EquityLTCGRatePercent:    decimal.NewFromInt(10),
	}
}

// Merged fills any zero-valued field from the defaults, so a config file may
// override a single cap without restating the rest.
func (r DeductionRules) Merged() DeductionRules {
	defaults := DefaultDeductionRules()
	if r.InterestCap.IsZero() {
		r.InterestCap = defaults.InterestCap
	}
	if r.PrincipalCap.IsZero() {
		r.PrincipalCap = defaults.PrincipalCap
	}
	if r.EquityExemptionThreshold.IsZero() {
		r.EquityExemptionThreshold = defaults.EquityExemptionThreshold
	}
	if r.EquityLTCGRatePercent.IsZero() {
		r.EquityLTCGRatePercent = defaults.EquityLTCGRatePercent
	}
	return r
}
