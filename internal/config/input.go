package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Vishwanath-Code01/Loan-Advisor/internal/domain"
)

// Configuration is the top-level shape of an advisor input file.
type Configuration struct {
	Scenario domain.LoanScenario `yaml:"scenario" json:"scenario"`

	// DeductionRules optionally overrides the statutory caps; zero-valued
	// fields fall back to the defaults.
	DeductionRules *domain.DeductionRules `yaml:"deduction_rules,omitempty" json:"deduction_rules,omitempty"`
}

// Rules returns the effective deduction rules for this configuration.
func (c *Configuration) Rules() domain.DeductionRules {
	if c.DeductionRules == nil {
		return domain.DefaultDeductionRules()
	}
	return c.DeductionRules.Merged()
}

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. Only genuinely
// invalid settings are errors; degenerate numerics (zero principal, zero
// rate) are allowed and degrade to zero results downstream.
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	s := &config.Scenario

	if s.Principal.IsNegative() {
		return fmt.Errorf("principal cannot be negative")
	}
	if s.AnnualRatePercent.IsNegative() {
		return fmt.Errorf("annual rate cannot be negative")
	}
	if s.TenureYears <= 0 {
		return fmt.Errorf("tenure years must be positive")
	}
	if s.TenureYears > 50 {
		return fmt.Errorf("tenure years must be at most 50")
	}
	if s.ExtraCash.IsNegative() {
		return fmt.Errorf("extra cash cannot be negative")
	}
	if s.InvestmentReturnPercent.IsNegative() {
		return fmt.Errorf("investment return cannot be negative")
	}
	if s.TaxSlabPercent.IsNegative() || s.TaxSlabPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("tax slab percent must be between 0 and 100")
	}
	if s.Used80CAmount.IsNegative() {
		return fmt.Errorf("used 80C amount cannot be negative")
	}

	switch s.InvestmentType {
	case domain.InvestmentEquity, domain.InvestmentFixedDeposit:
	default:
		return fmt.Errorf("investment type must be '%s' or '%s'", domain.InvestmentEquity, domain.InvestmentFixedDeposit)
	}
	switch s.TaxRegime {
	case domain.TaxRegimeOld, domain.TaxRegimeNew:
	default:
		return fmt.Errorf("tax regime must be '%s' or '%s'", domain.TaxRegimeOld, domain.TaxRegimeNew)
	}
	switch s.PrepaymentMethod {
	case domain.PrepayReduceInstallment, domain.PrepayReduceTenure:
	default:
		return fmt.Errorf("prepayment method must be '%s' or '%s'", domain.PrepayReduceInstallment, domain.PrepayReduceTenure)
	}

	if config.DeductionRules != nil {
		if config.DeductionRules.InterestCap.IsNegative() {
			return fmt.Errorf("interest cap cannot be negative")
		}
		if config.DeductionRules.PrincipalCap.IsNegative() {
			return fmt.Errorf("principal cap cannot be negative")
		}
		if config.DeductionRules.EquityLTCGRatePercent.IsNegative() || config.DeductionRules.EquityLTCGRatePercent.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("equity LTCG rate must be between 0 and 100")
		}
	}

	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *Configuration {
	return &Configuration{
		Scenario: domain.LoanScenario{
			Principal:               decimal.NewFromInt(2500000),
			AnnualRatePercent:       decimal.NewFromFloat(8.5),
			TenureYears:             20,
			ExtraCash:               decimal.NewFromInt(500000),
			InvestmentReturnPercent: decimal.NewFromInt(12),
			InvestmentType:          domain.InvestmentEquity,
			TaxRegime:               domain.TaxRegimeOld,
			TaxSlabPercent:          decimal.NewFromInt(30),
			Used80CAmount:           decimal.NewFromInt(50000),
			SelfOccupied:            true,
			JointLoan:               false,
			PrepaymentMethod:        domain.PrepayReduceTenure,
		},
	}
}

// WriteExampleConfiguration writes the example configuration as YAML.
func (ip *InputParser) WriteExampleConfiguration(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleConfiguration())
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
