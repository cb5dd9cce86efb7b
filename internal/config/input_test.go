package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vishwanath-Code01/Loan-Advisor/internal/domain"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validYAML = `
scenario:
  principal: 2500000
  annual_rate_percent: 8.5
  tenure_years: 20
  extra_cash: 500000
  investment_return_percent: 12
  investment_type: equity
  tax_regime: old
  tax_slab_percent: 30
  used_80c_amount: 50000
  self_occupied: true
  joint_loan: false
  prepayment_method: reduce_tenure
`

func TestLoadFromFile_Valid(t *testing.T) {
	parser := NewInputParser()
	cfg, err := parser.LoadFromFile(writeTempConfig(t, validYAML))
	require.NoError(t, err)

	assert.True(t, cfg.Scenario.Principal.Equal(decimal.NewFromInt(2500000)))
	assert.Equal(t, 20, cfg.Scenario.TenureYears)
	assert.Equal(t, domain.InvestmentEquity, cfg.Scenario.InvestmentType)
	assert.Equal(t, domain.PrepayReduceTenure, cfg.Scenario.PrepaymentMethod)
	assert.True(t, cfg.Scenario.SelfOccupied)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFile_MalformedYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeTempConfig(t, "scenario: [not: a map"))
	assert.Error(t, err)
}

func TestValidateConfiguration_Rejections(t *testing.T) {
	parser := NewInputParser()

	mutations := []struct {
		name   string
		mutate func(*Configuration)
	}{
		{"negative principal", func(c *Configuration) { c.Scenario.Principal = decimal.NewFromInt(-1) }},
		{"negative rate", func(c *Configuration) { c.Scenario.AnnualRatePercent = decimal.NewFromInt(-1) }},
		{"zero tenure", func(c *Configuration) { c.Scenario.TenureYears = 0 }},
		{"excessive tenure", func(c *Configuration) { c.Scenario.TenureYears = 51 }},
		{"negative extra cash", func(c *Configuration) { c.Scenario.ExtraCash = decimal.NewFromInt(-1) }},
		{"slab above 100", func(c *Configuration) { c.Scenario.TaxSlabPercent = decimal.NewFromInt(101) }},
		{"unknown investment type", func(c *Configuration) { c.Scenario.InvestmentType = "gold" }},
		{"unknown tax regime", func(c *Configuration) { c.Scenario.TaxRegime = "simple" }},
		{"unknown prepayment method", func(c *Configuration) { c.Scenario.PrepaymentMethod = "balloon" }},
		{"negative interest cap", func(c *Configuration) {
			c.DeductionRules = &domain.DeductionRules{InterestCap: decimal.NewFromInt(-1)}
		}},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			cfg := parser.CreateExampleConfiguration()
			tt.mutate(cfg)
			assert.Error(t, parser.ValidateConfiguration(cfg))
		})
	}
}

func TestValidateConfiguration_DegenerateNumericsAllowed(t *testing.T) {
	parser := NewInputParser()

	// Zero principal and zero rate are degenerate, not invalid; the engine
	// degrades them to zero results.
	cfg := parser.CreateExampleConfiguration()
	cfg.Scenario.Principal = decimal.Zero
	cfg.Scenario.AnnualRatePercent = decimal.Zero
	assert.NoError(t, parser.ValidateConfiguration(cfg))
}

func TestCreateExampleConfiguration_IsValid(t *testing.T) {
	parser := NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	assert.NoError(t, parser.ValidateConfiguration(cfg))
}

func TestWriteExampleConfiguration_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, parser.WriteExampleConfiguration(path))

	cfg, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.Scenario.Principal.Equal(decimal.NewFromInt(2500000)))
}

func TestRules_DefaultsAndOverrides(t *testing.T) {
	cfg := &Configuration{}
	rules := cfg.Rules()
	assert.True(t, rules.InterestCap.Equal(decimal.NewFromInt(200000)))
	assert.True(t, rules.PrincipalCap.Equal(decimal.NewFromInt(150000)))

	// Partial override: unset fields fall back to defaults.
	cfg.DeductionRules = &domain.DeductionRules{InterestCap: decimal.NewFromInt(300000)}
	rules = cfg.Rules()
	assert.True(t, rules.InterestCap.Equal(decimal.NewFromInt(300000)))
	assert.True(t, rules.PrincipalCap.Equal(decimal.NewFromInt(150000)))
	assert.True(t, rules.EquityExemptionThreshold.Equal(decimal.NewFromInt(100000)))
}
