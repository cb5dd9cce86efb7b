package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Vishwanath-Code01/Loan-Advisor/internal/domain"
	money "github.com/Vishwanath-Code01/Loan-Advisor/pkg/decimal"
)

// ConsoleFormatter renders a human-readable summary with Indian-grouped
// rupee amounts and the yearly chart series as a table.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.AdvisorResult) ([]byte, error) {
	var buf bytes.Buffer

	inr := func(d decimal.Decimal) string {
		return money.NewMoneyFromDecimal(d).Round().Format()
	}

	header := "HOME LOAN PREPAY VS INVEST"
	buf.WriteString(header + "\n")
	buf.WriteString(strings.Repeat("=", len(header)) + "\n\n")

	buf.WriteString("LOAN\n")
	fmt.Fprintf(&buf, "  Original installment:   %s\n", inr(result.OriginalInstallment))
	fmt.Fprintf(&buf, "  New installment:        %s\n", inr(result.NewInstallment))
	fmt.Fprintf(&buf, "  Original tenure:        %d months\n", result.OriginalTenureMonths)
	fmt.Fprintf(&buf, "  Tenure after prepay:    %d months\n", result.PrepaidTenureMonths)
	fmt.Fprintf(&buf, "  Total interest:         %s\n", inr(result.TotalInterestOriginal))
	fmt.Fprintf(&buf, "  Interest after prepay:  %s\n", inr(result.TotalInterestPrepaid))
	fmt.Fprintf(&buf, "  Interest saved:         %s\n", inr(result.InterestSaved))
	if result.FullyRetired {
		buf.WriteString("  Lump sum retires the loan in full.\n")
	}
	if result.NeverAmortizes {
		buf.WriteString("  WARNING: the reduced installment never pays off the loan.\n")
	}
	buf.WriteString("\n")

	buf.WriteString("INVESTMENT\n")
	fmt.Fprintf(&buf, "  Future value:           %s\n", inr(result.Investment.FutureValue))
	fmt.Fprintf(&buf, "  Gross gain:             %s\n", inr(result.Investment.GrossGain))
	fmt.Fprintf(&buf, "  Tax on gain:            %s\n", inr(result.Investment.Tax))
	fmt.Fprintf(&buf, "  Post-tax gain:          %s\n", inr(result.Investment.PostTaxGain))
	buf.WriteString("\n")

	buf.WriteString("TAX BENEFIT\n")
	fmt.Fprintf(&buf, "  Continuing the loan:    %s\n", inr(result.TaxBenefitContinuing))
	fmt.Fprintf(&buf, "  After prepaying:        %s\n", inr(result.TaxBenefitPrepaying))
	buf.WriteString("\n")

	buf.WriteString("DECISION\n")
	fmt.Fprintf(&buf, "  Net benefit investing:  %s\n", inr(result.NetBenefitInvesting))
	fmt.Fprintf(&buf, "  Net benefit prepaying:  %s\n", inr(result.NetBenefitPrepaying))
	fmt.Fprintf(&buf, "  Recommendation:         %s\n", strings.ToUpper(string(result.Recommendation)))
	buf.WriteString("\n")

	if len(result.YearlySeries) > 0 {
		buf.WriteString("YEARLY PROJECTION\n")
		fmt.Fprintf(&buf, "  %-5s %20s %20s %20s\n", "Year", "Investment", "Interest (orig)", "Interest (prepaid)")
		for _, point := range result.YearlySeries {
			fmt.Fprintf(&buf, "  %-5d %20s %20s %20s\n",
				point.Year,
				inr(point.InvestmentValue),
				inr(point.CumulativeInterestOriginal),
				inr(point.CumulativeInterestPrepaid))
		}
	}

	return buf.Bytes(), nil
}
