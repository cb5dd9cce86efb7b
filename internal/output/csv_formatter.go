package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/Vishwanath-Code01/Loan-Advisor/internal/domain"
)

// CSVFormatter exports the yearly chart series, one row per year.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.AdvisorResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"year", "investment_value", "cumulative_interest_original", "cumulative_interest_prepaid"}); err != nil {
		return nil, err
	}
	for _, point := range result.YearlySeries {
		record := []string{
			strconv.Itoa(point.Year),
			point.InvestmentValue.StringFixed(2),
			point.CumulativeInterestOriginal.StringFixed(2),
			point.CumulativeInterestPrepaid.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
