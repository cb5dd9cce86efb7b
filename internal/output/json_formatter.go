package output

import (
	"encoding/json"

	"github.com/Vishwanath-Code01/Loan-Advisor/internal/domain"
)

// JSONFormatter emits the full result structure, schedules included, for
// machine consumption by a UI or charting layer.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *domain.AdvisorResult) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
