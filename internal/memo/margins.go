package memo

import (
	"fmt"
	"math"

	"github.com/memotools/memocheck/internal/domain"
)

// checkMargins reports top and left margins deviating from the standard
// by more than the tolerance. Margin deviations are informational only;
// this check never blocks the verdict.
func (e *Engine) checkMargins(doc domain.Document) []domain.Issue {
	if doc.Margins == nil {
		return nil
	}

	var issues []domain.Issue
	for _, m := range []struct {
		name  string
		value float64
	}{
		{"Top", doc.Margins.Top},
		{"Left", doc.Margins.Left},
	} {
		if math.Abs(m.value-e.rules.MarginInches) > e.rules.MarginTolerance {
			issues = append(issues, domain.Issue{
				Severity: domain.SeverityInfo,
				Section:  domain.SectionFormatting,
				Message: fmt.Sprintf("%s margin is %.2f inches (standard is %.1f inch)",
					m.name, m.value, e.rules.MarginInches),
			})
		}
	}
	return issues
}
