package memo

import (
	"fmt"
	"time"

	"github.com/memotools/memocheck/internal/domain"
)

// checkDate scans the top of the document for a "DD Month YYYY" line.
// The scan stops at the first paragraph matching the date shape, even if
// that date turns out not to exist on the calendar.
func (e *Engine) checkDate(doc domain.Document) []domain.Issue {
	if len(doc.Paragraphs) == 0 {
		return []domain.Issue{{
			Severity: domain.SeverityCritical,
			Section:  domain.SectionDate,
			Message:  "Document is empty",
		}}
	}

	window := e.rules.DateWindow
	if len(doc.Paragraphs) < window {
		window = len(doc.Paragraphs)
	}

	for i := 0; i < window; i++ {
		text := textAt(doc.Paragraphs, i)
		if !e.pats.Date.MatchString(text) {
			continue
		}
		// Shape matches; confirm it names a real calendar date.
		if _, err := time.Parse("2 January 2006", text); err != nil {
			return []domain.Issue{{
				Severity:  domain.SeverityWarning,
				Section:   domain.SectionDate,
				Message:   fmt.Sprintf("Date format appears correct but may be invalid: %s", text),
				Paragraph: i + 1,
			}}
		}
		return nil
	}

	return []domain.Issue{{
		Severity: domain.SeverityCritical,
		Section:  domain.SectionDate,
		Message:  "Missing or incorrectly formatted date. Expected format: 'DD Month YYYY' (e.g., '12 March 2025')",
	}}
}
