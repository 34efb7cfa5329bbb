package memo

import (
	"fmt"

	"github.com/memotools/memocheck/internal/domain"
)

// checkAttachments verifies that an attachments section, when present,
// lists at least one "Tab N" entry. The section itself is optional.
func (e *Engine) checkAttachments(doc domain.Document) []domain.Issue {
	idx := findParagraph(doc.Paragraphs, e.pats.Attachments, 0)
	if idx == -1 {
		return []domain.Issue{{
			Severity: domain.SeverityInfo,
			Section:  domain.SectionAttachments,
			Message:  "No attachments section found (optional)",
		}}
	}

	tabs := 0
scan:
	for i := idx + 1; i < len(doc.Paragraphs); i++ {
		text := textAt(doc.Paragraphs, i)
		switch {
		case e.pats.Tab.MatchString(text):
			tabs++
		case text != "":
			// The first non-empty, non-tab line ends the section; blank
			// paragraphs between tabs are skipped.
			break scan
		}
	}

	if tabs == 0 {
		return []domain.Issue{{
			Severity:  domain.SeverityWarning,
			Section:   domain.SectionAttachments,
			Message:   "Attachments section found but no tabs listed",
			Paragraph: idx + 1,
		}}
	}
	return []domain.Issue{{
		Severity: domain.SeverityInfo,
		Section:  domain.SectionAttachments,
		Message:  fmt.Sprintf("Found %d attachment tab(s)", tabs),
	}}
}
