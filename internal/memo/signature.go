package memo

import (
	"github.com/memotools/memocheck/internal/domain"
)

// checkSignature verifies the //SIGNED// marker exists and that a
// "Name, Rank, Branch" line appears within the few paragraphs after it.
func (e *Engine) checkSignature(doc domain.Document) []domain.Issue {
	idx := findParagraph(doc.Paragraphs, e.pats.Signed, 0)
	if idx == -1 {
		return []domain.Issue{{
			Severity: domain.SeverityCritical,
			Section:  domain.SectionSignature,
			Message:  "Missing '//SIGNED//' marker in signature block",
		}}
	}

	end := idx + 1 + e.rules.SignatureWindow
	if end > len(doc.Paragraphs) {
		end = len(doc.Paragraphs)
	}
	for i := idx + 1; i < end; i++ {
		if e.pats.Signature.MatchString(textAt(doc.Paragraphs, i)) {
			return nil
		}
	}

	return []domain.Issue{{
		Severity:  domain.SeverityWarning,
		Section:   domain.SectionSignature,
		Message:   "Signature block may be incomplete. Expected format: 'Name, Rank, Branch'",
		Paragraph: idx + 1,
	}}
}
