package memo

import (
	"fmt"
	"strconv"

	"github.com/memotools/memocheck/internal/domain"
)

// bodyCandidate is one numbered body paragraph in document order.
type bodyCandidate struct {
	number int
	index  int
}

// checkBodyNumbering verifies that body paragraphs between the subject
// line and the signature marker are numbered sequentially from 1.
//
// The expected number resynchronizes to found+1 after every candidate,
// whether or not it matched. A single skipped number therefore produces
// a single warning instead of cascading over every later paragraph.
func (e *Engine) checkBodyNumbering(doc domain.Document) []domain.Issue {
	subject := findParagraph(doc.Paragraphs, e.pats.Subject, 0)
	if subject == -1 {
		// The subject check already reports the missing anchor.
		return nil
	}

	boundary := findParagraph(doc.Paragraphs, e.pats.Signed, subject)
	if boundary == -1 {
		boundary = len(doc.Paragraphs)
	}

	var found []bodyCandidate
	for i := subject + 1; i < boundary; i++ {
		m := e.pats.Numbered.FindStringSubmatch(textAt(doc.Paragraphs, i))
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		found = append(found, bodyCandidate{number: n, index: i})
	}

	if len(found) == 0 {
		return []domain.Issue{{
			Severity: domain.SeverityCritical,
			Section:  domain.SectionBody,
			Message:  "No numbered paragraphs found. Body paragraphs should be numbered (1., 2., 3., etc.)",
		}}
	}

	var issues []domain.Issue
	expected := 1
	for _, c := range found {
		if c.number != expected {
			issues = append(issues, domain.Issue{
				Severity:  domain.SeverityWarning,
				Section:   domain.SectionBody,
				Message:   fmt.Sprintf("Paragraph numbering issue: Expected %d, found %d", expected, c.number),
				Paragraph: c.index + 1,
			})
		}
		expected = c.number + 1
	}

	issues = append(issues, domain.Issue{
		Severity: domain.SeverityInfo,
		Section:  domain.SectionBody,
		Message:  fmt.Sprintf("Found %d numbered paragraph(s)", len(found)),
	})
	return issues
}
