package memo

import (
	"regexp"
	"strings"

	"github.com/memotools/memocheck/internal/domain"
)

// checkMemorandumFor verifies the addressee line. The anchor is located
// case-insensitively, but the line itself must carry the exact spelling
// at its start.
func (e *Engine) checkMemorandumFor(doc domain.Document) []domain.Issue {
	idx := findParagraph(doc.Paragraphs, e.pats.MemorandumFor, 0)
	if idx == -1 {
		return []domain.Issue{{
			Severity: domain.SeverityCritical,
			Section:  domain.SectionHeader,
			Message:  "Missing 'MEMORANDUM FOR' line",
		}}
	}

	if !strings.HasPrefix(textAt(doc.Paragraphs, idx), "MEMORANDUM FOR") {
		return []domain.Issue{{
			Severity:  domain.SeverityWarning,
			Section:   domain.SectionHeader,
			Message:   "'MEMORANDUM FOR' should be at the start of the line",
			Paragraph: idx + 1,
		}}
	}
	return nil
}

// checkFrom verifies the originator line.
func (e *Engine) checkFrom(doc domain.Document) []domain.Issue {
	return e.checkLabeledHeader(doc, e.pats.From, e.pats.FromContent,
		"Missing 'FROM:' line",
		"FROM: line should be followed by sender information")
}

// checkSubject verifies the subject line.
func (e *Engine) checkSubject(doc domain.Document) []domain.Issue {
	return e.checkLabeledHeader(doc, e.pats.Subject, e.pats.SubjectContent,
		"Missing 'SUBJECT:' line",
		"SUBJECT: line should be followed by subject text")
}

// checkLabeledHeader locates a "LABEL:" anchor and confirms the trimmed
// line starts with the label followed by actual content.
func (e *Engine) checkLabeledHeader(doc domain.Document, anchor, content *regexp.Regexp, missingMsg, contentMsg string) []domain.Issue {
	idx := findParagraph(doc.Paragraphs, anchor, 0)
	if idx == -1 {
		return []domain.Issue{{
			Severity: domain.SeverityCritical,
			Section:  domain.SectionHeader,
			Message:  missingMsg,
		}}
	}

	if !content.MatchString(textAt(doc.Paragraphs, idx)) {
		return []domain.Issue{{
			Severity:  domain.SeverityWarning,
			Section:   domain.SectionHeader,
			Message:   contentMsg,
			Paragraph: idx + 1,
		}}
	}
	return nil
}
