package memo

import (
	"strings"
	"testing"

	"github.com/memotools/memocheck/internal/domain"
)

func TestCheckDate(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name          string
		paras         []string
		wantSeverity  domain.Severity
		wantParagraph int
		wantContains  string
	}{
		{
			name:  "valid date in first paragraph",
			paras: []string{"12 March 2025", "MEMORANDUM FOR RECORD"},
		},
		{
			name:  "valid date later in the window",
			paras: []string{"", "", "", "", "1 January 2024"},
		},
		{
			name:  "surrounding whitespace is tolerated",
			paras: []string{"   12 March 2025   "},
		},
		{
			name:          "syntactically correct but impossible date warns",
			paras:         []string{"32 March 2025"},
			wantSeverity:  domain.SeverityWarning,
			wantParagraph: 1,
			wantContains:  "may be invalid: 32 March 2025",
		},
		{
			name:          "February 31st warns",
			paras:         []string{"31 February 2025"},
			wantSeverity:  domain.SeverityWarning,
			wantParagraph: 1,
			wantContains:  "may be invalid",
		},
		{
			name:         "no date-shaped line is critical",
			paras:        []string{"MEMORANDUM FOR RECORD", "FROM: X"},
			wantSeverity: domain.SeverityCritical,
			wantContains: "Missing or incorrectly formatted date",
		},
		{
			name:         "date beyond the scan window is critical",
			paras:        []string{"", "", "", "", "", "12 March 2025"},
			wantSeverity: domain.SeverityCritical,
			wantContains: "Missing or incorrectly formatted date",
		},
		{
			name:         "US-style date is critical",
			paras:        []string{"March 12, 2025"},
			wantSeverity: domain.SeverityCritical,
			wantContains: "Missing or incorrectly formatted date",
		},
		{
			name:         "empty document is its own critical",
			paras:        nil,
			wantSeverity: domain.SeverityCritical,
			wantContains: "Document is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := e.checkDate(docOf(tt.paras...))

			if tt.wantSeverity == "" {
				if len(issues) != 0 {
					t.Fatalf("want no issues, got %v", issues)
				}
				return
			}

			if len(issues) != 1 {
				t.Fatalf("want exactly one issue, got %v", issues)
			}
			issue := issues[0]
			if issue.Severity != tt.wantSeverity {
				t.Errorf("severity = %s, want %s", issue.Severity, tt.wantSeverity)
			}
			if issue.Section != domain.SectionDate {
				t.Errorf("section = %q, want Date", issue.Section)
			}
			if issue.Paragraph != tt.wantParagraph {
				t.Errorf("paragraph = %d, want %d", issue.Paragraph, tt.wantParagraph)
			}
			if !strings.Contains(issue.Message, tt.wantContains) {
				t.Errorf("message %q should contain %q", issue.Message, tt.wantContains)
			}
		})
	}
}

func TestCheckDate_StopsAtFirstShapeMatch(t *testing.T) {
	e := newTestEngine()

	// The invalid-but-date-shaped line comes first; the scan must not
	// continue to the valid date behind it.
	issues := e.checkDate(docOf("32 March 2025", "12 March 2025"))

	if len(issues) != 1 || issues[0].Severity != domain.SeverityWarning {
		t.Fatalf("want one warning for the first shape match, got %v", issues)
	}
	if issues[0].Paragraph != 1 {
		t.Errorf("paragraph = %d, want 1", issues[0].Paragraph)
	}
}
