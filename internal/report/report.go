// Package report renders validation results as a human-readable report,
// grouped by severity with an overall pass/fail banner.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/memotools/memocheck/internal/domain"
)

const ruleWidth = 70

// Render writes the grouped report for result to w. Issues appear under
// their severity heading in the order the checks produced them.
func Render(w io.Writer, result *domain.Result) {
	rule := strings.Repeat("=", ruleWidth)
	divider := strings.Repeat("-", ruleWidth)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "MEMORANDUM VALIDATION REPORT")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	if result.Passed {
		fmt.Fprintln(w, "✓ VALIDATION PASSED")
	} else {
		fmt.Fprintln(w, "✗ VALIDATION FAILED")
	}
	fmt.Fprintln(w)

	groups := []struct {
		heading  string
		severity domain.Severity
	}{
		{"CRITICAL ISSUES:", domain.SeverityCritical},
		{"WARNINGS:", domain.SeverityWarning},
		{"INFORMATION:", domain.SeverityInfo},
	}
	for _, group := range groups {
		var lines []string
		for _, issue := range result.Issues {
			if issue.Severity == group.severity {
				lines = append(lines, formatIssue(issue))
			}
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintln(w, group.heading)
		fmt.Fprintln(w, divider)
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, rule)
}

// formatIssue renders one issue line, omitting the paragraph reference
// for document-global issues.
func formatIssue(issue domain.Issue) string {
	if issue.Paragraph > 0 {
		return fmt.Sprintf("  [%s] (Paragraph %d): %s", issue.Section, issue.Paragraph, issue.Message)
	}
	return fmt.Sprintf("  [%s]: %s", issue.Section, issue.Message)
}
