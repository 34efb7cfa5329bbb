// Package domain defines the value types shared across the validator:
// issues, results, and the parsed document model.
package domain

// Severity indicates how strongly an issue affects the overall verdict.
type Severity string

const (
	// SeverityCritical indicates an issue that fails the document.
	SeverityCritical Severity = "CRITICAL"
	// SeverityWarning indicates a deviation that should be reviewed.
	SeverityWarning Severity = "WARNING"
	// SeverityInfo indicates an observation with no bearing on the verdict.
	SeverityInfo Severity = "INFO"
)

// Blocks reports whether an issue of this severity fails the document.
// Only CRITICAL gates the verdict; WARNING and INFO never do.
func (s Severity) Blocks() bool {
	return s == SeverityCritical
}

// Section label constants identify which check produced an issue.
const (
	SectionFile        = "File"
	SectionDate        = "Date"
	SectionHeader      = "Header"
	SectionBody        = "Body"
	SectionSignature   = "Signature"
	SectionAttachments = "Attachments"
	SectionFormatting  = "Formatting"
)

// Issue represents one deviation discovered during a validation run.
// Issues are produced by checks and never mutated afterwards.
type Issue struct {
	Severity Severity `json:"severity"`
	Section  string   `json:"section"`
	Message  string   `json:"message"`
	// Paragraph is the 1-based location of the issue in the document.
	// Zero means the issue is document-global (e.g. a missing file).
	Paragraph int `json:"paragraph,omitempty"`
}

// Result pairs the overall verdict with every issue from one run.
// Issues appear in check execution order, not severity order.
type Result struct {
	Passed bool    `json:"passed"`
	Issues []Issue `json:"issues"`
}

// NewResult derives the verdict from the collected issues: the document
// passes exactly when no issue has a blocking severity.
func NewResult(issues []Issue) *Result {
	passed := true
	for _, issue := range issues {
		if issue.Severity.Blocks() {
			passed = false
			break
		}
	}
	return &Result{Passed: passed, Issues: issues}
}

// CountBySeverity tallies the result's issues per severity level.
func (r *Result) CountBySeverity() (critical, warnings, info int) {
	for _, issue := range r.Issues {
		switch issue.Severity {
		case SeverityCritical:
			critical++
		case SeverityWarning:
			warnings++
		default:
			info++
		}
	}
	return critical, warnings, info
}
