package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/memotools/memocheck/internal/domain"
	"github.com/memotools/memocheck/internal/report"
)

// ValidateRunner runs document validation against a file path.
type ValidateRunner interface {
	Validate(ctx context.Context, path string) (*domain.Result, error)
}

// ValidationFailedError is returned when the document fails validation.
// It distinguishes a failed document (exit 2) from infrastructure
// failures (exit 1).
type ValidationFailedError struct {
	Critical int
	Warnings int
}

// Error implements the error interface.
func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed with %d critical issue(s), %d warning(s)", e.Critical, e.Warnings)
}

// ExitCode returns the exit code for a failed document (always 2).
func (e *ValidationFailedError) ExitCode() int {
	return 2
}

// validateJSONResponse is the JSON output structure for the validate command.
type validateJSONResponse struct {
	Passed  bool           `json:"passed"`
	Issues  []domain.Issue `json:"issues"`
	Summary struct {
		Critical int `json:"critical"`
		Warnings int `json:"warnings"`
		Info     int `json:"info"`
	} `json:"summary"`
}

// formatResultJSON writes a validation result as JSON to w.
func formatResultJSON(cmd *cobra.Command, result *domain.Result) {
	issues := result.Issues
	if issues == nil {
		issues = []domain.Issue{}
	}
	out := validateJSONResponse{Passed: result.Passed, Issues: issues}
	out.Summary.Critical, out.Summary.Warnings, out.Summary.Info = result.CountBySeverity()
	writeJSON(cmd.OutOrStdout(), out)
}

// runValidateAndReport runs the validator and renders the result as a
// human-readable report or JSON. A failed document becomes a
// ValidationFailedError so the process exits non-zero.
func runValidateAndReport(cmd *cobra.Command, runner ValidateRunner, path string, asJSON bool) error {
	result, err := runner.Validate(cmd.Context(), path)
	if err != nil {
		return err
	}

	if asJSON {
		formatResultJSON(cmd, result)
	} else {
		report.Render(cmd.OutOrStdout(), result)
	}

	if !result.Passed {
		critical, warnings, _ := result.CountBySeverity()
		return &ValidationFailedError{Critical: critical, Warnings: warnings}
	}
	return nil
}

// NewValidateCmd creates the validate command. A nil runner wires the real
// engine when the command runs, honoring the --rules flag.
func NewValidateCmd(runner ValidateRunner) *cobra.Command {
	var asJSON bool
	var rulesPath string

	cmd := &cobra.Command{
		Use:          "validate <file.docx>",
		Short:        "Validate a memorandum document",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := runner
			if r == nil {
				var err error
				r, err = wireEngine(rulesPath)
				if err != nil {
					return err
				}
			}
			return runValidateAndReport(cmd, r, args[0], asJSON || GetJSON())
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output results as JSON")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "Path to a YAML rules override file")

	return cmd
}
