package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// SampleRunner writes sample memoranda into a directory.
type SampleRunner interface {
	Write(ctx context.Context, dir string) ([]string, error)
}

// sampleJSONResponse is the JSON output structure for the sample command.
type sampleJSONResponse struct {
	Files []string `json:"files"`
}

// NewSampleCmd creates the sample command. A nil runner wires the real
// fixture generator when the command runs.
func NewSampleCmd(runner SampleRunner) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:          "sample [dir]",
		Short:        "Write sample valid and invalid memoranda for manual testing",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			r := runner
			if r == nil {
				r = wireSampleGenerator(dir)
			}

			paths, err := r.Write(cmd.Context(), dir)
			if err != nil {
				return &ContextError{Op: "writing samples", Path: dir, Err: err}
			}

			if asJSON || GetJSON() {
				writeJSON(cmd.OutOrStdout(), sampleJSONResponse{Files: paths})
				return nil
			}
			for _, path := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output results as JSON")

	return cmd
}
