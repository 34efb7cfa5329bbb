// Package cmd contains the CLI commands for the memocheck application.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

// verbose holds the global --verbose flag state.
var verbose bool

// jsonOutput holds the global --json flag state.
var jsonOutput bool

func init() {
	rootCmd = NewRootCmd()
}

// GetVerbose returns the current verbose flag state.
func GetVerbose() bool {
	return verbose
}

// GetJSON returns the current global json flag state.
func GetJSON() bool {
	return jsonOutput
}

// NewRootCmd creates a new root command instance with all subcommands
// attached. A fresh tree per call keeps tests independent.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memocheck",
		Short: "Check memorandum documents against standard format rules",
		Long: "memocheck validates the structure of .docx memoranda: the date line,\n" +
			"header fields, body paragraph numbering, the signature block, the\n" +
			"attachments list, and page margins. Only CRITICAL issues fail a document.",
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	cmd.AddCommand(NewValidateCmd(nil))
	cmd.AddCommand(NewSampleCmd(nil))

	return cmd
}

// ExecuteContext runs the root command with the given context, enabling
// graceful shutdown via context cancellation (e.g. on SIGINT).
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
