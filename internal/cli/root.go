// Package cli provides the command-line interface for smartlog.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smartlog/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Usage or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "smartlog",
		Short: "Chart and summarize SMART disk-health logs",
		Long: `smartlog parses semicolon-delimited SMART disk-health logs:

  YYYY-MM-DD HH:mm:ss; attr; norm; raw; attr; norm; raw; ...

and produces summaries and PNG time-series charts of selected attributes.

Malformed lines and values are skipped, never fatal: a log that yields no
usable rows is reported as "no usable data" with exit code 1.

Exit codes:
  0 - Usable data parsed
  1 - No usable data in the input
  2 - Usage or runtime error (e.g. unreadable file)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewSummaryCommand())
	rootCmd.AddCommand(commands.NewAttrsCommand())
	rootCmd.AddCommand(commands.NewChartCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
