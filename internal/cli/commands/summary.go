package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"smartlog/pkg/output"
)

// SummaryOptions holds command-line options for the summary command.
type SummaryOptions struct {
	Output  string
	Names   string
	Verbose bool
	Quiet   bool
}

// NewSummaryCommand creates the summary command.
func NewSummaryCommand() *cobra.Command {
	opts := &SummaryOptions{}

	cmd := &cobra.Command{
		Use:   "summary <log-file...>",
		Short: "Summarize a SMART log",
		Long: `Parse one or more SMART log files (glob patterns allowed) and print a
summary: rows parsed, time range, and per-attribute sample counts.

Rows are counted when their timestamp parses and the line has at least one
complete triplet's worth of fields, even if every value on the row turned
out to be unusable.

Exit codes:
  0 - Usable data parsed
  1 - No usable data in the input
  2 - Usage or runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVar(&opts.Names, "names", "", "YAML file with attribute name overrides")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show sources and timing")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary line only, no details")

	return cmd
}

func runSummary(cmd *cobra.Command, args []string, opts *SummaryOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	names, err := loadNames(opts.Names)
	if err != nil {
		return err
	}

	start := time.Now()
	result, files, err := loadLogs(args)
	if err != nil {
		return err
	}

	report := output.NewReport(result, names, files, time.Since(start))

	formatter, err := newFormatter(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if !report.HasData() {
		ExitCode = 1
	}

	return nil
}

// newFormatter selects an output formatter by name.
func newFormatter(format string, opts output.FormatOptions) (output.Formatter, error) {
	switch format {
	case "text":
		return output.NewTextFormatter(opts), nil
	case "json":
		return output.NewJSONFormatter(opts), nil
	default:
		return nil, fmt.Errorf("invalid output format %q (must be text or json)", format)
	}
}
