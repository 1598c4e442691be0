package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smartlog/pkg/parser"
	"smartlog/pkg/render"
)

// ChartOptions holds command-line options for the chart command.
type ChartOptions struct {
	Attrs  []string
	Kind   string
	Out    string
	Width  int
	Height int
	Title  string
	Names  string
}

// NewChartCommand creates the chart command.
func NewChartCommand() *cobra.Command {
	opts := &ChartOptions{}

	cmd := &cobra.Command{
		Use:   "chart <log-file...>",
		Short: "Render a PNG time-series chart from a SMART log",
		Long: `Parse one or more SMART log files (glob patterns allowed) and render the
selected attributes as a PNG time-series chart.

By default every attribute is charted; use --attr to restrict the
selection. --kind picks raw values, normalized values, or both.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(args, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Attrs, "attr", nil, "Attribute key(s) to chart (can be repeated; default all)")
	cmd.Flags().StringVar(&opts.Kind, "kind", "norm", "Value kind to chart (raw|norm|both)")
	cmd.Flags().StringVarP(&opts.Out, "out", "f", "smart_chart.png", "Output PNG file")
	cmd.Flags().IntVar(&opts.Width, "width", render.DefaultWidth, "Chart width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", render.DefaultHeight, "Chart height in pixels")
	cmd.Flags().StringVar(&opts.Title, "title", "SMART Attributes", "Chart title")
	cmd.Flags().StringVar(&opts.Names, "names", "", "YAML file with attribute name overrides")

	return cmd
}

func runChart(args []string, opts *ChartOptions) error {
	kind, err := parser.ParseKind(opts.Kind)
	if err != nil {
		return err
	}

	names, err := loadNames(opts.Names)
	if err != nil {
		return err
	}

	result, _, err := loadLogs(args)
	if err != nil {
		return err
	}

	sel := result.Select(opts.Attrs, kind)
	if len(sel.Entries) == 0 {
		fmt.Println("No usable data to chart.")
		ExitCode = 1
		return nil
	}

	out, err := os.Create(opts.Out) // #nosec G304 -- user-provided output path is expected
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	renderOpts := render.Options{
		Width:  opts.Width,
		Height: opts.Height,
		Title:  opts.Title,
		Names:  names,
	}
	if err := render.PNG(sel, renderOpts, out); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d series)\n", opts.Out, len(sel.Entries))
	return nil
}
