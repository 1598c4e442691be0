package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "smartlog: %d rows, %d attributes\n",
		report.Summary.Rows,
		report.Summary.Attributes)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== SMART Log Summary ===")
	fmt.Fprintln(w)

	if !report.HasData() {
		fmt.Fprintln(w, "No usable data found.")
		return nil
	}

	fmt.Fprintf(w, "Rows parsed: %d\n", report.Summary.Rows)
	if tr := report.Summary.TimeRange; tr != nil {
		fmt.Fprintf(w, "Time range:  %s to %s\n",
			tr.Start.Format("2006-01-02 15:04:05"),
			tr.End.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Attributes (%d):\n", report.Summary.Attributes)
	for _, attr := range report.Attributes {
		if attr.Label != attr.Key {
			fmt.Fprintf(w, "  [%s] %s: %d raw, %d norm\n",
				attr.Key, attr.Label, attr.RawSamples, attr.NormSamples)
		} else {
			fmt.Fprintf(w, "  [%s]: %d raw, %d norm\n",
				attr.Key, attr.RawSamples, attr.NormSamples)
		}
	}

	if f.opts.Verbose {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Sources: %d file(s)\n", len(report.Metadata.Sources))
		for _, src := range report.Metadata.Sources {
			fmt.Fprintf(w, "  - %s\n", src)
		}
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}
