package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter formats reports as indented JSON: the summary counters,
// the per-attribute sample counts, and the parse metadata.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the report as JSON. Quiet mode emits only the Summary
// (rows, attribute count, time range); otherwise the full report is
// encoded, including the attribute list and metadata.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if f.opts.Quiet {
		return encoder.Encode(report.Summary)
	}

	return encoder.Encode(report)
}
