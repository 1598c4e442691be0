// Package output provides formatting and report generation over a parsed
// SMART log.
package output

import (
	"time"

	"smartlog/pkg/parser"
	"smartlog/pkg/smart"
)

// Report is the complete summary of one parsed log.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary

	// Attributes describes each discovered attribute in model order.
	Attributes []AttributeSummary

	// Metadata provides context about the parse.
	Metadata Metadata
}

// Summary provides aggregate statistics.
type Summary struct {
	// Rows is the number of lines with a parseable timestamp and at
	// least one complete triplet's worth of fields. Rows whose triplets
	// all failed numeric validation still count.
	Rows int

	// Attributes is the number of distinct attribute keys discovered.
	Attributes int

	// TimeRange spans the earliest to latest row timestamp.
	// Nil when no row had a valid timestamp.
	TimeRange *TimeRange
}

// TimeRange is an observed time window.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// AttributeSummary describes one attribute's series.
type AttributeSummary struct {
	// Key is the attribute identifier from the log.
	Key string

	// Label is the human-readable name, or the key itself when unknown.
	Label string

	// RawSamples and NormSamples count the usable values observed.
	RawSamples  int
	NormSamples int
}

// Metadata provides context about the parse run.
type Metadata struct {
	// Sources lists the log files that were parsed.
	Sources []string

	// ParsedAt is when the parse was performed.
	ParsedAt time.Time

	// Duration is how long reading and parsing took.
	Duration time.Duration
}

// NewReport builds a Report from a parse result. names may be nil, in
// which case every attribute is labeled by its key.
func NewReport(result *parser.Result, names smart.Table, sources []string, duration time.Duration) *Report {
	report := &Report{
		Summary: Summary{
			Rows:       result.Rows(),
			Attributes: len(result.Attributes()),
		},
		Metadata: Metadata{
			Sources:  sources,
			ParsedAt: time.Now(),
			Duration: duration,
		},
	}

	if min, max, ok := result.TimeBounds(); ok {
		report.Summary.TimeRange = &TimeRange{
			Start: time.UnixMilli(min),
			End:   time.UnixMilli(max),
		}
	}

	for _, key := range result.Attributes() {
		s, ok := result.Series(key)
		if !ok {
			continue
		}
		report.Attributes = append(report.Attributes, AttributeSummary{
			Key:         key,
			Label:       names.Label(key),
			RawSamples:  len(s.Raw),
			NormSamples: len(s.Norm),
		})
	}

	return report
}

// HasData returns true if the log yielded at least one counted row.
// A report without data is the "no usable data" terminal state, not an
// error.
func (r *Report) HasData() bool {
	return r.Summary.Rows > 0
}
