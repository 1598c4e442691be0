// Package parser converts raw SMART disk-health log text into an
// immutable, sorted time-series model.
package parser

// Sample is a single observed value at a point in time.
type Sample struct {
	// Timestamp is milliseconds since the Unix epoch.
	Timestamp int64

	// Value is the observed attribute value.
	Value float64
}

// AttributeSeries holds every sample observed for one SMART attribute.
// After parsing completes, Raw and Norm are sorted non-decreasing by
// timestamp; samples sharing a timestamp keep their input order.
// Callers must not modify the slices.
type AttributeSeries struct {
	// Key is the attribute identifier as it appeared in the log (e.g. "194").
	Key string

	// Raw contains samples of the vendor-specific raw counter value.
	Raw []Sample

	// Norm contains samples of the vendor-normalized score.
	Norm []Sample
}

// Result is the outcome of parsing one log text. It is built in a single
// pass and immutable afterwards; selections for display never change it.
type Result struct {
	series  map[string]*AttributeSeries
	attrs   []string
	rows    int
	tMin    int64
	tMax    int64
	bounded bool
}

// Rows returns the number of lines that had a parseable timestamp and at
// least four fields. A row is counted even when none of its triplets
// produced a usable sample: the count reflects rows with parseable
// timestamps, not rows with parseable data.
func (r *Result) Rows() int {
	return r.rows
}

// Attributes returns the discovered attribute keys in ascending numeric
// order ("9" sorts before "10"). The returned slice is a copy.
func (r *Result) Attributes() []string {
	attrs := make([]string, len(r.attrs))
	copy(attrs, r.attrs)
	return attrs
}

// Series returns the series for the given attribute key.
// The second return value is false if the key was never seen.
func (r *Result) Series(key string) (*AttributeSeries, bool) {
	s, ok := r.series[key]
	return s, ok
}

// TimeBounds returns the minimum and maximum timestamp (milliseconds since
// the Unix epoch) across all counted rows. ok is false when no row had a
// valid timestamp, in which case min and max are zero.
func (r *Result) TimeBounds() (min, max int64, ok bool) {
	if !r.bounded {
		return 0, 0, false
	}
	return r.tMin, r.tMax, true
}
