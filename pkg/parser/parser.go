package parser

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Parse converts raw log text into a Result. It never fails: malformed
// lines, fields, and values are skipped, and an empty or entirely
// malformed input yields a Result with zero rows and no attributes.
//
// Each line has the shape
//
//	YYYY-MM-DD HH:mm:ss; attr; norm; raw; attr; norm; raw; ...
//
// A line needs a parseable timestamp and at least one complete
// attribute/normalized/raw triplet to be counted. Within a counted row,
// each normalized and raw field is validated independently; a value that
// isn't a finite number drops only that slot.
func Parse(text string) *Result {
	b := newBuilder()

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.scanLine(line)
	}

	return b.finalize()
}

// builder accumulates unsorted per-attribute samples during the scan and
// is finalized into an immutable Result once, avoiding re-sorting on
// every insertion.
type builder struct {
	series  map[string]*AttributeSeries
	order   []string // discovery order; replaced by numeric order on finalize
	rows    int
	tMin    int64
	tMax    int64
	bounded bool
}

func newBuilder() *builder {
	return &builder{series: make(map[string]*AttributeSeries)}
}

func (b *builder) scanLine(line string) {
	fields := splitFields(line)

	// One timestamp plus at least one complete triplet.
	if len(fields) < 4 {
		return
	}

	ts, ok := parseTimestamp(fields[0])
	if !ok {
		return
	}

	// The row counts once the timestamp parses, even if every triplet
	// below turns out to be unusable. Summary counters report rows with
	// parseable timestamps, not rows with parseable data.
	b.rows++
	b.observe(ts)

	for i := 1; i+3 <= len(fields); i += 3 {
		key := fields[i]
		if key == "" {
			continue
		}

		norm, normOK := parseValue(fields[i+1])
		raw, rawOK := parseValue(fields[i+2])
		if !normOK && !rawOK {
			continue
		}

		s := b.attr(key)
		if rawOK {
			s.Raw = append(s.Raw, Sample{Timestamp: ts, Value: raw})
		}
		if normOK {
			s.Norm = append(s.Norm, Sample{Timestamp: ts, Value: norm})
		}
	}
}

// splitFields splits a line on ';', trims whitespace and tabs from each
// field, and drops fields that are empty after trimming (so a trailing
// ';' is ignored).
func splitFields(line string) []string {
	parts := strings.Split(line, ";")
	fields := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}

// parseValue parses a field as a finite number.
func parseValue(field string) (float64, bool) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func (b *builder) attr(key string) *AttributeSeries {
	if s, ok := b.series[key]; ok {
		return s
	}
	s := &AttributeSeries{Key: key}
	b.series[key] = s
	b.order = append(b.order, key)
	return s
}

func (b *builder) observe(ts int64) {
	if !b.bounded {
		b.tMin, b.tMax = ts, ts
		b.bounded = true
		return
	}
	if ts < b.tMin {
		b.tMin = ts
	}
	if ts > b.tMax {
		b.tMax = ts
	}
}

// finalize sorts the attribute key list numerically and every sample list
// by timestamp, then freezes the accumulator into a Result.
func (b *builder) finalize() *Result {
	attrs := b.order
	sort.SliceStable(attrs, func(i, j int) bool {
		return keyLess(attrs[i], attrs[j])
	})

	for _, s := range b.series {
		sortSamples(s.Raw)
		sortSamples(s.Norm)
	}

	return &Result{
		series:  b.series,
		attrs:   attrs,
		rows:    b.rows,
		tMin:    b.tMin,
		tMax:    b.tMax,
		bounded: b.bounded,
	}
}

// keyLess orders attribute keys by numeric value ("10" after "9").
// Keys that aren't numbers sort after all numeric keys, by string.
func keyLess(a, b string) bool {
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	aok, bok := errA == nil, errB == nil
	switch {
	case aok && bok:
		if na != nb {
			return na < nb
		}
		return a < b
	case aok:
		return true
	case bok:
		return false
	default:
		return a < b
	}
}

// sortSamples sorts by timestamp ascending. The sort is stable so samples
// sharing a timestamp keep the order they appeared in the input.
func sortSamples(samples []Sample) {
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Timestamp < samples[j].Timestamp
	})
}
