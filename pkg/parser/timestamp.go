package parser

import (
	"time"
)

// TimestampLayout is the Go time layout matching the log's leading
// timestamp field (no timezone; interpreted as local wall-clock time).
const TimestampLayout = "2006-01-02 15:04:05"

// parseTimestamp parses a trimmed timestamp field into milliseconds since
// the Unix epoch. Returns ok=false for anything that doesn't match the
// layout exactly.
func parseTimestamp(field string) (int64, bool) {
	ts, err := time.ParseInLocation(TimestampLayout, field, time.Local)
	if err != nil {
		return 0, false
	}
	return ts.UnixMilli(), true
}
