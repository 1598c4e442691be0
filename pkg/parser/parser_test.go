package parser

import (
	"reflect"
	"testing"
	"time"
)

// ms converts a local wall-clock instant into the model's timestamp unit.
func ms(year int, month time.Month, day, hour, min, sec int) int64 {
	return time.Date(year, month, day, hour, min, sec, 0, time.Local).UnixMilli()
}

func TestParse_WellFormedRow(t *testing.T) {
	result := Parse("2020-07-14 13:04:23; 1; 67; 5113173; 3; 96; 0;\n")

	if result.Rows() != 1 {
		t.Errorf("Rows() = %d, want 1", result.Rows())
	}

	attrs := result.Attributes()
	if !reflect.DeepEqual(attrs, []string{"1", "3"}) {
		t.Errorf("Attributes() = %v, want [1 3]", attrs)
	}

	ts := ms(2020, 7, 14, 13, 4, 23)

	s1, ok := result.Series("1")
	if !ok {
		t.Fatal("Series(1) not found")
	}
	if len(s1.Raw) != 1 || s1.Raw[0] != (Sample{Timestamp: ts, Value: 5113173}) {
		t.Errorf("attr 1 Raw = %v, want one sample 5113173 at %d", s1.Raw, ts)
	}
	if len(s1.Norm) != 1 || s1.Norm[0] != (Sample{Timestamp: ts, Value: 67}) {
		t.Errorf("attr 1 Norm = %v, want one sample 67 at %d", s1.Norm, ts)
	}

	s3, ok := result.Series("3")
	if !ok {
		t.Fatal("Series(3) not found")
	}
	if len(s3.Raw) != 1 || s3.Raw[0].Value != 0 {
		t.Errorf("attr 3 Raw = %v, want one sample 0", s3.Raw)
	}
	if len(s3.Norm) != 1 || s3.Norm[0].Value != 96 {
		t.Errorf("attr 3 Norm = %v, want one sample 96", s3.Norm)
	}

	min, max, ok := result.TimeBounds()
	if !ok || min != ts || max != ts {
		t.Errorf("TimeBounds() = (%d, %d, %v), want (%d, %d, true)", min, max, ok, ts, ts)
	}
}

func TestParse_NonNumericValueDropsSlotOnly(t *testing.T) {
	result := Parse("2020-07-14 13:04:23; 5; 100; N/A;\n")

	if result.Rows() != 1 {
		t.Errorf("Rows() = %d, want 1", result.Rows())
	}

	s, ok := result.Series("5")
	if !ok {
		t.Fatal("Series(5) not found")
	}
	if len(s.Norm) != 1 || s.Norm[0].Value != 100 {
		t.Errorf("Norm = %v, want one sample 100", s.Norm)
	}
	if len(s.Raw) != 0 {
		t.Errorf("Raw = %v, want empty", s.Raw)
	}
}

func TestParse_InvalidTimestampSkipsRow(t *testing.T) {
	result := Parse("not-a-date; 1; 67; 100;\n")

	if result.Rows() != 0 {
		t.Errorf("Rows() = %d, want 0", result.Rows())
	}
	if len(result.Attributes()) != 0 {
		t.Errorf("Attributes() = %v, want empty", result.Attributes())
	}
	if _, _, ok := result.TimeBounds(); ok {
		t.Error("TimeBounds() ok = true, want false")
	}
}

func TestParse_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n\n\n", "  \n\t\n\r\n"} {
		result := Parse(input)

		if result.Rows() != 0 {
			t.Errorf("Parse(%q).Rows() = %d, want 0", input, result.Rows())
		}
		if len(result.Attributes()) != 0 {
			t.Errorf("Parse(%q).Attributes() = %v, want empty", input, result.Attributes())
		}
		if _, _, ok := result.TimeBounds(); ok {
			t.Errorf("Parse(%q) has time bounds, want none", input)
		}
	}
}

func TestParse_RowCountedWithZeroUsableSamples(t *testing.T) {
	// Both triplet values fail numeric validation, so no samples are
	// created, but the timestamp parsed and the line has 4 fields: the
	// row still counts and still moves the time bounds.
	result := Parse("2020-07-14 13:04:23; 1; bad; worse;\n")

	if result.Rows() != 1 {
		t.Errorf("Rows() = %d, want 1", result.Rows())
	}
	if len(result.Attributes()) != 0 {
		t.Errorf("Attributes() = %v, want empty", result.Attributes())
	}

	ts := ms(2020, 7, 14, 13, 4, 23)
	min, max, ok := result.TimeBounds()
	if !ok || min != ts || max != ts {
		t.Errorf("TimeBounds() = (%d, %d, %v), want (%d, %d, true)", min, max, ok, ts, ts)
	}
}

func TestParse_FewerThanFourFieldsSkipsRow(t *testing.T) {
	// Timestamp plus an incomplete triplet: too short, row not counted
	// even though the timestamp would have parsed.
	result := Parse("2020-07-14 13:04:23; 1; 67;\n")

	if result.Rows() != 0 {
		t.Errorf("Rows() = %d, want 0", result.Rows())
	}
	if _, _, ok := result.TimeBounds(); ok {
		t.Error("TimeBounds() ok = true, want false")
	}
}

func TestParse_IncompleteTrailingTripletIgnored(t *testing.T) {
	result := Parse("2020-07-14 13:04:23; 1; 67; 100; 3; 96;\n")

	if result.Rows() != 1 {
		t.Errorf("Rows() = %d, want 1", result.Rows())
	}
	if !reflect.DeepEqual(result.Attributes(), []string{"1"}) {
		t.Errorf("Attributes() = %v, want [1]", result.Attributes())
	}
	if _, ok := result.Series("3"); ok {
		t.Error("Series(3) exists, want it skipped as incomplete")
	}
}

func TestParse_AttributeOrderIsNumeric(t *testing.T) {
	text := "2020-07-14 13:04:23; 194; 62; 38; 9; 98; 1043; 5; 100; 0;\n"
	result := Parse(text)

	want := []string{"5", "9", "194"}
	if got := result.Attributes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Attributes() = %v, want %v", got, want)
	}
}

func TestParse_AttributeOrderNotLexicographic(t *testing.T) {
	// "10" sorts after "9" numerically but before it as a string; the
	// key order must be numeric.
	text := "2020-07-14 13:04:23; 10; 97; 0; 194; 62; 38; 9; 98; 1043; 5; 100; 0;\n"
	result := Parse(text)

	want := []string{"5", "9", "10", "194"}
	if got := result.Attributes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Attributes() = %v, want %v", got, want)
	}
}

func TestParse_SamplesSortedAcrossUnorderedRows(t *testing.T) {
	// Later timestamp first in the input.
	text := "2020-07-14 14:00:00; 1; 68; 200;\n" +
		"2020-07-14 13:00:00; 1; 67; 100;\n"
	result := Parse(text)

	s, ok := result.Series("1")
	if !ok {
		t.Fatal("Series(1) not found")
	}

	t1 := ms(2020, 7, 14, 13, 0, 0)
	t2 := ms(2020, 7, 14, 14, 0, 0)

	for _, samples := range [][]Sample{s.Raw, s.Norm} {
		if len(samples) != 2 {
			t.Fatalf("got %d samples, want 2", len(samples))
		}
		if samples[0].Timestamp != t1 || samples[1].Timestamp != t2 {
			t.Errorf("timestamps = [%d, %d], want [%d, %d]",
				samples[0].Timestamp, samples[1].Timestamp, t1, t2)
		}
	}

	min, max, ok := result.TimeBounds()
	if !ok || min != t1 || max != t2 {
		t.Errorf("TimeBounds() = (%d, %d, %v), want (%d, %d, true)", min, max, ok, t1, t2)
	}
}

func TestParse_DuplicateTimestampsKeepInputOrder(t *testing.T) {
	// Same timestamp twice: the stable sort must preserve top-to-bottom
	// scan order.
	text := "2020-07-14 13:00:00; 1; 10; 100;\n" +
		"2020-07-14 13:00:00; 1; 20; 200;\n"
	result := Parse(text)

	s, ok := result.Series("1")
	if !ok {
		t.Fatal("Series(1) not found")
	}
	if len(s.Raw) != 2 || s.Raw[0].Value != 100 || s.Raw[1].Value != 200 {
		t.Errorf("Raw = %v, want values [100, 200] in input order", s.Raw)
	}
	if len(s.Norm) != 2 || s.Norm[0].Value != 10 || s.Norm[1].Value != 20 {
		t.Errorf("Norm = %v, want values [10, 20] in input order", s.Norm)
	}
}

func TestParse_CarriageReturnsAndTabs(t *testing.T) {
	text := "2020-07-14 13:04:23;\t1 ;\t67 ; 100 ;\r\n\r\n"
	result := Parse(text)

	if result.Rows() != 1 {
		t.Errorf("Rows() = %d, want 1", result.Rows())
	}
	s, ok := result.Series("1")
	if !ok {
		t.Fatal("Series(1) not found")
	}
	if len(s.Raw) != 1 || s.Raw[0].Value != 100 {
		t.Errorf("Raw = %v, want one sample 100", s.Raw)
	}
}

func TestParse_NonFiniteValuesRejected(t *testing.T) {
	// ParseFloat accepts "NaN" and "Inf" spellings; the model only
	// stores finite numbers.
	result := Parse("2020-07-14 13:04:23; 1; NaN; +Inf;\n")

	if result.Rows() != 1 {
		t.Errorf("Rows() = %d, want 1", result.Rows())
	}
	if len(result.Attributes()) != 0 {
		t.Errorf("Attributes() = %v, want empty (both slots non-finite)", result.Attributes())
	}
}

func TestParse_MixedValidAndInvalidLines(t *testing.T) {
	text := "garbage line\n" +
		"2020-07-14 13:00:00; 1; 67; 100;\n" +
		"2020-07-14 99:99:99; 1; 67; 100;\n" +
		"\n" +
		"2020-07-14 14:00:00; 1; 68; 200; 194; 60; 41;\n"
	result := Parse(text)

	if result.Rows() != 2 {
		t.Errorf("Rows() = %d, want 2", result.Rows())
	}
	if !reflect.DeepEqual(result.Attributes(), []string{"1", "194"}) {
		t.Errorf("Attributes() = %v, want [1 194]", result.Attributes())
	}
}

func TestParse_Idempotent(t *testing.T) {
	text := "2020-07-14 13:04:23; 1; 67; 5113173; 3; 96; 0;\n" +
		"2020-07-14 13:05:23; 1; 67; 5113180; 194; 62; 38;\n"

	a := Parse(text)
	b := Parse(text)

	if !reflect.DeepEqual(a, b) {
		t.Error("parsing the same text twice gave different results")
	}
}

func TestParse_AttributesReturnsCopy(t *testing.T) {
	result := Parse("2020-07-14 13:04:23; 1; 67; 100; 3; 96; 0;\n")

	attrs := result.Attributes()
	attrs[0] = "mutated"

	if got := result.Attributes(); got[0] != "1" {
		t.Errorf("Attributes() = %v after caller mutation, want [1 3]", got)
	}
}

func TestKeyLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"9", "10", true},
		{"10", "9", false},
		{"5", "194", true},
		{"194", "194", false},
		{"7", "wearout", true}, // numeric before non-numeric
		{"wearout", "7", false},
		{"alpha", "beta", true}, // non-numeric by string
	}

	for _, tt := range tests {
		if got := keyLess(tt.a, tt.b); got != tt.want {
			t.Errorf("keyLess(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "a;b;c", []string{"a", "b", "c"}},
		{"whitespace", " a ;\tb\t; c ", []string{"a", "b", "c"}},
		{"trailing separator", "a;b;", []string{"a", "b"}},
		{"embedded empties", "a;;b;  ;c", []string{"a", "b", "c"}},
		{"all empty", ";;;", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitFields(tt.line)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitFields(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
