// Package render draws PNG time-series charts from parsed SMART data.
package render

import (
	"fmt"
	"io"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"smartlog/pkg/parser"
	"smartlog/pkg/smart"
)

// Default chart dimensions.
const (
	DefaultWidth  = 1024
	DefaultHeight = 480
)

// Options controls chart appearance. The zero value is usable.
type Options struct {
	// Width and Height in pixels; defaults apply when <= 0.
	Width  int
	Height int

	// Title is the chart title; empty means no title.
	Title string

	// Names labels series in the legend. Nil labels by attribute key.
	Names smart.Table
}

// palette cycles across series in a fixed order so the same selection
// always renders with the same colors.
var palette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorRed,
	chart.ColorOrange,
	chart.ColorCyan,
	chart.ColorAlternateGreen,
	chart.ColorAlternateBlue,
	chart.ColorAlternateGray,
}

// PNG renders the selection as a PNG chart to w. It fails when the
// selection has no entries; an all-empty selection is the caller's
// "no usable data" state to surface, not something to draw.
func PNG(sel parser.Selection, opts Options, w io.Writer) error {
	if len(sel.Entries) == 0 {
		return fmt.Errorf("nothing to chart: selection is empty")
	}

	series := make([]chart.Series, 0, len(sel.Entries))
	for i, entry := range sel.Entries {
		series = append(series, timeSeries(entry, palette[i%len(palette)], opts.Names))
	}

	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	ch := chart.Chart{
		Title:      opts.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 16, Left: 16, Right: 16, Bottom: 48}},
		XAxis: chart.XAxis{
			Name:           "Time",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02 15:04"),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

// timeSeries converts one selection entry into a go-chart series.
func timeSeries(entry parser.SelectionEntry, col drawing.Color, names smart.Table) chart.TimeSeries {
	times := make([]time.Time, len(entry.Samples))
	values := make([]float64, len(entry.Samples))
	for i, s := range entry.Samples {
		times[i] = time.UnixMilli(s.Timestamp)
		values[i] = s.Value
	}

	// go-chart cannot render a zero-width X range; pad single-sample
	// series to two points one second apart.
	if len(times) == 1 {
		times = append(times, times[0].Add(1*time.Second))
		values = append(values, values[0])
	}

	return chart.TimeSeries{
		Name:    seriesName(entry, names),
		XValues: times,
		YValues: values,
		Style: chart.Style{
			StrokeColor: col,
			StrokeWidth: 1.5,
			DotWidth:    2,
			DotColor:    col,
		},
	}
}

func seriesName(entry parser.SelectionEntry, names smart.Table) string {
	return fmt.Sprintf("%s (%s)", names.Label(entry.Key), entry.Kind)
}
