// Package chart renders brightness diagrams as HTML pages using go-echarts.
package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/agleyzer/lightseq/internal/side"
	"github.com/agleyzer/lightseq/internal/timeline"
)

const (
	colorShared = "#00b400"
	colorLeft   = "#0000ff"
	colorRight  = "#ff0000"

	// defaultViewMs is the x range used when both curves are empty.
	defaultViewMs = 1000
)

// Series names as they appear in the legend.
const (
	SeriesBoth   = "Left = Right"
	SeriesLeft   = "Left"
	SeriesRight  = "Right"
	SeriesShared = "Shared"
)

// Options controls page rendering.
type Options struct {
	// PageTitle is the HTML page title
	PageTitle string

	// Width and Height are CSS sizes for each diagram
	Width  string
	Height string

	// Position draws a playhead at this time (ms) when non-negative
	Position float64
}

// DefaultOptions returns options for a full-width page without a playhead.
func DefaultOptions() Options {
	return Options{
		PageTitle: "Light sequences",
		Width:     "1000px",
		Height:    "320px",
		Position:  -1,
	}
}

// Renderer draws the diagrams of a workspace.
type Renderer struct {
	ws   *side.Workspace
	opts Options
}

// New creates a renderer for ws.
func New(ws *side.Workspace, o Options) *Renderer {
	return &Renderer{ws: ws, opts: o}
}

// Diagram builds the line chart for sequence slot i. Identical left and right
// curves are drawn once; otherwise each side gets its own series and the
// segments they share are overlaid.
func (r *Renderer) Diagram(i int) *charts.Line {
	left := r.ws.ChartData(side.Left, i)
	right := r.ws.ChartData(side.Right, i)

	maxT := max(left.MaxT, right.MaxT)
	if maxT == 0 {
		maxT = defaultViewMs
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: r.opts.Width, Height: r.opts.Height}),
		charts.WithTitleOpts(opts.Title{
			Title:    r.ws.DiagramLabel(i),
			Subtitle: fmt.Sprintf("%s | %s", r.ws.SequenceLabel(side.Left, i), r.ws.SequenceLabel(side.Right, i)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "10"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Time (ms)", NameLocation: "middle", NameGap: 25, Min: 0, Max: maxT}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Brightness (%)", NameLocation: "middle", NameGap: 35, Min: 0, Max: 100}),
	)

	if timeline.PointsIdentical(left.Points, right.Points) {
		line.AddSeries(SeriesBoth, lineData(left.Points), seriesStyle(colorShared))
	} else {
		line.AddSeries(SeriesLeft, lineData(left.Points), seriesStyle(colorLeft))
		line.AddSeries(SeriesRight, lineData(right.Points), seriesStyle(colorRight))
		for _, run := range sharedRuns(left.Points, right.Points) {
			line.AddSeries(SeriesShared, lineData(run), seriesStyle(colorShared))
		}
	}

	if r.opts.Position >= 0 {
		line.SetSeriesOptions(
			charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{
				Name:  "position",
				XAxis: r.opts.Position,
			}),
		)
	}

	return line
}

// Render writes one page holding the diagrams of every slot.
func (r *Renderer) Render(w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = r.opts.PageTitle

	for i := 0; i < r.ws.Slots(); i++ {
		page.AddCharts(r.Diagram(i))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render chart page: %w", err)
	}
	return nil
}

// RenderOne writes a page with the diagram of slot i.
func (r *Renderer) RenderOne(w io.Writer, i int) error {
	if i < 0 || i >= r.ws.Slots() {
		return fmt.Errorf("sequence index %d out of range (0-%d)", i, r.ws.Slots()-1)
	}

	line := r.Diagram(i)
	line.PageTitle = r.opts.PageTitle
	if err := line.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// sharedRuns groups consecutive shared segments into polylines.
func sharedRuns(left, right []timeline.Point) [][]timeline.Point {
	var runs [][]timeline.Point
	var cur []timeline.Point

	for _, seg := range timeline.MatchSegments(left, right) {
		if !seg.Shared {
			if len(cur) > 0 {
				runs = append(runs, cur)
				cur = nil
			}
			continue
		}
		if len(cur) == 0 {
			cur = append(cur, left[seg.Index])
		}
		cur = append(cur, left[seg.Index+1])
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}

	return runs
}

func lineData(points []timeline.Point) []opts.LineData {
	data := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		data = append(data, opts.LineData{Value: []interface{}{p.T, p.B}})
	}
	return data
}

func seriesStyle(color string) charts.SeriesOpts {
	return func(s *charts.SingleSeries) {
		charts.WithLineStyleOpts(opts.LineStyle{Color: color})(s)
		charts.WithItemStyleOpts(opts.ItemStyle{Color: color})(s)
	}
}
