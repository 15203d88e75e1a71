// Package charts renders the dashboards' PNG charts. Each endpoint is
// keyed by the same filter parameters as the page that embeds it, so an
// input change re-requests the images along with the patched fragment.
package charts

import (
	"log/slog"
	"net/http"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/datagaze-labs/datagaze/internal/report"
)

const (
	chartWidth  = 960
	chartHeight = 420
)

var (
	barFill    = drawing.Color{R: 59, G: 130, B: 246, A: 255}
	lineStroke = drawing.Color{R: 37, G: 99, B: 235, A: 255}
	altStroke  = drawing.Color{R: 220, G: 38, B: 38, A: 255}
)

func barStyle() chart.Style {
	return chart.Style{FillColor: barFill, StrokeColor: barFill}
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{StrokeColor: col, StrokeWidth: 2}
}

// writePNG renders a chart into the response. Render failures after the
// header is sent can only be logged.
func writePNG(w http.ResponseWriter, logger *slog.Logger, render func(w http.ResponseWriter) error) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := render(w); err != nil {
		logger.Error("chart render failed", "error", err)
	}
}

// noData answers chart requests whose filtered view is empty; the
// dashboard fragment drops the <img> in that state, so this only serves
// stale tabs.
func noData(w http.ResponseWriter) {
	http.Error(w, "no data for the selected filters", http.StatusNotFound)
}

func renderBars(w http.ResponseWriter, logger *slog.Logger, title string, bars []chart.Value) {
	if len(bars) == 0 {
		noData(w)
		return
	}
	barWidth := 40
	if len(bars) > 12 {
		barWidth = 18
	}
	graph := chart.BarChart{
		Title:    title,
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: barWidth,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 24},
		},
		Bars: bars,
	}
	writePNG(w, logger, func(w http.ResponseWriter) error {
		return graph.Render(chart.PNG, w)
	})
}

// trendSeries converts trend points into a continuous series over bucket
// indexes, with one tick per bucket label.
func trendSeries(name string, points []report.TrendPoint, col drawing.Color) (chart.ContinuousSeries, []chart.Tick) {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	ticks := make([]chart.Tick, len(points))
	for i, p := range points {
		xs[i] = float64(i)
		ys[i] = p.Mean
		ticks[i] = chart.Tick{Value: float64(i), Label: p.Label}
	}
	return chart.ContinuousSeries{Name: name, XValues: xs, YValues: ys, Style: lineStyle(col)}, ticks
}

func renderTrend(w http.ResponseWriter, logger *slog.Logger, title string, view report.PollutionView) {
	if len(view.Trend) == 0 {
		noData(w)
		return
	}

	var series []chart.Series
	var ticks []chart.Tick

	if view.Compare != nil {
		a, ticksA := trendSeries(view.Compare.A, view.Compare.TrendA, lineStroke)
		b, ticksB := trendSeries(view.Compare.B, view.Compare.TrendB, altStroke)
		series = append(series, a, b)
		ticks = ticksA
		if len(ticksB) > len(ticks) {
			ticks = ticksB
		}
	} else {
		s, t := trendSeries("Mean AQI", view.Trend, lineStroke)
		series = append(series, s)
		ticks = t
	}

	// A single bucket cannot span an axis range; pad with a flat point.
	for i, s := range series {
		cs := s.(chart.ContinuousSeries)
		if len(cs.XValues) == 1 {
			cs.XValues = append(cs.XValues, cs.XValues[0]+1)
			cs.YValues = append(cs.YValues, cs.YValues[0])
			series[i] = cs
		}
	}

	graph := chart.Chart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 24},
		},
		XAxis:  chart.XAxis{Ticks: ticks},
		YAxis:  chart.YAxis{Name: "AQI"},
		Series: series,
	}
	if view.Compare != nil {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}
	writePNG(w, logger, func(w http.ResponseWriter) error {
		return graph.Render(chart.PNG, w)
	})
}
