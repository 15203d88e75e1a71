package charts

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/datagaze-labs/datagaze/internal/dataset"
	"github.com/datagaze-labs/datagaze/internal/query"
	"github.com/datagaze-labs/datagaze/internal/report"
	"github.com/datagaze-labs/datagaze/internal/stats"
)

// Handlers renders chart images from the current dataset snapshot.
type Handlers struct {
	store  *dataset.Store
	logger *slog.Logger
}

func NewHandlers(store *dataset.Store, logger *slog.Logger) *Handlers {
	return &Handlers{store: store, logger: logger}
}

func educationParams(r *http.Request) query.EducationParams {
	p := query.NewEducationParams()
	if v := r.URL.Query().Get("state"); v != "" {
		p.State = v
	}
	return p
}

func pollutionParams(r *http.Request) query.PollutionParams {
	p := query.NewPollutionParams()
	q := r.URL.Query()
	if v := q.Get("city"); v != "" {
		p.City = v
	}
	p.From = parseDate(q.Get("from"))
	p.To = parseDate(q.Get("to"))
	p.Granularity = stats.ParseGranularity(q.Get("granularity"))
	p.CompareA = q.Get("compare1")
	p.CompareB = q.Get("compare2")
	return p
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &t
}

func (h *Handlers) educationView(r *http.Request) report.EducationView {
	return report.BuildEducationView(h.store.Current().Education, educationParams(r))
}

// TopDistricts draws the ranked-districts bar chart.
func (h *Handlers) TopDistricts(w http.ResponseWriter, r *http.Request) {
	view := h.educationView(r)
	bars := make([]chart.Value, 0, len(view.TopDistricts))
	for _, d := range view.TopDistricts {
		bars = append(bars, chart.Value{Value: d.Literacy, Label: d.District, Style: barStyle()})
	}
	renderBars(w, h.logger, "Top Districts by Literacy Rate (%)", bars)
}

// Histogram draws the literacy-rate distribution.
func (h *Handlers) Histogram(w http.ResponseWriter, r *http.Request) {
	view := h.educationView(r)
	bars := make([]chart.Value, 0, len(view.Histogram))
	empty := true
	for _, b := range view.Histogram {
		if b.Count > 0 {
			empty = false
		}
		label := fmt.Sprintf("%g", b.Low)
		bars = append(bars, chart.Value{Value: float64(b.Count), Label: label, Style: barStyle()})
	}
	if empty {
		bars = nil
	}
	renderBars(w, h.logger, "Literacy Rate Distribution (districts per bin)", bars)
}

// States draws the mean literacy per state.
func (h *Handlers) States(w http.ResponseWriter, r *http.Request) {
	view := h.educationView(r)
	bars := make([]chart.Value, 0, len(view.StateComparison))
	for _, g := range view.StateComparison {
		bars = append(bars, chart.Value{Value: g.Mean, Label: g.Key, Style: barStyle()})
	}
	renderBars(w, h.logger, "Average Literacy Rate by State (%)", bars)
}

func (h *Handlers) pollutionView(r *http.Request) report.PollutionView {
	return report.BuildPollutionView(h.store.Current().Pollution, pollutionParams(r))
}

// Trend draws the mean AQI per period, with an overlay when two cities
// are being compared.
func (h *Handlers) Trend(w http.ResponseWriter, r *http.Request) {
	view := h.pollutionView(r)
	renderTrend(w, h.logger, "AQI Trend Over Time", view)
}

// TopCities draws the cities ranked by average AQI.
func (h *Handlers) TopCities(w http.ResponseWriter, r *http.Request) {
	view := h.pollutionView(r)
	bars := make([]chart.Value, 0, len(view.TopCities))
	for _, g := range view.TopCities {
		bars = append(bars, chart.Value{Value: g.Mean, Label: g.Key, Style: barStyle()})
	}
	renderBars(w, h.logger, "Top Cities by Average AQI", bars)
}
