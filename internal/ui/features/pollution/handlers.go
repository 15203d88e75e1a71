// Package pollution serves the air-quality dashboard: city and date-range
// filters, key AQI indicators, the bucketed AQI trend, the most polluted
// cities, and the pollutant correlation matrix.
package pollution

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/datagaze-labs/datagaze/internal/dataset"
	"github.com/datagaze-labs/datagaze/internal/query"
	"github.com/datagaze-labs/datagaze/internal/report"
	"github.com/datagaze-labs/datagaze/internal/stats"
	"github.com/datagaze-labs/datagaze/internal/ui/features/common"
	"github.com/datagaze-labs/datagaze/internal/ui/notifier"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Handlers provides HTTP handlers for the air-quality feature.
type Handlers struct {
	store    *dataset.Store
	notifier *notifier.Notifier
	logger   *slog.Logger
	tmpl     *template.Template
}

// NewHandlers creates a Handlers instance with its templates parsed.
func NewHandlers(store *dataset.Store, notify *notifier.Notifier, logger *slog.Logger) *Handlers {
	return &Handlers{
		store:    store,
		notifier: notify,
		logger:   logger,
		tmpl:     template.Must(common.Base().ParseFS(templatesFS, "templates/*.html")),
	}
}

// signals mirrors the page's datastar signals. Dates travel as
// "2006-01-02" strings; an empty or half-picked range leaves the date
// filter disengaged.
type signals struct {
	City        string `json:"city"`
	From        string `json:"from"`
	To          string `json:"to"`
	Granularity string `json:"granularity"`
	Compare1    string `json:"compare1"`
	Compare2    string `json:"compare2"`
}

func defaultSignals() signals {
	return signals{City: query.All, Granularity: string(stats.Monthly)}
}

func (s signals) params() query.PollutionParams {
	p := query.NewPollutionParams()
	if s.City != "" {
		p.City = s.City
	}
	p.From = parseOptionalDate(s.From)
	p.To = parseOptionalDate(s.To)
	p.Granularity = stats.ParseGranularity(s.Granularity)
	p.CompareA = s.Compare1
	p.CompareB = s.Compare2
	return p
}

// parseOptionalDate treats anything unparseable as an absent endpoint; a
// partial range is tolerated input, not an error.
func parseOptionalDate(s string) *time.Time {
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

func signalsFromQuery(r *http.Request) signals {
	s := defaultSignals()
	q := r.URL.Query()
	if v := q.Get("city"); v != "" {
		s.City = v
	}
	s.From = q.Get("from")
	s.To = q.Get("to")
	if v := q.Get("granularity"); v != "" {
		s.Granularity = v
	}
	s.Compare1 = q.Get("compare1")
	s.Compare2 = q.Get("compare2")
	return s
}

// viewModel decorates the recomputed view with its chart endpoints.
type viewModel struct {
	report.PollutionView
	ChartTrend     string
	ChartTopCities string
}

func buildViewModel(ds *dataset.Datasets, p query.PollutionParams) viewModel {
	q := url.Values{}
	q.Set("city", p.City)
	q.Set("granularity", string(p.Granularity))
	if p.From != nil {
		q.Set("from", p.From.Format("2006-01-02"))
	}
	if p.To != nil {
		q.Set("to", p.To.Format("2006-01-02"))
	}
	if p.CompareA != "" && p.CompareB != "" {
		q.Set("compare1", p.CompareA)
		q.Set("compare2", p.CompareB)
	}
	qs := q.Encode()
	return viewModel{
		PollutionView:  report.BuildPollutionView(ds.Pollution, p),
		ChartTrend:     "/charts/pollution/trend.png?" + qs,
		ChartTopCities: "/charts/pollution/top-cities.png?" + qs,
	}
}

// Page renders the full air-quality dashboard page.
func (h *Handlers) Page(w http.ResponseWriter, r *http.Request) {
	sig := signalsFromQuery(r)
	sigJSON, err := json.Marshal(sig)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page := common.Page{
		Title:       "Air Quality Analysis",
		CurrentPath: "/air-quality",
		Signals:     string(sigJSON),
		View:        buildViewModel(h.store.Current(), sig.params()),
	}
	if err := h.tmpl.ExecuteTemplate(w, "layout", page); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Update recomputes the dashboard for the signals the client sent and
// patches the content fragment over SSE.
func (h *Handlers) Update(w http.ResponseWriter, r *http.Request) {
	sig := defaultSignals()
	if err := datastar.ReadSignals(r, &sig); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := h.patchDashboard(sse, sig); err != nil {
		_ = sse.ConsoleError(err)
	}
}

// Updates is the long-lived SSE endpoint, refreshed on dataset reloads.
func (h *Handlers) Updates(w http.ResponseWriter, r *http.Request) {
	sig := defaultSignals()
	_ = datastar.ReadSignals(r, &sig)

	sse := datastar.NewSSE(w, r)
	updates := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(updates)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			if err := h.patchDashboard(sse, sig); err != nil {
				_ = sse.ConsoleError(err)
			}
		}
	}
}

func (h *Handlers) patchDashboard(sse *datastar.ServerSentEventGenerator, sig signals) error {
	vm := buildViewModel(h.store.Current(), sig.params())
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "pollution-dashboard", vm); err != nil {
		return err
	}
	return sse.PatchElements(buf.String())
}
