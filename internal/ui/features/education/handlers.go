// Package education serves the literacy dashboard: a state filter, key
// metrics, ranked districts, the literacy distribution, and a state
// comparison, recomputed on every input change.
package education

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/datagaze-labs/datagaze/internal/dataset"
	"github.com/datagaze-labs/datagaze/internal/query"
	"github.com/datagaze-labs/datagaze/internal/report"
	"github.com/datagaze-labs/datagaze/internal/ui/features/common"
	"github.com/datagaze-labs/datagaze/internal/ui/notifier"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Handlers provides HTTP handlers for the education feature.
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

// signals mirrors the page's datastar signals: the full filter state the
// client sends with every update request.
type signals struct {
	State    string `json:"state"`
	Compare1 string `json:"compare1"`
	Compare2 string `json:"compare2"`
}

func defaultSignals() signals {
	return signals{State: query.All}
}

func (s signals) params() query.EducationParams {
	p := query.NewEducationParams()
	if s.State != "" {
		p.State = s.State
	}
	p.CompareA = s.Compare1
	p.CompareB = s.Compare2
	return p
}

// signalsFromQuery seeds the page's initial signals from the URL, so a
// filtered view is bookmarkable.
func signalsFromQuery(r *http.Request) signals {
	s := defaultSignals()
	q := r.URL.Query()
	if v := q.Get("state"); v != "" {
		s.State = v
	}
	s.Compare1 = q.Get("compare1")
	s.Compare2 = q.Get("compare2")
	return s
}

// viewModel decorates the recomputed view with the chart endpoints that
// share its parameters.
type viewModel struct {
	report.EducationView
	ChartTopDistricts string
	ChartHistogram    string
	ChartStates       string
}

func buildViewModel(ds *dataset.Datasets, p query.EducationParams) viewModel {
	q := url.Values{}
	q.Set("state", p.State)
	qs := q.Encode()
	return viewModel{
		EducationView:     report.BuildEducationView(ds.Education, p),
		ChartTopDistricts: "/charts/education/top-districts.png?" + qs,
		ChartHistogram:    "/charts/education/histogram.png?" + qs,
		ChartStates:       "/charts/education/states.png?" + qs,
	}
}

// Page renders the full education dashboard page.
func (h *Handlers) Page(w http.ResponseWriter, r *http.Request) {
	sig := signalsFromQuery(r)
	sigJSON, err := json.Marshal(sig)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page := common.Page{
		Title:       "Education Analysis",
		CurrentPath: "/education",
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

// Updates is the long-lived SSE endpoint. It re-renders the dashboard
// whenever the datasets are reloaded; the filter parameters are the ones
// present when the page connected.
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
	if err := h.tmpl.ExecuteTemplate(&buf, "education-dashboard", vm); err != nil {
		return err
	}
	return sse.PatchElements(buf.String())
}
