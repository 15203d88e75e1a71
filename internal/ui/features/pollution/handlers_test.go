package pollution

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/datagaze-labs/datagaze/internal/ui/features"
)

func setupTestHandlers(t *testing.T) (*Handlers, *features.TestFixture) {
	t.Helper()

	fixture := features.SetupTestFixture(t)
	handlers := NewHandlers(fixture.Store, fixture.Notifier, fixture.Logger)
	return handlers, fixture
}

func TestPage(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantBody []string
	}{
		{
			name:   "renders full dashboard",
			target: "/air-quality",
			wantBody: []string{
				"<!doctype html>",
				"<title>Air Quality Analysis",
				"Average AQI",
				"AQI Trend Over Time",
				"Top 10 Most Polluted Cities",
				"Pollutant Correlations",
				"Delhi",
				"Aizawl",
				"/charts/pollution/trend.png",
				"/air-quality/updates",
			},
		},
		{
			name:   "city query param filters the page",
			target: "/air-quality?city=Aizawl",
			wantBody: []string{
				`value="Aizawl" selected`,
				"76.0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := setupTestHandlers(t)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			h.Page(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			for _, want := range tt.wantBody {
				assert.Contains(t, body, want, "response should contain %q", want)
			}
		})
	}
}

func TestPage_DateRangeFilter(t *testing.T) {
	h, _ := setupTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/air-quality?from=2016-01-01&to=2016-12-31", nil)
	rec := httptest.NewRecorder()

	h.Page(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "Ahmedabad", "only 2016 readings should remain")
	assert.NotContains(t, body, "<td>Delhi</td>", "cities without 2016 readings drop out of the ranking")
}

func TestUpdate_PatchesDashboard(t *testing.T) {
	h, _ := setupTestHandlers(t)

	signals := url.QueryEscape(`{"city":"Delhi","granularity":"Monthly"}`)
	req := httptest.NewRequest(http.MethodGet, "/air-quality/update?datastar="+signals, nil)
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "event: datastar-patch-elements")
	assert.Contains(t, body, "aqi-dashboard")
	assert.Contains(t, body, "463.0", "mean AQI over Delhi's two readings")
	assert.NotContains(t, body, "<td>Aizawl</td>")
}

func TestUpdate_EmptySelection(t *testing.T) {
	h, _ := setupTestHandlers(t)

	// A range before any reading leaves nothing to aggregate.
	signals := url.QueryEscape(`{"city":"All","from":"2010-01-01","to":"2010-12-31"}`)
	req := httptest.NewRequest(http.MethodGet, "/air-quality/update?datastar="+signals, nil)
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "No readings match the current filters")
}

func TestUpdates_SendsUpdateOnBroadcast(t *testing.T) {
	h, fixture := setupTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/air-quality/updates", nil)
	ctx, cancel := context.WithTimeout(req.Context(), 300*time.Millisecond)
	defer cancel()
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		h.Updates(rec, req)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	fixture.Notifier.Broadcast()
	<-done

	body := rec.Body.String()
	eventCount := strings.Count(body, "event:")
	assert.GreaterOrEqual(t, eventCount, 1, "should have at least 1 SSE event from broadcast")
	assert.Contains(t, body, "aqi-dashboard")
}
