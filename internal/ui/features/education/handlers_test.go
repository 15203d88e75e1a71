package education

import (
	"context"
	"net/http"
	"net/http/httptest"
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
			target: "/education",
			wantBody: []string{
				"<!doctype html>",
				"<title>Education Analysis",
				"Average Literacy Rate",
				"Top 10 Districts by Literacy Rate",
				"State-wise Literacy Comparison",
				"Kottayam",
				"Serchhip",
				"/charts/education/top-districts.png",
				"/education/updates",
			},
		},
		{
			name:   "state query param filters the page",
			target: "/education?state=Bihar",
			wantBody: []string{
				"Patna",
				"Purnia",
				`value="Bihar" selected`,
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

func TestPage_FilteredState(t *testing.T) {
	h, _ := setupTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/education?state=Bihar", nil)
	rec := httptest.NewRecorder()

	h.Page(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "Patna")
	assert.NotContains(t, body, "Kottayam", "other states' districts should be filtered out of the tables")
}

func TestUpdate_PatchesDashboard(t *testing.T) {
	h, _ := setupTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/education/update?datastar=%7B%22state%22%3A%22Kerala%22%7D", nil)
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "event: datastar-patch-elements")
	assert.Contains(t, body, "edu-dashboard")
	assert.Contains(t, body, "Kottayam")
	assert.NotContains(t, body, "Patna")
}

func TestUpdates_SendsUpdateOnBroadcast(t *testing.T) {
	h, fixture := setupTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/education/updates", nil)
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
	assert.Contains(t, body, "edu-dashboard")
}

func TestUpdates_NoEventWithoutBroadcast(t *testing.T) {
	h, _ := setupTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/education/updates", nil)
	ctx, cancel := context.WithTimeout(req.Context(), 50*time.Millisecond)
	defer cancel()
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	h.Updates(rec, req)

	assert.Equal(t, 0, strings.Count(rec.Body.String(), "event:"))
}
