package charts

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/datagaze-labs/datagaze/internal/dataset"
)

// SetupRoutes registers the PNG chart endpoints.
func SetupRoutes(r chi.Router, store *dataset.Store, logger *slog.Logger) error {
	h := NewHandlers(store, logger)

	r.Get("/charts/education/top-districts.png", h.TopDistricts)
	r.Get("/charts/education/histogram.png", h.Histogram)
	r.Get("/charts/education/states.png", h.States)
	r.Get("/charts/pollution/trend.png", h.Trend)
	r.Get("/charts/pollution/top-cities.png", h.TopCities)

	return nil
}
