// Package router sets up HTTP routes for the dashboard server.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/datagaze-labs/datagaze/internal/dataset"
	"github.com/datagaze-labs/datagaze/internal/ui/charts"
	"github.com/datagaze-labs/datagaze/internal/ui/features/common"
	educationFeature "github.com/datagaze-labs/datagaze/internal/ui/features/education"
	pollutionFeature "github.com/datagaze-labs/datagaze/internal/ui/features/pollution"
	"github.com/datagaze-labs/datagaze/internal/ui/notifier"
)

// SetupRoutes configures all routes for the dashboard server.
func SetupRoutes(
	router chi.Router,
	store *dataset.Store,
	notify *notifier.Notifier,
	logger *slog.Logger,
) error {
	// The education dashboard is the landing page.
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/education", http.StatusFound)
	})

	router.Get("/static/styles.css", common.StylesHandler())

	if err := educationFeature.SetupRoutes(router, store, notify, logger); err != nil {
		return err
	}

	if err := pollutionFeature.SetupRoutes(router, store, notify, logger); err != nil {
		return err
	}

	if err := charts.SetupRoutes(router, store, logger); err != nil {
		return err
	}

	return nil
}
