package pollution

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/datagaze-labs/datagaze/internal/dataset"
	"github.com/datagaze-labs/datagaze/internal/ui/notifier"
)

// SetupRoutes registers the air-quality feature's routes.
func SetupRoutes(r chi.Router, store *dataset.Store, notify *notifier.Notifier, logger *slog.Logger) error {
	h := NewHandlers(store, notify, logger)

	r.Get("/air-quality", h.Page)
	r.Get("/air-quality/update", h.Update)
	r.Get("/air-quality/updates", h.Updates)

	return nil
}
