package education

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/datagaze-labs/datagaze/internal/dataset"
	"github.com/datagaze-labs/datagaze/internal/ui/notifier"
)

// SetupRoutes registers the education feature's routes.
func SetupRoutes(r chi.Router, store *dataset.Store, notify *notifier.Notifier, logger *slog.Logger) error {
	h := NewHandlers(store, notify, logger)

	r.Get("/education", h.Page)
	r.Get("/education/update", h.Update)
	r.Get("/education/updates", h.Updates)

	return nil
}
