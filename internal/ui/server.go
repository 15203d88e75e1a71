// Package ui provides the web dashboard server.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/datagaze-labs/datagaze/internal/dataset"
	"github.com/datagaze-labs/datagaze/internal/ui/notifier"
	"github.com/datagaze-labs/datagaze/internal/ui/router"
)

// Server is the main dashboard server.
type Server struct {
	store    *dataset.Store
	port     int
	watch    bool
	logger   *slog.Logger
	notifier *notifier.Notifier
}

// Config holds configuration for the dashboard server.
type Config struct {
	Store  *dataset.Store
	Port   int
	Watch  bool
	Logger *slog.Logger
}

// NewServer creates a new dashboard server instance.
func NewServer(cfg Config) *Server {
	return &Server{
		store:    cfg.Store,
		port:     cfg.Port,
		watch:    cfg.Watch,
		logger:   cfg.Logger,
		notifier: notifier.New(),
	}
}

// Serve starts the dashboard server and blocks until the context is
// cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting dashboard server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	if err := router.SetupRoutes(r, s.store, s.notifier, s.logger); err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start file watcher if enabled
	if s.watch {
		eg.Go(func() error {
			return s.watchFiles(egctx)
		})
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down dashboard server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// watchFiles reloads the datasets when one of the CSV files changes.
// Editors replace files rather than write them in place, so the watcher
// follows the parent directories and matches events against the dataset
// paths.
func (s *Server) watchFiles(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	watched := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, p := range s.store.Paths() {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = filepath.Clean(p)
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			s.logger.Error("failed to watch dataset directory", "dir", dir, "error", err)
			// Don't fail - continue without watching this directory
		}
	}

	// Debounce timer
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			name, err := filepath.Abs(event.Name)
			if err != nil {
				name = filepath.Clean(event.Name)
			}
			if !watched[name] {
				continue
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.logger.Debug("dataset changed, reloading", "file", name)

				if err := s.store.Reload(); err != nil {
					s.logger.Error("reload failed, keeping previous snapshot", "error", err)
					return
				}

				// Notify all SSE clients
				s.notifier.Broadcast()
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}
