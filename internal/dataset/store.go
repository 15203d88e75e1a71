package dataset

import (
	"log/slog"
	"sync"
)

// Store holds the current dataset snapshot and supports atomic reload.
// Snapshots are immutable, so readers keep whatever snapshot they grabbed
// while a reload swaps in a new one.
type Store struct {
	opts   Options
	logger *slog.Logger

	mu   sync.RWMutex
	data *Datasets
}

// NewStore loads both datasets and returns a store around the snapshot.
func NewStore(opts Options, logger *slog.Logger) (*Store, error) {
	ds, err := Load(opts, logger)
	if err != nil {
		return nil, err
	}
	return &Store{opts: opts, logger: logger, data: ds}, nil
}

// Current returns the current snapshot.
func (s *Store) Current() *Datasets {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Reload re-reads both files and swaps the snapshot. On failure the old
// snapshot stays in place and the error is returned.
func (s *Store) Reload() error {
	ds, err := Load(s.opts, s.logger)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = ds
	s.mu.Unlock()
	return nil
}

// Paths returns the watched dataset file paths.
func (s *Store) Paths() []string {
	return []string{s.opts.EducationPath, s.opts.PollutionPath}
}
