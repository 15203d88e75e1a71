// Package features provides shared test fixtures for the feature
// packages.
package features

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/datagaze-labs/datagaze/internal/dataset"
	"github.com/datagaze-labs/datagaze/internal/ui/notifier"
)

const educationCSV = `State,District,Literacy
Kerala,Kottayam,97.2
Kerala,Ernakulam,95.9
Bihar,Purnia,51.1
Bihar,Patna,70.9
Mizoram,Serchhip,97.9
`

const pollutionCSV = `City,Date,PM2.5,PM10,NO2,SO2,AQI
Delhi,2015-01-01,313.22,607.98,36.39,9.25,472
Delhi,2015-01-02,186.18,269.76,28.71,6.65,454
Ahmedabad,2015-01-01,83.13,118.13,28.57,27.64,209
Ahmedabad,2016-02-01,51.84,97.54,17.39,24.2,156
Aizawl,2015-03-01,28.19,49.21,6.93,11.85,76
`

// TestFixture bundles the dependencies the feature handlers need.
type TestFixture struct {
	Store    *dataset.Store
	Notifier *notifier.Notifier
	Logger   *slog.Logger
}

// SetupTestFixture writes small CSV datasets into a temp directory and
// loads a store over them.
func SetupTestFixture(t *testing.T) *TestFixture {
	t.Helper()

	dir := t.TempDir()
	eduPath := filepath.Join(dir, "education.csv")
	polPath := filepath.Join(dir, "pollution.csv")
	if err := os.WriteFile(eduPath, []byte(educationCSV), 0o644); err != nil {
		t.Fatalf("write education fixture: %v", err)
	}
	if err := os.WriteFile(polPath, []byte(pollutionCSV), 0o644); err != nil {
		t.Fatalf("write pollution fixture: %v", err)
	}

	logger := slog.New(slog.DiscardHandler)
	store, err := dataset.NewStore(dataset.Options{
		EducationPath: eduPath,
		PollutionPath: polPath,
	}, logger)
	if err != nil {
		t.Fatalf("load fixture datasets: %v", err)
	}

	return &TestFixture{
		Store:    store,
		Notifier: notifier.New(),
		Logger:   logger,
	}
}
