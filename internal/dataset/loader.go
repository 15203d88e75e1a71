package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// Options configures where the datasets live and how strict cleaning is.
type Options struct {
	EducationPath string
	PollutionPath string

	// DropBadDates switches date cleaning from strict (a bad date aborts
	// the load) to tolerant (the row is dropped and counted).
	DropBadDates bool
}

// Load reads and cleans both datasets. Any missing file or malformed row
// is fatal: the error is returned and nothing is retried.
func Load(opts Options, logger *slog.Logger) (*Datasets, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	eduRaw, err := readCSV(opts.EducationPath)
	if err != nil {
		return nil, fmt.Errorf("load education dataset: %w", err)
	}
	polRaw, err := readCSV(opts.PollutionPath)
	if err != nil {
		return nil, fmt.Errorf("load pollution dataset: %w", err)
	}

	edu, eduReport, err := cleanEducation(eduRaw)
	if err != nil {
		return nil, fmt.Errorf("clean education dataset: %w", err)
	}
	pol, polReport, err := cleanPollution(polRaw, opts.DropBadDates)
	if err != nil {
		return nil, fmt.Errorf("clean pollution dataset: %w", err)
	}

	logger.Info("datasets loaded",
		"education_rows", len(edu),
		"education_dropped", eduReport.DroppedNullKey,
		"pollution_rows", len(pol),
		"pollution_dropped", polReport.DroppedNullKey,
		"pollution_bad_dates", polReport.DroppedBadDates,
	)

	return &Datasets{
		Education:       edu,
		Pollution:       pol,
		EducationReport: eduReport,
		PollutionReport: polReport,
		LoadedAt:        time.Now(),
	}, nil
}

// rawTable is a CSV file split into header and data rows, with the source
// line number kept per row for error reporting.
type rawTable struct {
	path   string
	header []string
	rows   [][]string
	lines  []int
}

func readCSV(path string) (*rawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.ReuseRecord = false

	header, err := r.Read()
	if err == io.EOF {
		return nil, &ParseError{File: path, Line: 1, Reason: "file is empty"}
	}
	if err != nil {
		return nil, wrapCSVError(path, err)
	}

	t := &rawTable{path: path, header: header}
	line := 1
	for {
		line++
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapCSVError(path, err)
		}
		t.rows = append(t.rows, rec)
		t.lines = append(t.lines, line)
	}
	return t, nil
}

func wrapCSVError(path string, err error) error {
	var ce *csv.ParseError
	if errors.As(err, &ce) {
		return &ParseError{File: path, Line: ce.Line, Reason: ce.Err.Error()}
	}
	return fmt.Errorf("read %s: %w", path, err)
}
