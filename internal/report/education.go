// Package report is the recompute layer: pure functions from (datasets,
// parameters) to view models. The hosting shell (web handlers, CLI
// commands) calls these whenever an input parameter changes; the package
// itself knows nothing about events, sessions, or rendering.
package report

import (
	"github.com/datagaze-labs/datagaze/internal/dataset"
	"github.com/datagaze-labs/datagaze/internal/query"
	"github.com/datagaze-labs/datagaze/internal/stats"
)

// topDistrictCount caps the ranked district table and chart.
const topDistrictCount = 10

// histogramBins spans literacy percentages [0,100] in 20 bins.
const histogramBins = 20

// Bin is one histogram bucket over the literacy column.
type Bin struct {
	Low   float64
	High  float64
	Count int
}

// EducationSummary is the scalar-metric block for one filtered view.
// HasData is false when the filter matched no rows; renderers must show a
// fallback instead of the (NaN) average.
type EducationSummary struct {
	State       string
	HasData     bool
	AvgLiteracy float64
	Districts   int
}

// EducationView is everything the education dashboard renders.
type EducationView struct {
	Params query.EducationParams

	EducationSummary
	TopDistricts    []dataset.EducationRecord
	Histogram       []Bin
	StateComparison []stats.Group[string]

	// States lists selector options from the full (unfiltered) table.
	States []string

	Compare *EducationCompare
}

// EducationCompare holds two states' summaries side by side.
type EducationCompare struct {
	A EducationSummary
	B EducationSummary
}

// BuildEducationView recomputes the education dashboard for one
// parameter set.
func BuildEducationView(t dataset.EducationTable, p query.EducationParams) EducationView {
	filtered := query.EducationByState(t, p.State)

	view := EducationView{
		Params:           p,
		EducationSummary: summarizeEducation(p.State, filtered),
		States:           t.States(),
	}
	if !view.HasData {
		return view
	}

	view.TopDistricts = stats.TopN(filtered, topDistrictCount,
		func(r dataset.EducationRecord) float64 { return r.Literacy })
	view.Histogram = literacyHistogram(filtered)
	view.StateComparison = stats.GroupMeanRanked(filtered,
		func(r dataset.EducationRecord) string { return r.State },
		func(r dataset.EducationRecord) float64 { return r.Literacy })

	if p.CompareA != "" && p.CompareB != "" {
		view.Compare = &EducationCompare{
			A: summarizeEducation(p.CompareA, query.EducationByState(t, p.CompareA)),
			B: summarizeEducation(p.CompareB, query.EducationByState(t, p.CompareB)),
		}
	}
	return view
}

func summarizeEducation(state string, t dataset.EducationTable) EducationSummary {
	return EducationSummary{
		State:       state,
		HasData:     len(t) > 0,
		AvgLiteracy: stats.Mean(t.Literacies()),
		Districts:   len(t),
	}
}

func literacyHistogram(t dataset.EducationTable) []Bin {
	width := 100.0 / float64(histogramBins)
	bins := make([]Bin, histogramBins)
	for i := range bins {
		bins[i].Low = float64(i) * width
		bins[i].High = bins[i].Low + width
	}
	for _, r := range t {
		i := int(r.Literacy / width)
		if i >= histogramBins {
			i = histogramBins - 1 // 100% lands in the top bin
		}
		if i < 0 {
			i = 0
		}
		bins[i].Count++
	}
	return bins
}
