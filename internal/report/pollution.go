package report

import (
	"time"

	"github.com/datagaze-labs/datagaze/internal/dataset"
	"github.com/datagaze-labs/datagaze/internal/query"
	"github.com/datagaze-labs/datagaze/internal/stats"
)

// topCityCount caps the most-polluted-cities ranking.
const topCityCount = 10

// TrendPoint is one time bucket of the AQI trend: the bucket's display
// label, the mean AQI, and how many readings contributed.
type TrendPoint struct {
	Key   int
	Label string
	Mean  float64
	Count int
}

// PollutionSummary is the scalar-metric block for one filtered view.
type PollutionSummary struct {
	City    string
	HasData bool
	AvgAQI  float64
	MaxPM25 float64
	MaxPM10 float64

	// AQIBand classifies AvgAQI for caption text (Good, Moderate, ...).
	AQIBand string
}

// PollutionView is everything the air-quality dashboard renders.
type PollutionView struct {
	Params query.PollutionParams

	PollutionSummary
	Trend       []TrendPoint
	TopCities   []stats.Group[string]
	Correlation stats.Matrix

	// Selector options and date bounds from the full table.
	Cities    []string
	MinDate   time.Time
	MaxDate   time.Time
	HasBounds bool

	Compare *PollutionCompare
}

// PollutionCompare overlays two cities' AQI trends, bucketed the same way
// as the main trend.
type PollutionCompare struct {
	A      string
	B      string
	TrendA []TrendPoint
	TrendB []TrendPoint
}

// BuildPollutionView recomputes the air-quality dashboard for one
// parameter set.
func BuildPollutionView(t dataset.PollutionTable, p query.PollutionParams) PollutionView {
	filtered := query.PollutionByCity(t, p.City)
	filtered = query.PollutionByDateRange(filtered, p.From, p.To)

	view := PollutionView{
		Params:           p,
		PollutionSummary: summarizePollution(p.City, filtered),
		Cities:           t.Cities(),
	}
	view.MinDate, view.MaxDate, view.HasBounds = t.DateBounds()
	if !view.HasData {
		return view
	}

	view.Trend = aqiTrend(filtered, p.Granularity)
	view.TopCities = stats.GroupMeanRanked(filtered,
		func(r dataset.PollutionRecord) string { return r.City },
		func(r dataset.PollutionRecord) float64 { return r.AQI })
	if len(view.TopCities) > topCityCount {
		view.TopCities = view.TopCities[:topCityCount]
	}
	view.Correlation = pollutantCorrelation(filtered)

	if p.CompareA != "" && p.CompareB != "" {
		ranged := query.PollutionByDateRange(t, p.From, p.To)
		view.Compare = &PollutionCompare{
			A:      p.CompareA,
			B:      p.CompareB,
			TrendA: aqiTrend(query.PollutionByCity(ranged, p.CompareA), p.Granularity),
			TrendB: aqiTrend(query.PollutionByCity(ranged, p.CompareB), p.Granularity),
		}
	}
	return view
}

func summarizePollution(city string, t dataset.PollutionTable) PollutionSummary {
	avg := stats.Mean(t.Column("AQI"))
	return PollutionSummary{
		City:    city,
		HasData: len(t) > 0,
		AvgAQI:  avg,
		MaxPM25: stats.Max(t.Column("PM2.5")),
		MaxPM10: stats.Max(t.Column("PM10")),
		AQIBand: AQIBand(avg),
	}
}

// aqiTrend buckets the filtered rows by derived period and returns the
// per-bucket mean AQI in chronological order.
func aqiTrend(t dataset.PollutionTable, g stats.Granularity) []TrendPoint {
	groups := stats.GroupMeanChrono(t,
		func(r dataset.PollutionRecord) int { return stats.PeriodKey(r.Date, g) },
		func(r dataset.PollutionRecord) float64 { return r.AQI })

	out := make([]TrendPoint, len(groups))
	for i, grp := range groups {
		out[i] = TrendPoint{
			Key:   grp.Key,
			Label: stats.PeriodLabel(grp.Key, g),
			Mean:  grp.Mean,
			Count: grp.Count,
		}
	}
	return out
}

func pollutantCorrelation(t dataset.PollutionTable) stats.Matrix {
	columns := make([][]float64, len(dataset.PollutantColumns))
	for i, name := range dataset.PollutantColumns {
		columns[i] = t.Column(name)
	}
	return stats.CorrelationMatrix(dataset.PollutantColumns, columns)
}

// AQIBand classifies an average AQI into the caption bands shown next to
// the metric. NaN (no data) maps to an empty band.
func AQIBand(aqi float64) string {
	switch {
	case dataset.IsNull(aqi):
		return ""
	case aqi <= 50:
		return "Good"
	case aqi <= 100:
		return "Moderate"
	case aqi <= 150:
		return "Unhealthy for Sensitive Groups"
	default:
		return "Unhealthy"
	}
}
