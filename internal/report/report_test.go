package report

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datagaze-labs/datagaze/internal/dataset"
	"github.com/datagaze-labs/datagaze/internal/query"
	"github.com/datagaze-labs/datagaze/internal/stats"
)

func educationFixture() dataset.EducationTable {
	return dataset.EducationTable{
		{State: "Kerala", District: "Kottayam", Literacy: 97.2},
		{State: "Kerala", District: "Idukki", Literacy: 92.0},
		{State: "Bihar", District: "Purnia", Literacy: 51.1},
		{State: "Bihar", District: "Katihar", Literacy: 52.3},
	}
}

func pollutionFixture() dataset.PollutionTable {
	day := func(m, d int) time.Time { return time.Date(2020, time.Month(m), d, 0, 0, 0, 0, time.UTC) }
	return dataset.PollutionTable{
		{City: "Delhi", Date: day(1, 1), PM25: 210.5, PM10: 320.0, NO2: 60.2, SO2: 14.1, AQI: 402},
		{City: "Delhi", Date: day(1, 2), PM25: 180.1, PM10: 290.7, NO2: 55.0, SO2: math.NaN(), AQI: 356},
		{City: "Delhi", Date: day(2, 1), PM25: 90.4, PM10: 150.2, NO2: 30.8, SO2: 8.5, AQI: 160},
		{City: "Mumbai", Date: day(1, 1), PM25: 80.3, PM10: 140.9, NO2: 42.1, SO2: 9.9, AQI: 155},
		{City: "Shillong", Date: day(2, 5), PM25: 20.1, PM10: 35.6, NO2: 8.2, SO2: 2.1, AQI: 42},
	}
}

func TestBuildEducationViewAll(t *testing.T) {
	view := BuildEducationView(educationFixture(), query.NewEducationParams())

	require.True(t, view.HasData)
	assert.Equal(t, 4, view.Districts)
	assert.InDelta(t, (97.2+92.0+51.1+52.3)/4, view.AvgLiteracy, 1e-9)
	assert.Equal(t, []string{"Bihar", "Kerala"}, view.States)

	require.NotEmpty(t, view.TopDistricts)
	assert.Equal(t, "Kottayam", view.TopDistricts[0].District)

	require.Len(t, view.StateComparison, 2)
	assert.Equal(t, "Kerala", view.StateComparison[0].Key)
	assert.Equal(t, 2, view.StateComparison[0].Count)
}

func TestBuildEducationViewFiltered(t *testing.T) {
	p := query.NewEducationParams()
	p.State = "Bihar"
	view := BuildEducationView(educationFixture(), p)

	require.True(t, view.HasData)
	assert.Equal(t, 2, view.Districts)
	assert.InDelta(t, 51.7, view.AvgLiteracy, 1e-9)
	require.Len(t, view.StateComparison, 1)
}

func TestBuildEducationViewWorkedExample(t *testing.T) {
	// Post-clean table for state X holding only District B at 72.5.
	table := dataset.EducationTable{{State: "X", District: "B", Literacy: 72.5}}
	p := query.NewEducationParams()
	p.State = "X"

	view := BuildEducationView(table, p)
	require.True(t, view.HasData)
	assert.Equal(t, 1, view.Districts)
	assert.Equal(t, "72.5", Metric(view.AvgLiteracy))
}

func TestBuildEducationViewEmpty(t *testing.T) {
	p := query.NewEducationParams()
	p.State = "Atlantis"
	view := BuildEducationView(educationFixture(), p)

	assert.False(t, view.HasData)
	assert.Empty(t, view.TopDistricts)
	// The undefined average must never render as a number.
	assert.Equal(t, "–", Metric(view.AvgLiteracy))
}

func TestEducationHistogram(t *testing.T) {
	view := BuildEducationView(educationFixture(), query.NewEducationParams())

	require.Len(t, view.Histogram, 20)
	total := 0
	for _, b := range view.Histogram {
		total += b.Count
	}
	assert.Equal(t, 4, total)
	// 97.2 falls in the [95,100) bin.
	assert.Equal(t, 1, view.Histogram[19].Count)
}

func TestEducationCompare(t *testing.T) {
	p := query.NewEducationParams()
	p.CompareA, p.CompareB = "Kerala", "Bihar"
	view := BuildEducationView(educationFixture(), p)

	require.NotNil(t, view.Compare)
	assert.InDelta(t, 94.6, view.Compare.A.AvgLiteracy, 1e-9)
	assert.Equal(t, 2, view.Compare.B.Districts)
}

func TestBuildPollutionViewAll(t *testing.T) {
	view := BuildPollutionView(pollutionFixture(), query.NewPollutionParams())

	require.True(t, view.HasData)
	assert.InDelta(t, (402.0+356+160+155+42)/5, view.AvgAQI, 1e-9)
	assert.InDelta(t, 210.5, view.MaxPM25, 1e-9)
	assert.InDelta(t, 320.0, view.MaxPM10, 1e-9)
	assert.Equal(t, "Unhealthy", view.AQIBand)

	require.Len(t, view.TopCities, 3)
	assert.Equal(t, "Delhi", view.TopCities[0].Key)

	require.True(t, view.HasBounds)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), view.MinDate)
}

func TestPollutionTopNWorkedExample(t *testing.T) {
	// AQI values [50,300,120] for one city; topN(AQI,2) returns 300 then 120.
	day := func(d int) time.Time { return time.Date(2020, 1, d, 0, 0, 0, 0, time.UTC) }
	table := dataset.PollutionTable{
		{City: "Y", Date: day(1), AQI: 50},
		{City: "Y", Date: day(2), AQI: 300},
		{City: "Y", Date: day(3), AQI: 120},
	}

	top := stats.TopN(table, 2, func(r dataset.PollutionRecord) float64 { return r.AQI })
	require.Len(t, top, 2)
	assert.InDelta(t, 300, top[0].AQI, 1e-9)
	assert.InDelta(t, 120, top[1].AQI, 1e-9)
}

func TestPollutionTrendMonthly(t *testing.T) {
	view := BuildPollutionView(pollutionFixture(), query.NewPollutionParams())

	require.Len(t, view.Trend, 2)
	assert.Equal(t, "January", view.Trend[0].Label)
	assert.InDelta(t, (402.0+356+155)/3, view.Trend[0].Mean, 1e-9)
	assert.Equal(t, "February", view.Trend[1].Label)
}

func TestPollutionTrendYearly(t *testing.T) {
	p := query.NewPollutionParams()
	p.Granularity = stats.Yearly
	view := BuildPollutionView(pollutionFixture(), p)

	require.Len(t, view.Trend, 1)
	assert.Equal(t, "2020", view.Trend[0].Label)
	assert.Equal(t, 5, view.Trend[0].Count)
}

func TestBuildPollutionViewFiltered(t *testing.T) {
	p := query.NewPollutionParams()
	p.City = "Delhi"
	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC)
	p.From, p.To = &from, &to

	view := BuildPollutionView(pollutionFixture(), p)
	require.True(t, view.HasData)
	assert.InDelta(t, 379, view.AvgAQI, 1e-9)
	require.Len(t, view.TopCities, 1)
	assert.Equal(t, "Delhi", view.TopCities[0].Key)
}

func TestBuildPollutionViewEmpty(t *testing.T) {
	p := query.NewPollutionParams()
	p.City = "Atlantis"
	view := BuildPollutionView(pollutionFixture(), p)

	assert.False(t, view.HasData)
	assert.Empty(t, view.Trend)
	assert.Equal(t, "", view.AQIBand)
	assert.Equal(t, "–", Metric(view.AvgAQI))
	// Selector options still come from the full table.
	assert.Equal(t, []string{"Delhi", "Mumbai", "Shillong"}, view.Cities)
}

func TestPollutionCorrelation(t *testing.T) {
	view := BuildPollutionView(pollutionFixture(), query.NewPollutionParams())

	m := view.Correlation
	require.Equal(t, dataset.PollutantColumns, m.Labels)
	for i := range m.Labels {
		assert.InDelta(t, 1.0, m.At(i, i), 1e-9)
		for j := range m.Labels {
			assert.InDelta(t, m.At(i, j), m.At(j, i), 1e-12)
		}
	}
}

func TestPollutionCompare(t *testing.T) {
	p := query.NewPollutionParams()
	p.CompareA, p.CompareB = "Delhi", "Mumbai"
	view := BuildPollutionView(pollutionFixture(), p)

	require.NotNil(t, view.Compare)
	assert.Len(t, view.Compare.TrendA, 2)
	assert.Len(t, view.Compare.TrendB, 1)
}

func TestAQIBand(t *testing.T) {
	assert.Equal(t, "Good", AQIBand(42))
	assert.Equal(t, "Moderate", AQIBand(100))
	assert.Equal(t, "Unhealthy for Sensitive Groups", AQIBand(120))
	assert.Equal(t, "Unhealthy", AQIBand(300))
	assert.Equal(t, "", AQIBand(math.NaN()))
}

func TestMetricFormatting(t *testing.T) {
	assert.Equal(t, "72.5", Metric(72.5))
	assert.Equal(t, "156.7", Metric(156.66666))
	assert.Equal(t, "12.3 µg/m³", MetricUnit(12.34, " µg/m³"))
	assert.Equal(t, "–", MetricUnit(math.NaN(), " µg/m³"))
}
