package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datagaze-labs/datagaze/internal/dataset"
)

func day(d int) time.Time {
	return time.Date(2020, 1, d, 0, 0, 0, 0, time.UTC)
}

func samplePollution() dataset.PollutionTable {
	return dataset.PollutionTable{
		{City: "Delhi", Date: day(1), AQI: 400},
		{City: "Delhi", Date: day(2), AQI: 350},
		{City: "Mumbai", Date: day(1), AQI: 150},
		{City: "Mumbai", Date: day(3), AQI: 160},
		{City: "Shillong", Date: day(5), AQI: 40},
	}
}

func sampleEducation() dataset.EducationTable {
	return dataset.EducationTable{
		{State: "Kerala", District: "Kottayam", Literacy: 97.2},
		{State: "Bihar", District: "Purnia", Literacy: 51.1},
		{State: "Kerala", District: "Idukki", Literacy: 92.0},
	}
}

func TestSentinelIsNoOp(t *testing.T) {
	edu := sampleEducation()
	pol := samplePollution()

	assert.Equal(t, edu, EducationByState(edu, All))
	assert.Equal(t, pol, PollutionByCity(pol, All))
}

func TestSentinelIdempotent(t *testing.T) {
	// Filtering then re-filtering by All on the same field is a no-op.
	edu := EducationByState(sampleEducation(), "Kerala")
	assert.Equal(t, edu, EducationByState(edu, All))
}

func TestCategoricalFilter(t *testing.T) {
	got := EducationByState(sampleEducation(), "Kerala")
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "Kerala", r.State)
	}
}

func TestUnmatchedSelectorYieldsEmpty(t *testing.T) {
	got := PollutionByCity(samplePollution(), "Atlantis")
	assert.Empty(t, got)
	// Empty is a valid state, not an error; downstream aggregation of it
	// is the caller's UndefinedAggregate case.
}

func TestDateRangeInclusive(t *testing.T) {
	from, to := day(1), day(2)
	got := PollutionByDateRange(samplePollution(), &from, &to)
	require.Len(t, got, 3)
	for _, r := range got {
		assert.False(t, r.Date.Before(from))
		assert.False(t, r.Date.After(to))
	}
}

func TestDateRangeSingleEndpointIsNoOp(t *testing.T) {
	pol := samplePollution()
	from := day(2)

	assert.Equal(t, pol, PollutionByDateRange(pol, &from, nil))
	assert.Equal(t, pol, PollutionByDateRange(pol, nil, &from))
	assert.Equal(t, pol, PollutionByDateRange(pol, nil, nil))
}

func TestDateRangeCollapsedToMinimum(t *testing.T) {
	// start = end = min(Date) returns exactly the rows at that minimum.
	pol := samplePollution()
	min, _, ok := pol.DateBounds()
	require.True(t, ok)

	got := PollutionByDateRange(pol, &min, &min)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, min, r.Date)
	}
}

func TestFiltersCommute(t *testing.T) {
	pol := samplePollution()
	from, to := day(1), day(2)

	cityFirst := PollutionByDateRange(PollutionByCity(pol, "Delhi"), &from, &to)
	rangeFirst := PollutionByCity(PollutionByDateRange(pol, &from, &to), "Delhi")
	assert.Equal(t, cityFirst, rangeFirst)
}

func TestFiltersDoNotMutateInput(t *testing.T) {
	pol := samplePollution()
	want := samplePollution()

	_ = PollutionByCity(pol, "Delhi")
	from, to := day(1), day(2)
	_ = PollutionByDateRange(pol, &from, &to)
	assert.Equal(t, want, pol)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, All, NewEducationParams().State)

	p := NewPollutionParams()
	assert.Equal(t, All, p.City)
	assert.Nil(t, p.From)
	assert.Nil(t, p.To)
}
