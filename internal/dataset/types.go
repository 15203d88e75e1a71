// Package dataset loads and cleans the two static tables served by the
// dashboards: district literacy rates and city-level air quality readings.
package dataset

import (
	"math"
	"slices"
	"time"
)

// EducationRecord is one district row from the literacy dataset.
// Literacy is a percentage in [0,100] and is never null after cleaning.
type EducationRecord struct {
	State    string
	District string
	Literacy float64
}

// PollutionRecord is one city/day row from the air quality dataset.
// Pollutant readings use NaN for missing values; AQI is never NaN after
// cleaning.
type PollutionRecord struct {
	City string
	Date time.Time
	PM25 float64
	PM10 float64
	NO2  float64
	SO2  float64
	AQI  float64
}

// EducationTable is an immutable slice of cleaned education records.
// Filtered views are fresh slices over the same backing records.
type EducationTable []EducationRecord

// PollutionTable is an immutable slice of cleaned pollution records.
type PollutionTable []PollutionRecord

// States returns the distinct state names, sorted ascending.
func (t EducationTable) States() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range t {
		if _, ok := seen[r.State]; !ok {
			seen[r.State] = struct{}{}
			out = append(out, r.State)
		}
	}
	slices.Sort(out)
	return out
}

// Literacies returns the literacy column as a slice.
func (t EducationTable) Literacies() []float64 {
	out := make([]float64, len(t))
	for i, r := range t {
		out[i] = r.Literacy
	}
	return out
}

// Cities returns the distinct city names, sorted ascending.
func (t PollutionTable) Cities() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range t {
		if _, ok := seen[r.City]; !ok {
			seen[r.City] = struct{}{}
			out = append(out, r.City)
		}
	}
	slices.Sort(out)
	return out
}

// DateBounds returns the minimum and maximum dates in the table.
// ok is false when the table is empty.
func (t PollutionTable) DateBounds() (min, max time.Time, ok bool) {
	if len(t) == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max = t[0].Date, t[0].Date
	for _, r := range t[1:] {
		if r.Date.Before(min) {
			min = r.Date
		}
		if r.Date.After(max) {
			max = r.Date
		}
	}
	return min, max, true
}

// Column returns the named pollutant column as a slice. Missing readings
// come through as NaN. Unknown names return nil.
func (t PollutionTable) Column(name string) []float64 {
	pick := func(f func(PollutionRecord) float64) []float64 {
		out := make([]float64, len(t))
		for i, r := range t {
			out[i] = f(r)
		}
		return out
	}
	switch name {
	case "PM2.5":
		return pick(func(r PollutionRecord) float64 { return r.PM25 })
	case "PM10":
		return pick(func(r PollutionRecord) float64 { return r.PM10 })
	case "NO2":
		return pick(func(r PollutionRecord) float64 { return r.NO2 })
	case "SO2":
		return pick(func(r PollutionRecord) float64 { return r.SO2 })
	case "AQI":
		return pick(func(r PollutionRecord) float64 { return r.AQI })
	}
	return nil
}

// PollutantColumns is the fixed set of numeric columns that survive
// cleaning, in presentation order.
var PollutantColumns = []string{"PM2.5", "PM10", "NO2", "SO2", "AQI"}

// IsNull reports whether a numeric cell is missing.
func IsNull(v float64) bool {
	return math.IsNaN(v)
}

// CleanReport counts what cleaning did to a table, for logging and the
// check command.
type CleanReport struct {
	RowsRead        int
	RowsKept        int
	DroppedNullKey  int // null Literacy or null AQI, depending on table
	DroppedBadDates int // only in tolerant date mode
}

// Datasets is the pair of cleaned tables plus their cleaning reports.
// It is immutable once built; concurrent readers need no locking.
type Datasets struct {
	Education       EducationTable
	Pollution       PollutionTable
	EducationReport CleanReport
	PollutionReport CleanReport
	LoadedAt        time.Time
}
