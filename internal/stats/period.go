package stats

import (
	"strconv"
	"time"
)

// Granularity is the time-bucketing unit for trend aggregation.
type Granularity string

const (
	// Monthly buckets dates by calendar month name, January through
	// December, aggregating across years.
	Monthly Granularity = "Monthly"
	// Yearly buckets dates by calendar year.
	Yearly Granularity = "Yearly"
)

// ParseGranularity maps user input to a Granularity, defaulting to
// Monthly for anything unrecognized.
func ParseGranularity(s string) Granularity {
	if Granularity(s) == Yearly {
		return Yearly
	}
	return Monthly
}

// PeriodKey maps a date to a sortable bucket key for the granularity:
// the month number (1-12) for Monthly, the calendar year for Yearly.
// Chronological grouping sorts on this key.
func PeriodKey(t time.Time, g Granularity) int {
	if g == Yearly {
		return t.Year()
	}
	return int(t.Month())
}

// PeriodLabel renders a bucket key for display: the English month name
// for Monthly, the year digits for Yearly.
func PeriodLabel(key int, g Granularity) string {
	if g == Yearly {
		return strconv.Itoa(key)
	}
	return time.Month(key).String()
}

// PeriodOf maps a date straight to its display label at the given
// granularity.
func PeriodOf(t time.Time, g Granularity) string {
	return PeriodLabel(PeriodKey(t, g), g)
}
