package report

import (
	"fmt"
	"math"
)

// Metric formats a scalar metric to one decimal place. Undefined
// aggregates (NaN) render as an em-dash placeholder so a "nan" never
// reaches the user.
func Metric(v float64) string {
	if math.IsNaN(v) {
		return "–"
	}
	return fmt.Sprintf("%.1f", v)
}

// MetricUnit formats a metric with a trailing unit, keeping the
// placeholder bare when the value is undefined.
func MetricUnit(v float64, unit string) string {
	if math.IsNaN(v) {
		return "–"
	}
	return fmt.Sprintf("%.1f%s", v, unit)
}
