// Package stats provides the aggregation primitives behind the dashboards:
// NaN-aware reductions, ranked and chronological grouped means, top-N
// selection, and pairwise Pearson correlation.
//
// Reductions over empty input return NaN. That is a valid state, not an
// error; callers render an explicit "no data" fallback instead of the NaN.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// valid filters NaN (missing) values out of a column.
func valid(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}

// Mean returns the arithmetic mean of the non-null values, or NaN when
// there are none.
func Mean(xs []float64) float64 {
	v := valid(xs)
	if len(v) == 0 {
		return math.NaN()
	}
	return stat.Mean(v, nil)
}

// Max returns the largest non-null value, or NaN when there are none.
func Max(xs []float64) float64 {
	v := valid(xs)
	if len(v) == 0 {
		return math.NaN()
	}
	return floats.Max(v)
}

// Min returns the smallest non-null value, or NaN when there are none.
func Min(xs []float64) float64 {
	v := valid(xs)
	if len(v) == 0 {
		return math.NaN()
	}
	return floats.Min(v)
}

// Count returns the number of non-null values.
func Count(xs []float64) int {
	return len(valid(xs))
}
