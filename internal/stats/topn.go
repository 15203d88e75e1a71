package stats

import (
	"math"
	"sort"
)

// TopN returns up to n rows with the largest value, descending. The sort
// is stable, so ties keep their original row order. Rows with a null
// value sort last and are trimmed before real values are.
func TopN[T any](rows []T, n int, value func(T) float64) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := value(out[i]), value(out[j])
		if math.IsNaN(a) {
			return false
		}
		if math.IsNaN(b) {
			return true
		}
		return a > b
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
