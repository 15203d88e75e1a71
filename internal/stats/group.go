package stats

import (
	"cmp"
	"math"
	"sort"
)

// Group is one grouped-mean output row: the mean of the value column over
// all rows sharing Key, plus how many non-null values contributed.
type Group[K cmp.Ordered] struct {
	Key   K
	Mean  float64
	Count int
}

// groupMeans computes one Group per distinct key, in no particular order.
// Null values do not contribute to mean or count, but a key whose values
// are all null still appears (Mean NaN, Count 0), mirroring how a
// grouped mean keeps every group present in the input.
func groupMeans[T any, K cmp.Ordered](rows []T, key func(T) K, value func(T) float64) []Group[K] {
	type acc struct {
		sum   float64
		count int
	}
	sums := make(map[K]*acc)
	var order []K
	for _, r := range rows {
		k := key(r)
		a, ok := sums[k]
		if !ok {
			a = &acc{}
			sums[k] = a
			order = append(order, k)
		}
		v := value(r)
		if !math.IsNaN(v) {
			a.sum += v
			a.count++
		}
	}

	out := make([]Group[K], 0, len(order))
	for _, k := range order {
		a := sums[k]
		mean := math.NaN()
		if a.count > 0 {
			mean = a.sum / float64(a.count)
		}
		out = append(out, Group[K]{Key: k, Mean: mean, Count: a.count})
	}
	return out
}

// GroupMeanRanked groups rows by key and returns the per-group means in
// descending mean order, ties broken by ascending key. This is the
// ranking form used for "most polluted cities" style views.
func GroupMeanRanked[T any, K cmp.Ordered](rows []T, key func(T) K, value func(T) float64) []Group[K] {
	out := groupMeans(rows, key, value)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Mean, out[j].Mean
		if math.IsNaN(a) {
			return false
		}
		if math.IsNaN(b) {
			return true
		}
		if a != b {
			return a > b
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// GroupMeanChrono groups rows by key and returns the per-group means in
// ascending key order. This is the time-series form used for trend views,
// where the key is a date or a derived period.
func GroupMeanChrono[T any, K cmp.Ordered](rows []T, key func(T) K, value func(T) float64) []Group[K] {
	out := groupMeans(rows, key, value)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
