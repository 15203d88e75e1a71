package query

import (
	"time"

	"github.com/datagaze-labs/datagaze/internal/dataset"
)

// Filters never mutate their input; they return fresh slices over the
// same backing records. They are independent and commute, so the order
// the handlers apply them in is irrelevant.

// EducationByState keeps rows matching the selected state. The sentinel
// All returns the input unchanged; a selector absent from the data yields
// an empty table, which is a valid state rather than an error.
func EducationByState(t dataset.EducationTable, selected string) dataset.EducationTable {
	if selected == All {
		return t
	}
	out := make(dataset.EducationTable, 0, len(t))
	for _, r := range t {
		if r.State == selected {
			out = append(out, r)
		}
	}
	return out
}

// PollutionByCity keeps rows matching the selected city, with the same
// sentinel and empty-result semantics as EducationByState.
func PollutionByCity(t dataset.PollutionTable, selected string) dataset.PollutionTable {
	if selected == All {
		return t
	}
	out := make(dataset.PollutionTable, 0, len(t))
	for _, r := range t {
		if r.City == selected {
			out = append(out, r)
		}
	}
	return out
}

// PollutionByDateRange keeps rows with Date in [from, to], inclusive on
// both ends. Until both endpoints are present the filter is a no-op; a
// half-picked range is tolerated partial input, not an error.
func PollutionByDateRange(t dataset.PollutionTable, from, to *time.Time) dataset.PollutionTable {
	if from == nil || to == nil {
		return t
	}
	out := make(dataset.PollutionTable, 0, len(t))
	for _, r := range t {
		if r.Date.Before(*from) || r.Date.After(*to) {
			continue
		}
		out = append(out, r)
	}
	return out
}
