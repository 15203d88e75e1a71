// Package query defines the immutable request parameters a dashboard
// interaction carries, and the pure filters that apply them. There is no
// hidden session state: every recomputation receives its full parameter
// set explicitly.
package query

import (
	"time"

	"github.com/datagaze-labs/datagaze/internal/stats"
)

// All is the sentinel selector value meaning "no filter applied" for a
// categorical dimension.
const All = "All"

// EducationParams carries everything the education dashboard needs to
// recompute. The zero-ish defaults come from NewEducationParams.
type EducationParams struct {
	State string

	// CompareA/CompareB select two states for side-by-side comparison.
	// Both empty means comparison is off.
	CompareA string
	CompareB string
}

// NewEducationParams returns the default parameter set: no filters.
func NewEducationParams() EducationParams {
	return EducationParams{State: All}
}

// PollutionParams carries everything the air-quality dashboard needs to
// recompute.
type PollutionParams struct {
	City string

	// From/To bound the inclusive date range. The range filter only
	// engages once both endpoints are set.
	From *time.Time
	To   *time.Time

	Granularity stats.Granularity

	// CompareA/CompareB select two cities for trend overlay.
	CompareA string
	CompareB string
}

// NewPollutionParams returns the default parameter set: no filters,
// monthly trend buckets.
func NewPollutionParams() PollutionParams {
	return PollutionParams{City: All, Granularity: stats.Monthly}
}
