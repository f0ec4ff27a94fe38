package models

import "time"

// CycleSummary is one aggregate record per detected haul cycle.
type CycleSummary struct {
	RunID       int64     `json:"run_id,omitempty" db:"run_id"`
	CycleID     int       `json:"cycle_id" db:"cycle_id"`
	StartTime   time.Time `json:"start_time" db:"start_time"`
	EndTime     time.Time `json:"end_time" db:"end_time"`
	DurationMin float64   `json:"duration_min" db:"duration_min"`
	DistanceM   float64   `json:"distance_m" db:"distance_m"`
	PointCount  int       `json:"point_count" db:"point_count"`

	// Complete is false for a trailing cycle that never reached the end zone;
	// its EndTime is then simply the last labeled point in the data.
	Complete bool `json:"complete" db:"complete"`
}

// CyclesResponse wraps the cycle table for an analysis run.
type CyclesResponse struct {
	RunID  int64          `json:"run_id"`
	Cycles []CycleSummary `json:"cycles"`
	Count  int            `json:"count"`
}
