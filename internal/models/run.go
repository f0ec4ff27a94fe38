package models

// Run status constants.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// AnalysisRun records one segmentation pass over a track file, together with
// the zone configuration it used. Points and cycles reference it by RunID.
type AnalysisRun struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	SourceFile string `json:"source_file" db:"source_file"`

	StartLat    float64 `json:"start_lat" db:"start_lat"`
	StartLon    float64 `json:"start_lon" db:"start_lon"`
	StartRadius float64 `json:"start_radius_m" db:"start_radius_m"`
	EndLat      float64 `json:"end_lat" db:"end_lat"`
	EndLon      float64 `json:"end_lon" db:"end_lon"`
	EndRadius   float64 `json:"end_radius_m" db:"end_radius_m"`

	Status     string  `json:"status" db:"status"`
	PointCount int     `json:"point_count" db:"point_count"`
	CycleCount int     `json:"cycle_count" db:"cycle_count"`
	Error      *string `json:"error,omitempty" db:"error_message"`

	CreatedAt string `json:"created_at" db:"created_at"`
}

// RunsResponse lists analysis runs, newest first.
type RunsResponse struct {
	Data  []AnalysisRun `json:"data"`
	Count int           `json:"count"`
}
