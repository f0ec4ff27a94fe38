package models

import "time"

// RawPoint is a single GPS sample as it comes out of the track loader.
// Points are not guaranteed to arrive in timestamp order.
type RawPoint struct {
	Time      time.Time `json:"time"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// TrackPoint is a RawPoint annotated with distance and speed columns by the
// normalizer. Seq is the position in the normalized (timestamp-sorted) order.
type TrackPoint struct {
	Seq              int       `json:"seq" db:"seq"`
	Time             time.Time `json:"time" db:"ts"`
	Latitude         float64   `json:"latitude" db:"latitude"`
	Longitude        float64   `json:"longitude" db:"longitude"`
	DistanceFromPrev float64   `json:"distance_from_prev_m" db:"distance_from_prev_m"`
	CumulativeDist   float64   `json:"cumulative_distance_m" db:"cumulative_distance_m"`
	TimeDelta        float64   `json:"time_delta_s" db:"time_delta_s"`
	Speed            float64   `json:"speed_m_s" db:"speed_m_s"`

	// CycleID is nil until the detector has labeled the point, and stays nil
	// for points that belong to no cycle.
	CycleID *int `json:"cycle_id" db:"cycle_id"`
}

// SpeedKmh returns the point speed in km/h for presentation.
func (p TrackPoint) SpeedKmh() float64 {
	return p.Speed * 3.6
}

// TrackPointFilter represents filter parameters for querying labeled points.
type TrackPointFilter struct {
	CycleID   int     `form:"cycleId"`
	StartTime int64   `form:"startTime"` // Unix timestamp
	EndTime   int64   `form:"endTime"`   // Unix timestamp
	MinSpeed  float64 `form:"minSpeed"`
	MaxSpeed  float64 `form:"maxSpeed"`
	Page      int     `form:"page"`
	PageSize  int     `form:"pageSize"`
}

// TrackPointsResponse represents a paginated response of labeled points.
type TrackPointsResponse struct {
	Data       []TrackPoint `json:"data"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalPages int          `json:"totalPages"`
}
