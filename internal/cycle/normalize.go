// Package cycle segments a normalized GPS point stream into haul cycles:
// start-zone entry opens a cycle, the next end-zone entry closes it.
package cycle

import (
	"sort"

	"github.com/hauldesk/haulcycle-backend-go/internal/models"
	"github.com/hauldesk/haulcycle-backend-go/internal/spatial"
)

// Normalize sorts raw samples by timestamp and derives the distance and speed
// columns in a single forward pass. The sort is stable, so samples sharing a
// timestamp keep their input order. An empty input yields an empty output.
func Normalize(raw []models.RawPoint) []models.TrackPoint {
	pts := make([]models.RawPoint, len(raw))
	copy(pts, raw)
	sort.SliceStable(pts, func(i, j int) bool {
		return pts[i].Time.Before(pts[j].Time)
	})

	out := make([]models.TrackPoint, 0, len(pts))
	cumulative := 0.0
	for i, p := range pts {
		tp := models.TrackPoint{
			Seq:       i,
			Time:      p.Time,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
		}
		if i > 0 {
			prev := pts[i-1]
			tp.DistanceFromPrev = spatial.HaversineDistance(
				prev.Latitude, prev.Longitude, p.Latitude, p.Longitude)
			tp.TimeDelta = p.Time.Sub(prev.Time).Seconds()
		}
		cumulative += tp.DistanceFromPrev
		tp.CumulativeDist = cumulative

		// Speed is an explicit 0 on a zero time delta (duplicate timestamps),
		// never NaN.
		if tp.TimeDelta > 0 {
			tp.Speed = tp.DistanceFromPrev / tp.TimeDelta
		}
		out = append(out, tp)
	}
	return out
}
