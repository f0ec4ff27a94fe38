package cycle

import (
	"github.com/hauldesk/haulcycle-backend-go/internal/models"
)

// Summarize reduces a labeled sequence to one record per cycle id, ordered by
// ascending id. Start and end times are the timestamps of the cycle's first
// and last labeled points; distance is the cumulative-distance difference
// across them.
//
// openID names a trailing cycle that never reached the end zone (0 for none),
// as reported by Detector.Label. That cycle is still summarized "as of the end
// of data", with Complete set to false so callers can drop it if they want.
func Summarize(points []models.TrackPoint, openID int) []models.CycleSummary {
	// Ids are assigned in increasing order during the scan, so one ordered
	// pass groups the points without a map.
	var summaries []models.CycleSummary
	firstCumulative := 0.0

	for _, p := range points {
		if p.CycleID == nil {
			continue
		}
		id := *p.CycleID
		if n := len(summaries); n == 0 || summaries[n-1].CycleID != id {
			summaries = append(summaries, models.CycleSummary{
				CycleID:   id,
				StartTime: p.Time,
				Complete:  id != openID,
			})
			firstCumulative = p.CumulativeDist
		}
		last := &summaries[len(summaries)-1]
		last.EndTime = p.Time
		last.DurationMin = p.Time.Sub(last.StartTime).Minutes()
		last.DistanceM = p.CumulativeDist - firstCumulative
		last.PointCount++
	}
	return summaries
}
