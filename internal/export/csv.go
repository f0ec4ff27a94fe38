// Package export serializes labeled points and cycle summaries to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/hauldesk/haulcycle-backend-go/internal/models"
)

// WritePointsCSV writes the labeled point table, one row per point in
// normalized order. An empty sequence produces a header-only file.
func WritePointsCSV(w io.Writer, points []models.TrackPoint) error {
	cw := csv.NewWriter(w)

	header := []string{
		"seq", "time", "latitude", "longitude",
		"distance_from_prev_m", "cumulative_distance_m",
		"time_delta_s", "speed_m_s", "speed_km_h", "cycle_id",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, p := range points {
		cycleID := ""
		if p.CycleID != nil {
			cycleID = strconv.Itoa(*p.CycleID)
		}
		row := []string{
			strconv.Itoa(p.Seq),
			p.Time.UTC().Format(time.RFC3339),
			formatFloat(p.Latitude),
			formatFloat(p.Longitude),
			formatFloat(p.DistanceFromPrev),
			formatFloat(p.CumulativeDist),
			formatFloat(p.TimeDelta),
			formatFloat(p.Speed),
			formatFloat(p.SpeedKmh()),
			cycleID,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write point %d: %w", p.Seq, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCyclesCSV writes the cycle summary table ordered as given.
func WriteCyclesCSV(w io.Writer, cycles []models.CycleSummary) error {
	cw := csv.NewWriter(w)

	header := []string{
		"cycle_id", "start_time", "end_time",
		"duration_min", "distance_m", "point_count", "complete",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, c := range cycles {
		row := []string{
			strconv.Itoa(c.CycleID),
			c.StartTime.UTC().Format(time.RFC3339),
			c.EndTime.UTC().Format(time.RFC3339),
			formatFloat(c.DurationMin),
			formatFloat(c.DistanceM),
			strconv.Itoa(c.PointCount),
			strconv.FormatBool(c.Complete),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write cycle %d: %w", c.CycleID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
