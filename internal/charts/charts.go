// Package charts renders visual summaries of an analysis run as standalone
// HTML pages using go-echarts.
package charts

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/hauldesk/haulcycle-backend-go/internal/models"
	"github.com/hauldesk/haulcycle-backend-go/internal/spatial"
)

// RenderTimeline renders a per-cycle duration bar chart.
func RenderTimeline(w io.Writer, cycles []models.CycleSummary) error {
	labels := make([]string, 0, len(cycles))
	data := make([]opts.BarData, 0, len(cycles))
	for _, c := range cycles {
		labels = append(labels, fmt.Sprintf("Cycle %d", c.CycleID))
		name := fmt.Sprintf("%s - %s", c.StartTime.Format("15:04:05"), c.EndTime.Format("15:04:05"))
		data = append(data, opts.BarData{Name: name, Value: c.DurationMin})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Haul Cycle Timeline", Width: "1000px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Haul Cycle Durations", Subtitle: fmt.Sprintf("cycles=%d", len(cycles))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Duration (min)"}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("duration_min", data)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render timeline chart: %w", err)
	}
	return nil
}

// RenderSpeed renders speed over time as one line series per cycle.
// Unlabeled points are skipped, matching the per-cycle reading of the track.
func RenderSpeed(w io.Writer, points []models.TrackPoint) error {
	series := groupByCycle(points)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Speed by Cycle", Width: "1000px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Speed vs. Time by Cycle"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "time", Name: "Time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Speed (km/h)"}),
	)

	for _, id := range sortedCycleIDs(series) {
		data := make([]opts.LineData, 0, len(series[id]))
		for _, p := range series[id] {
			data = append(data, opts.LineData{
				Value: []interface{}{p.Time.Format(time.RFC3339), p.SpeedKmh()},
			})
		}
		line.AddSeries(fmt.Sprintf("Cycle %d", id), data)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render speed chart: %w", err)
	}
	return nil
}

// RenderMap renders a lon/lat scatter of the labeled points, one series per
// cycle, with the start and end zone centers marked. Not a true GIS map, but
// enough to eyeball the route.
func RenderMap(w io.Writer, points []models.TrackPoint, start, end spatial.Zone) error {
	series := groupByCycle(points)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Haul Cycle Map", Width: "800px", Height: "800px"}),
		charts.WithTitleOpts(opts.Title{Title: "Map of Haul Cycles (Lat/Lon)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Longitude", Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Latitude", Scale: opts.Bool(true)}),
	)

	for _, id := range sortedCycleIDs(series) {
		data := make([]opts.ScatterData, 0, len(series[id]))
		for _, p := range series[id] {
			data = append(data, opts.ScatterData{Value: []interface{}{p.Longitude, p.Latitude}})
		}
		scatter.AddSeries(fmt.Sprintf("Cycle %d", id), data,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 5}))
	}

	scatter.AddSeries(zoneLabel("Start Zone", start),
		[]opts.ScatterData{{Value: []interface{}{start.Lon, start.Lat}, Symbol: "diamond", SymbolSize: 20}})
	scatter.AddSeries(zoneLabel("End Zone", end),
		[]opts.ScatterData{{Value: []interface{}{end.Lon, end.Lat}, Symbol: "diamond", SymbolSize: 20}})

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("failed to render map chart: %w", err)
	}
	return nil
}

func zoneLabel(fallback string, z spatial.Zone) string {
	if z.Name != "" {
		return z.Name
	}
	return fallback
}

func groupByCycle(points []models.TrackPoint) map[int][]models.TrackPoint {
	series := make(map[int][]models.TrackPoint)
	for _, p := range points {
		if p.CycleID == nil {
			continue
		}
		series[*p.CycleID] = append(series[*p.CycleID], p)
	}
	return series
}

func sortedCycleIDs(series map[int][]models.TrackPoint) []int {
	ids := make([]int, 0, len(series))
	for id := range series {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
