// Command haulcycle segments a GPX track into haul cycles and writes the
// labeled points, the cycle summary table and three chart pages to an output
// directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hauldesk/haulcycle-backend-go/internal/charts"
	"github.com/hauldesk/haulcycle-backend-go/internal/cycle"
	"github.com/hauldesk/haulcycle-backend-go/internal/export"
	"github.com/hauldesk/haulcycle-backend-go/internal/gpx"
	"github.com/hauldesk/haulcycle-backend-go/internal/spatial"
)

func main() {
	var (
		input       = flag.String("input", "", "path to the GPX track file (required)")
		outDir      = flag.String("out", ".", "output directory")
		startLat    = flag.Float64("start-lat", 0, "start zone center latitude (required)")
		startLon    = flag.Float64("start-lon", 0, "start zone center longitude (required)")
		startRadius = flag.Float64("start-radius", 100, "start zone radius in meters")
		endLat      = flag.Float64("end-lat", 0, "end zone center latitude (required)")
		endLon      = flag.Float64("end-lon", 0, "end zone center longitude (required)")
		endRadius   = flag.Float64("end-radius", 100, "end zone radius in meters")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *startRadius <= 0 || *endRadius <= 0 {
		log.Fatal("zone radius must be positive")
	}

	start := spatial.Zone{Name: "Start Zone", Lat: *startLat, Lon: *startLon, RadiusM: *startRadius}
	end := spatial.Zone{Name: "End Zone", Lat: *endLat, Lon: *endLon, RadiusM: *endRadius}

	doc, err := gpx.Parse(*input)
	if err != nil {
		log.Fatal(err)
	}
	raw, err := doc.RawPoints()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded %d points from %s", len(raw), *input)

	normalized := cycle.Normalize(raw)
	labeled, openID := cycle.NewDetector(start, end).Label(normalized)
	summaries := cycle.Summarize(labeled, openID)
	log.Printf("Detected %d cycles", len(summaries))

	for _, s := range summaries {
		status := ""
		if !s.Complete {
			status = " (incomplete)"
		}
		fmt.Printf("cycle %d: %s -> %s  %.1f min  %.0f m%s\n",
			s.CycleID,
			s.StartTime.Format("15:04:05"),
			s.EndTime.Format("15:04:05"),
			s.DurationMin, s.DistanceM, status)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	writeFile(*outDir, "points_with_cycles.csv", func(f *os.File) error {
		return export.WritePointsCSV(f, labeled)
	})
	writeFile(*outDir, "cycle_summary.csv", func(f *os.File) error {
		return export.WriteCyclesCSV(f, summaries)
	})
	writeFile(*outDir, "cycle_timeline.html", func(f *os.File) error {
		return charts.RenderTimeline(f, summaries)
	})
	writeFile(*outDir, "speed_by_cycle.html", func(f *os.File) error {
		return charts.RenderSpeed(f, labeled)
	})
	writeFile(*outDir, "cycle_map.html", func(f *os.File) error {
		return charts.RenderMap(f, labeled, start, end)
	})
}

func writeFile(dir, name string, write func(*os.File) error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s", path)
}
