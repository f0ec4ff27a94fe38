package gpx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/hauldesk/haulcycle-backend-go/internal/models"
)

// Parse reads and parses a GPX file.
func Parse(filename string) (*GPX, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(file)
}

// ParseReader parses GPX from an io.Reader.
func ParseReader(r io.Reader) (*GPX, error) {
	decoder := xml.NewDecoder(r)

	var doc GPX
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse GPX: %w", err)
	}

	if doc.Version == "" {
		doc.Version = "1.1"
	}
	return &doc, nil
}

// RawPoints flattens all tracks and segments into raw samples in document
// order. A point without a timestamp or with out-of-range coordinates is a
// hard error: the pipeline requires fully-formed input and does not skip.
func (g *GPX) RawPoints() ([]models.RawPoint, error) {
	var points []models.RawPoint
	for ti, track := range g.Tracks {
		for si, segment := range track.Segments {
			for pi, p := range segment.Points {
				if p.Time.IsZero() {
					return nil, fmt.Errorf("track %d segment %d point %d: missing timestamp", ti, si, pi)
				}
				if p.Lat < -90 || p.Lat > 90 {
					return nil, fmt.Errorf("track %d segment %d point %d: latitude %v out of range", ti, si, pi, p.Lat)
				}
				if p.Lon < -180 || p.Lon > 180 {
					return nil, fmt.Errorf("track %d segment %d point %d: longitude %v out of range", ti, si, pi, p.Lon)
				}
				points = append(points, models.RawPoint{
					Time:      p.Time,
					Latitude:  p.Lat,
					Longitude: p.Lon,
				})
			}
		}
	}
	return points, nil
}
