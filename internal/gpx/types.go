// Package gpx parses GPX track files into raw GPS samples.
package gpx

import (
	"encoding/xml"
	"time"
)

// Point represents a GPS track point as stored in the file.
type Point struct {
	Lat       float64   `xml:"lat,attr"`
	Lon       float64   `xml:"lon,attr"`
	Elevation float64   `xml:"ele,omitempty"`
	Time      time.Time `xml:"time,omitempty"`
}

// TrackSegment represents a track segment.
type TrackSegment struct {
	Points []Point `xml:"trkpt"`
}

// Track represents a GPX track with segments.
type Track struct {
	Name     string         `xml:"name,omitempty"`
	Segments []TrackSegment `xml:"trkseg"`
}

// Metadata represents GPX metadata.
type Metadata struct {
	Name string    `xml:"name,omitempty"`
	Time time.Time `xml:"time,omitempty"`
}

// GPX represents the full GPX document.
type GPX struct {
	XMLName xml.Name `xml:"gpx"`
	Version string   `xml:"version,attr"`
	Creator string   `xml:"creator,attr"`

	Metadata Metadata `xml:"metadata,omitempty"`
	Tracks   []Track  `xml:"trk"`
}
