package gpx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx xmlns="http://www.topografix.com/GPX/1/1" version="1.1" creator="test">
  <metadata><name>haul route</name></metadata>
  <trk>
    <name>morning shift</name>
    <trkseg>
      <trkpt lat="40.0000" lon="-105.0000"><ele>1600</ele><time>2024-05-06T08:00:00Z</time></trkpt>
      <trkpt lat="40.0005" lon="-105.0010"><time>2024-05-06T08:00:30Z</time></trkpt>
    </trkseg>
    <trkseg>
      <trkpt lat="40.0010" lon="-105.0020"><time>2024-05-06T08:01:00Z</time></trkpt>
    </trkseg>
  </trk>
</gpx>`

func TestParseReader(t *testing.T) {
	doc, err := ParseReader(strings.NewReader(sampleGPX))
	require.NoError(t, err)
	assert.Equal(t, "1.1", doc.Version)
	assert.Equal(t, "test", doc.Creator)
	require.Len(t, doc.Tracks, 1)
	assert.Equal(t, "morning shift", doc.Tracks[0].Name)
	require.Len(t, doc.Tracks[0].Segments, 2)
}

func TestRawPointsFlattensSegments(t *testing.T) {
	doc, err := ParseReader(strings.NewReader(sampleGPX))
	require.NoError(t, err)

	points, err := doc.RawPoints()
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, 40.0, points[0].Latitude)
	assert.Equal(t, -105.002, points[2].Longitude)
	assert.True(t, points[0].Time.Before(points[2].Time))
}

func TestRawPointsMissingTimestamp(t *testing.T) {
	const bad = `<gpx version="1.1" creator="test"><trk><trkseg>
		<trkpt lat="40.0" lon="-105.0"></trkpt>
	</trkseg></trk></gpx>`

	doc, err := ParseReader(strings.NewReader(bad))
	require.NoError(t, err)

	_, err = doc.RawPoints()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing timestamp")
}

func TestRawPointsCoordinateRange(t *testing.T) {
	const bad = `<gpx version="1.1" creator="test"><trk><trkseg>
		<trkpt lat="95.0" lon="-105.0"><time>2024-05-06T08:00:00Z</time></trkpt>
	</trkseg></trk></gpx>`

	doc, err := ParseReader(strings.NewReader(bad))
	require.NoError(t, err)

	_, err = doc.RawPoints()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude")
}

func TestParseReaderMalformedXML(t *testing.T) {
	_, err := ParseReader(strings.NewReader("<gpx><trk>"))
	assert.Error(t, err)
}

func TestRawPointsEmptyDocument(t *testing.T) {
	doc, err := ParseReader(strings.NewReader(`<gpx version="1.1" creator="t"></gpx>`))
	require.NoError(t, err)

	points, err := doc.RawPoints()
	require.NoError(t, err)
	assert.Empty(t, points)
}
