package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hauldesk/haulcycle-backend-go/internal/models"
)

func TestWritePointsCSV(t *testing.T) {
	id := 1
	base := time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC)
	points := []models.TrackPoint{
		{Seq: 0, Time: base, Latitude: 40, Longitude: -105},
		{Seq: 1, Time: base.Add(30 * time.Second), Latitude: 40.0005, Longitude: -105,
			DistanceFromPrev: 55.6, CumulativeDist: 55.6, TimeDelta: 30, Speed: 1.853, CycleID: &id},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePointsCSV(&buf, points))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "seq", records[0][0])
	assert.Equal(t, "cycle_id", records[0][9])

	assert.Equal(t, "2024-05-06T08:00:00Z", records[1][1])
	assert.Equal(t, "", records[1][9], "unlabeled point has empty cycle_id")
	assert.Equal(t, "1", records[2][9])
	assert.Equal(t, "55.6", records[2][4])
}

func TestWritePointsCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePointsCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "header only")
}

func TestWriteCyclesCSV(t *testing.T) {
	base := time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC)
	cycles := []models.CycleSummary{
		{CycleID: 1, StartTime: base, EndTime: base.Add(9 * time.Minute),
			DurationMin: 9, DistanceM: 1502.5, PointCount: 18, Complete: true},
		{CycleID: 2, StartTime: base.Add(10 * time.Minute), EndTime: base.Add(15 * time.Minute),
			DurationMin: 5, DistanceM: 820, PointCount: 10, Complete: false},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCyclesCSV(&buf, cycles))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "1502.5", records[1][4])
	assert.Equal(t, "true", records[1][6])
	assert.Equal(t, "false", records[2][6])
}
