package cycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeEmpty(t *testing.T) {
	assert.Empty(t, Summarize(nil, 0))
}

func TestSummarizeNoCycles(t *testing.T) {
	d := NewDetector(startZone, endZone)
	labeled, open := d.Label(track(
		[2]float64{farLat, farLon},
		[2]float64{farLat + 0.001, farLon},
	))
	assert.Empty(t, Summarize(labeled, open))
}

func TestSummarizeSingleCycle(t *testing.T) {
	d := NewDetector(startZone, endZone)
	labeled, open := d.Label(track(
		[2]float64{farLat, farLon},
		[2]float64{startZone.Lat, startZone.Lon},
		[2]float64{40.0005, -105.0010},
		[2]float64{endZone.Lat, endZone.Lon},
		[2]float64{farLat, farLon},
	))
	summaries := Summarize(labeled, open)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, 1, s.CycleID)
	assert.Equal(t, labeled[1].Time, s.StartTime)
	assert.Equal(t, labeled[3].Time, s.EndTime)
	assert.InDelta(t, 1.0, s.DurationMin, 1e-9) // 2 hops of 30 s
	assert.InDelta(t, labeled[3].CumulativeDist-labeled[1].CumulativeDist, s.DistanceM, 1e-9)
	assert.Equal(t, 3, s.PointCount)
	assert.True(t, s.Complete)
}

func TestSummarizeTwoCycles(t *testing.T) {
	d := NewDetector(startZone, endZone)
	labeled, open := d.Label(track(
		[2]float64{startZone.Lat, startZone.Lon},
		[2]float64{endZone.Lat, endZone.Lon},
		[2]float64{farLat, farLon},
		[2]float64{startZone.Lat, startZone.Lon},
		[2]float64{endZone.Lat, endZone.Lon},
	))
	summaries := Summarize(labeled, open)
	require.Len(t, summaries, 2)

	assert.Equal(t, 1, summaries[0].CycleID)
	assert.Equal(t, 2, summaries[1].CycleID)
	assert.True(t, summaries[0].Complete)
	assert.True(t, summaries[1].Complete)

	// Non-overlapping time ranges, in order.
	assert.True(t, !summaries[1].StartTime.Before(summaries[0].EndTime))
}

func TestSummarizeTrailingOpenCycle(t *testing.T) {
	d := NewDetector(startZone, endZone)
	labeled, open := d.Label(track(
		[2]float64{startZone.Lat, startZone.Lon},
		[2]float64{40.0005, -105.0010},
		[2]float64{farLat, farLon},
	))
	require.Equal(t, 1, open)

	summaries := Summarize(labeled, open)
	require.Len(t, summaries, 1)

	// The open cycle is summarized as of the end of data, flagged incomplete.
	s := summaries[0]
	assert.False(t, s.Complete)
	assert.Equal(t, labeled[2].Time, s.EndTime)
	assert.Equal(t, 3, s.PointCount)
}

func TestSummarizeCycleEndingOnLastPoint(t *testing.T) {
	// A cycle whose closing point is the final sample is complete.
	d := NewDetector(startZone, endZone)
	labeled, open := d.Label(track(
		[2]float64{startZone.Lat, startZone.Lon},
		[2]float64{endZone.Lat, endZone.Lon},
	))
	summaries := Summarize(labeled, open)
	require.Len(t, summaries, 1)
	assert.True(t, summaries[0].Complete)
}

func TestSummarizeConsistency(t *testing.T) {
	d := NewDetector(startZone, endZone)
	coords := [][2]float64{}
	for i := 0; i < 4; i++ {
		coords = append(coords,
			[2]float64{startZone.Lat, startZone.Lon},
			[2]float64{40.0005, -105.0010},
			[2]float64{endZone.Lat, endZone.Lon},
			[2]float64{farLat, farLon},
		)
	}
	labeled, open := d.Label(track(coords...))

	for _, s := range Summarize(labeled, open) {
		assert.GreaterOrEqual(t, s.DistanceM, 0.0)
		assert.GreaterOrEqual(t, s.DurationMin, 0.0)
		assert.False(t, s.EndTime.Before(s.StartTime))
		assert.Greater(t, s.PointCount, 0)
	}
}
