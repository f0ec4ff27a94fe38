package cycle

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hauldesk/haulcycle-backend-go/internal/models"
)

var testBase = time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC)

func rawPoint(offsetSec int, lat, lon float64) models.RawPoint {
	return models.RawPoint{
		Time:      testBase.Add(time.Duration(offsetSec) * time.Second),
		Latitude:  lat,
		Longitude: lon,
	}
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize([]models.RawPoint{}))
}

func TestNormalizeSinglePoint(t *testing.T) {
	out := Normalize([]models.RawPoint{rawPoint(0, 40.0, -105.0)})
	require.Len(t, out, 1)
	assert.Zero(t, out[0].DistanceFromPrev)
	assert.Zero(t, out[0].CumulativeDist)
	assert.Zero(t, out[0].TimeDelta)
	assert.Zero(t, out[0].Speed)
}

func TestNormalizeSortsByTimestamp(t *testing.T) {
	raw := []models.RawPoint{
		rawPoint(20, 40.0002, -105.0),
		rawPoint(0, 40.0, -105.0),
		rawPoint(10, 40.0001, -105.0),
	}
	out := Normalize(raw)
	require.Len(t, out, 3)
	for i := 1; i < len(out); i++ {
		assert.False(t, out[i].Time.Before(out[i-1].Time))
	}
	assert.Equal(t, 0, out[0].Seq)
	assert.Equal(t, 40.0, out[0].Latitude)
}

func TestNormalizeDerivedColumns(t *testing.T) {
	raw := []models.RawPoint{
		rawPoint(0, 40.0, -105.0),
		rawPoint(10, 40.001, -105.0), // ~111 m north
		rawPoint(30, 40.002, -105.0),
	}
	out := Normalize(raw)
	require.Len(t, out, 3)

	assert.Zero(t, out[0].DistanceFromPrev)
	assert.InDelta(t, 111, out[1].DistanceFromPrev, 2)
	assert.InDelta(t, 10, out[1].TimeDelta, 1e-9)
	assert.InDelta(t, 11.1, out[1].Speed, 0.2)
	assert.InDelta(t, 20, out[2].TimeDelta, 1e-9)
	assert.InDelta(t, out[1].DistanceFromPrev+out[2].DistanceFromPrev,
		out[2].CumulativeDist, 1e-9)
}

func TestNormalizeCumulativeMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	raw := make([]models.RawPoint, 200)
	for i := range raw {
		raw[i] = rawPoint(i*5, 40.0+rng.Float64()*0.01, -105.0+rng.Float64()*0.01)
	}
	out := Normalize(raw)

	running := 0.0
	for i, p := range out {
		running += p.DistanceFromPrev
		assert.InDelta(t, running, p.CumulativeDist, 1e-6)
		if i > 0 {
			assert.GreaterOrEqual(t, p.CumulativeDist, out[i-1].CumulativeDist)
		}
	}
}

func TestNormalizeDuplicateTimestampSpeedZero(t *testing.T) {
	raw := []models.RawPoint{
		rawPoint(0, 40.0, -105.0),
		rawPoint(0, 40.001, -105.0), // same instant, 111 m away
	}
	out := Normalize(raw)
	require.Len(t, out, 2)

	// Stable sort keeps input order for the tie.
	assert.Equal(t, 40.0, out[0].Latitude)
	assert.Zero(t, out[1].TimeDelta)
	assert.Zero(t, out[1].Speed)
	assert.Greater(t, out[1].DistanceFromPrev, 0.0)
}

func TestNormalizeOrderIndependent(t *testing.T) {
	raw := []models.RawPoint{
		rawPoint(0, 40.0, -105.0),
		rawPoint(10, 40.001, -105.001),
		rawPoint(20, 40.002, -105.002),
		rawPoint(30, 40.003, -105.001),
	}
	sorted := Normalize(raw)

	shuffled := []models.RawPoint{raw[2], raw[0], raw[3], raw[1]}
	assert.Equal(t, sorted, Normalize(shuffled))
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	raw := []models.RawPoint{
		rawPoint(10, 40.001, -105.0),
		rawPoint(0, 40.0, -105.0),
	}
	Normalize(raw)
	assert.Equal(t, testBase.Add(10*time.Second), raw[0].Time)
}
