package cycle

import (
	"github.com/hauldesk/haulcycle-backend-go/internal/models"
	"github.com/hauldesk/haulcycle-backend-go/internal/spatial"
)

// Detector labels track points with cycle ids using a two-state scan: idle
// until the point enters the start zone, then in-cycle until the point enters
// the end zone. The closing point still belongs to the cycle it closes.
type Detector struct {
	StartZone spatial.Zone
	EndZone   spatial.Zone
}

// NewDetector creates a detector for one start/end zone pair.
func NewDetector(start, end spatial.Zone) *Detector {
	return &Detector{StartZone: start, EndZone: end}
}

// Label assigns cycle ids in place over the normalized sequence. Ids start at
// 1 and increase by one per cycle; points outside any cycle keep a nil
// CycleID. The scan is inherently sequential: state carries across points.
//
// The second return value is the id of a cycle still open when the data ran
// out (the track never reached the end zone again), or 0 if every cycle
// closed.
func (d *Detector) Label(points []models.TrackPoint) ([]models.TrackPoint, int) {
	inCycle := false
	nextID := 1
	var current int

	for i := range points {
		p := &points[i]
		if !inCycle {
			// The start zone is only consulted while idle, so a point inside
			// both zones opens a cycle rather than opening and closing it.
			if d.StartZone.Contains(p.Latitude, p.Longitude) {
				current = nextID
				nextID++
				inCycle = true
				id := current
				p.CycleID = &id
			}
			continue
		}

		id := current
		p.CycleID = &id
		if d.EndZone.Contains(p.Latitude, p.Longitude) {
			inCycle = false
		}
	}

	if inCycle {
		return points, current
	}
	return points, 0
}
