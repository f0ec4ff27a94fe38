package spatial

// Zone is a circular geofence: a center coordinate and a radius in meters.
type Zone struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	RadiusM float64 `json:"radius_m"`
}

// Contains reports whether (lat, lon) lies within the zone. The boundary is
// inclusive: a point exactly RadiusM meters from the center is inside.
func (z Zone) Contains(lat, lon float64) bool {
	return HaversineDistance(lat, lon, z.Lat, z.Lon) <= z.RadiusM
}
