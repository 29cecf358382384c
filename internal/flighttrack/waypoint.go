package flighttrack

// Waypoint is a single point of a flight track: a named location flown over
// at a given flight level (hundreds of feet).
type Waypoint struct {
	Location    string
	FlightLevel float64
}

// CloneWaypoints returns an independent copy of wps so that tracks created
// from a shared template never alias each other's waypoint storage.
func CloneWaypoints(wps []Waypoint) []Waypoint {
	if wps == nil {
		return nil
	}
	out := make([]Waypoint, len(wps))
	copy(out, wps)
	return out
}
