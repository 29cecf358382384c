package flighttrack

// FlightTrack is one open flight-track document: a named, ordered waypoint
// sequence plus the file it was last saved to. Names are not required to be
// unique across open tracks.
type FlightTrack struct {
	name      string
	waypoints []Waypoint
	filePath  string
	modified  bool
}

// NewFlightTrack creates a track with its own copy of wps.
func NewFlightTrack(name string, wps []Waypoint) *FlightTrack {
	return &FlightTrack{name: name, waypoints: CloneWaypoints(wps)}
}

func (ft *FlightTrack) Name() string { return ft.name }

// SetName renames the track and marks it modified.
func (ft *FlightTrack) SetName(name string) {
	ft.name = name
	ft.modified = true
}

// Waypoints returns the track's waypoint storage. Callers that edit it must
// call MarkModified afterwards.
func (ft *FlightTrack) Waypoints() []Waypoint { return ft.waypoints }

// SetWaypoints replaces the waypoint sequence with a copy of wps.
func (ft *FlightTrack) SetWaypoints(wps []Waypoint) {
	ft.waypoints = CloneWaypoints(wps)
	ft.modified = true
}

func (ft *FlightTrack) FilePath() string { return ft.filePath }

func (ft *FlightTrack) Modified() bool { return ft.modified }

func (ft *FlightTrack) MarkModified() { ft.modified = true }

// markSaved records a successful serialization to path.
func (ft *FlightTrack) markSaved(path string) {
	ft.filePath = path
	ft.modified = false
}
