// Package flighttrack holds the flight-track document model and the registry
// of open tracks the rest of the application works against.
package flighttrack

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/skyward/msplan/internal/dialog"
)

// Extension is the native flight-track file extension.
const Extension = ".ftml"

// Codec is the serializer pair the registry invokes for the native format.
// The registry does not own the format; see the ftml package.
type Codec struct {
	Load func(path string) (name string, wps []Waypoint, err error)
	Save func(path, name string, wps []Waypoint) error
}

// Binder receives the new active track whenever it changes, before the
// triggering operation returns. The view registry implements this.
type Binder interface {
	RebindAll(ft *FlightTrack)
}

// Registry manages the set of open flight tracks and the active one. All
// methods must be called from the application's event flow; the registry
// performs no locking of its own.
type Registry struct {
	// Views, if set, is rebound synchronously on every SetActive.
	Views Binder
	// ActiveNameChanged, if set, is invoked whenever the active track's
	// display name must be refreshed (activation and rename).
	ActiveNameChanged func(name string)

	dlg     dialog.Dialog
	codec   Codec
	tracks  []*FlightTrack
	active  *FlightTrack
	counter int

	lastSaveDir string
}

func NewRegistry(dlg dialog.Dialog, codec Codec) *Registry {
	return &Registry{dlg: dlg, codec: codec, lastSaveDir: "."}
}

// Tracks returns the open tracks in display order.
func (r *Registry) Tracks() []*FlightTrack { return r.tracks }

// Active returns the currently active track, or nil before the first
// activation.
func (r *Registry) Active() *FlightTrack { return r.active }

func (r *Registry) Len() int { return len(r.tracks) }

// New creates a flight track from a copy of template, auto-named with a
// per-registry counter, and registers it. Templates shorter than two
// waypoints are reported but the track is still created so the user can fix
// the configuration from a running application.
func (r *Registry) New(template []Waypoint, activate bool) *FlightTrack {
	if len(template) < 2 {
		r.dlg.Warn("Flight track template",
			"The flight track template is too short. Please configure at least two valid locations.")
	}
	r.counter++
	ft := NewFlightTrack(fmt.Sprintf("new flight track (%d)", r.counter), template)
	r.tracks = append(r.tracks, ft)
	if activate {
		r.SetActive(ft)
	}
	return ft
}

// Open loads the flight track stored at path and registers and activates it.
// Files without the native extension are refused with a warning; load
// failures are reported and leave the registry unchanged. Returns nil when
// no track was opened.
func (r *Registry) Open(path string) *FlightTrack {
	if !strings.HasSuffix(path, Extension) {
		r.dlg.Warn("Open flight track",
			fmt.Sprintf("No supported file extension recognized!\n%s", path))
		return nil
	}
	name, wps, err := r.codec.Load(path)
	if err != nil {
		r.dlg.Warn("Open flight track", fmt.Sprintf("Failed to load %s: %v", path, err))
		return nil
	}
	if name == "" {
		name = filepath.Base(path)
	}
	ft := NewFlightTrack(name, wps)
	ft.filePath = path
	r.tracks = append(r.tracks, ft)
	r.SetActive(ft)
	return ft
}

// Add registers an externally constructed track (import filters use this)
// and optionally activates it.
func (r *Registry) Add(name string, wps []Waypoint, activate bool) *FlightTrack {
	ft := NewFlightTrack(name, wps)
	r.tracks = append(r.tracks, ft)
	if activate {
		r.SetActive(ft)
	}
	return ft
}

// Close removes ft from the registry. It refuses to close the last remaining
// track or the active one, and asks for confirmation when ft has unsaved
// changes. Reports whether the track was removed.
func (r *Registry) Close(ft *FlightTrack) bool {
	if len(r.tracks) < 2 {
		r.dlg.Info("Flight Track Management", "At least one flight track has to be open.")
		return false
	}
	if ft == r.active {
		r.dlg.Info("Flight Track Management", "Cannot close the currently active flight track.")
		return false
	}
	if ft.Modified() {
		if !r.dlg.Confirm("Flight Track Management",
			"The flight track you are about to close has been modified. Close anyway?") {
			return false
		}
	}
	for i, t := range r.tracks {
		if t == ft {
			r.tracks = append(r.tracks[:i], r.tracks[i+1:]...)
			return true
		}
	}
	return false
}

// Save serializes ft to its recorded file after confirmation. Tracks without
// a usable native-format path fall through to a save-as prompt.
func (r *Registry) Save(ft *FlightTrack) bool {
	if path := ft.FilePath(); path != "" && strings.HasSuffix(path, Extension) {
		if !r.dlg.Confirm("Save flight track",
			fmt.Sprintf("Saving flight track to %q. Continue?", path)) {
			return false
		}
		return r.write(ft, path)
	}
	proposed := filepath.Join(r.lastSaveDir, ft.Name()+Extension)
	path := r.dlg.AskSaveName(proposed)
	if path == "" {
		return false
	}
	return r.SaveAs(ft, path)
}

// SaveAs serializes ft to path, records the path and clears the modified
// flag. Paths without the native extension are refused with a warning and
// nothing is written.
func (r *Registry) SaveAs(ft *FlightTrack, path string) bool {
	r.lastSaveDir = filepath.Dir(path)
	if !strings.HasSuffix(path, Extension) {
		r.dlg.Warn("Save flight track",
			fmt.Sprintf("File extension is not %q!\n%s", Extension, path))
		return false
	}
	return r.write(ft, path)
}

func (r *Registry) write(ft *FlightTrack, path string) bool {
	if err := r.codec.Save(path, ft.Name(), ft.Waypoints()); err != nil {
		r.dlg.Warn("Save flight track", fmt.Sprintf("Failed to save %s: %v", path, err))
		return false
	}
	ft.markSaved(path)
	return true
}

// SetActive makes ft the track all open views display. The view rebind and
// the name-label refresh both complete before SetActive returns, so no view
// can observe a half-switched state. Tracks not registered here are ignored.
func (r *Registry) SetActive(ft *FlightTrack) {
	if !r.contains(ft) {
		return
	}
	r.active = ft
	if r.ActiveNameChanged != nil {
		r.ActiveNameChanged(ft.Name())
	}
	if r.Views != nil {
		r.Views.RebindAll(ft)
	}
}

// Rename updates ft's display name. When ft is the active track the
// active-name label is refreshed within the same call.
func (r *Registry) Rename(ft *FlightTrack, name string) {
	ft.SetName(name)
	if ft == r.active && r.ActiveNameChanged != nil {
		r.ActiveNameChanged(name)
	}
}

func (r *Registry) contains(ft *FlightTrack) bool {
	for _, t := range r.tracks {
		if t == ft {
			return true
		}
	}
	return false
}
