package plugins

import (
	"fmt"

	"github.com/skyward/msplan/internal/dialog"
	"github.com/skyward/msplan/internal/flighttrack"
)

// Host runs filter invocations on behalf of the user interface: it prompts
// for the file, calls the conversion function, and surfaces any failure as a
// dialog instead of letting it take the application down.
type Host struct {
	Table  *FilterTable
	Dialog dialog.Dialog
	Tracks *flighttrack.Registry
}

// Import prompts for a file of the filter's extension and registers the
// parsed track as a new active flight track. Parse and I/O failures are
// reported; no track is registered on failure.
func (h *Host) Import(f ImportFilter) *flighttrack.FlightTrack {
	path := h.Dialog.AskOpenName(fmt.Sprintf("%s (*.%s)", f.Name, f.Extension))
	if path == "" {
		return nil
	}
	name, wps, err := f.Func(path)
	if err != nil {
		h.Dialog.Warn("file io plugin error", fmt.Sprintf("ERROR: %v", err))
		return nil
	}
	if name == "" {
		name = path
	}
	return h.Tracks.Add(name, wps, true)
}

// Export prompts for a destination and writes the active flight track
// through the filter. I/O failures are reported.
func (h *Host) Export(f ExportFilter) {
	active := h.Tracks.Active()
	if active == nil {
		return
	}
	path := h.Dialog.AskSaveName(active.Name() + "." + f.Extension)
	if path == "" {
		return
	}
	if err := f.Func(path, active.Name(), active.Waypoints()); err != nil {
		h.Dialog.Warn("file io plugin error", fmt.Sprintf("ERROR: %v", err))
	}
}
