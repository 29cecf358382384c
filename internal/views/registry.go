package views

import (
	"fmt"

	"github.com/skyward/msplan/internal/flighttrack"
)

// Entry is one open window in the registry. Its label carries a display
// index assigned from a counter that is never reused, so labels stay stable
// for the lifetime of the process.
type Entry struct {
	Window Window
	Label  string

	track  *flighttrack.FlightTrack
	closed bool
}

// Track returns the flight track the entry is currently bound to.
func (e *Entry) Track() *flighttrack.FlightTrack { return e.track }

// Closed reports whether the window has delivered its close notification.
func (e *Entry) Closed() bool { return e.closed }

// Registry tracks the open view and tool windows. Like the flight-track
// registry it is driven from the application's event flow only.
type Registry struct {
	// Changed, if set, fires after every open and close.
	Changed func()

	entries []*Entry
	current *Entry
	opened  int
}

func NewRegistry() *Registry { return &Registry{} }

// Open binds w to the active track, registers it under a fresh display
// index, and makes it the foreground window.
func (r *Registry) Open(w Window, active *flighttrack.FlightTrack) *Entry {
	r.opened++
	e := &Entry{
		Window: w,
		Label:  fmt.Sprintf("(%d) %s", r.opened, w.Name()),
		track:  active,
	}
	w.SetFlightTrack(active)
	r.entries = append(r.entries, e)
	r.current = e
	if r.Changed != nil {
		r.Changed()
	}
	return e
}

// Activate brings e to the foreground. No other state changes.
func (r *Registry) Activate(e *Entry) {
	if e == nil || e.closed {
		return
	}
	r.current = e
}

// Current returns the foreground window entry, or nil when none is open.
func (r *Registry) Current() *Entry { return r.current }

// RebindAll points every open window at ft. Callers observe either the old
// binding everywhere or the new one everywhere, never a mix: the loop runs
// to completion before control returns.
func (r *Registry) RebindAll(ft *flighttrack.FlightTrack) {
	for _, e := range r.entries {
		e.track = ft
		e.Window.SetFlightTrack(ft)
	}
}

// CloseNotify is the window's close notification: it removes e from the
// registry and fires the changed signal. A closed entry never reopens; a
// second notification for the same entry is ignored.
func (r *Registry) CloseNotify(e *Entry) {
	if e == nil || e.closed {
		return
	}
	e.closed = true
	for i, other := range r.entries {
		if other == e {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			break
		}
	}
	if r.current == e {
		r.current = nil
		if len(r.entries) > 0 {
			r.current = r.entries[len(r.entries)-1]
		}
	}
	if r.Changed != nil {
		r.Changed()
	}
}

// Entries returns all open windows in open order.
func (r *Registry) Entries() []*Entry { return r.entries }

// Views returns the open entries that are views.
func (r *Registry) Views() []*Entry { return r.filtered(false) }

// Tools returns the open entries that are tools.
func (r *Registry) Tools() []*Entry { return r.filtered(true) }

func (r *Registry) filtered(tool bool) []*Entry {
	var out []*Entry
	for _, e := range r.entries {
		if e.Window.Kind().Tool() == tool {
			out = append(out, e)
		}
	}
	return out
}
