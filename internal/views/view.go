// Package views manages the open view and tool windows of the planner. Every
// window displays the active flight track; switching the active track
// rebinds all of them at once.
package views

import (
	"github.com/skyward/msplan/internal/flighttrack"
)

// Kind identifies a view or tool variant.
type Kind int

const (
	TopView Kind = iota
	SideView
	TableView
	TrajectoryTool
	TimeSeriesTool
	LoopTool
)

var kindNames = map[Kind]string{
	TopView:        "Top View",
	SideView:       "Side View",
	TableView:      "Table View",
	TrajectoryTool: "Trajectory Tool",
	TimeSeriesTool: "Time Series Tool",
	LoopTool:       "Loop Tool",
}

func (k Kind) String() string { return kindNames[k] }

// Tool reports whether k belongs in the tools list rather than the views
// list.
func (k Kind) Tool() bool { return k >= TrajectoryTool }

// Kinds lists every openable window variant in menu order.
func Kinds() []Kind {
	return []Kind{TopView, SideView, TableView, TrajectoryTool, TimeSeriesTool, LoopTool}
}

// Window is the bindable-window capability every view and tool variant
// implements. The registries hold windows only through this interface.
type Window interface {
	Kind() Kind
	// Name is the base window title, without the display index.
	Name() string
	// SetFlightTrack rebinds the window to ft. Called on open and on every
	// active-track switch.
	SetFlightTrack(ft *flighttrack.FlightTrack)
	// Render draws the window content into a box of the given size.
	Render(width, height int, focused bool) string
}
