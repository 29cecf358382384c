package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/skyward/msplan/internal/flighttrack"
)

// New instantiates a window of the requested variant, unbound until the
// registry binds it on Open.
func New(kind Kind) Window {
	return &pane{kind: kind}
}

// pane is the shared terminal implementation behind all window variants;
// only the body rendering differs per kind.
type pane struct {
	kind Kind
	ft   *flighttrack.FlightTrack
}

func (p *pane) Kind() Kind   { return p.kind }
func (p *pane) Name() string { return p.kind.String() }

func (p *pane) SetFlightTrack(ft *flighttrack.FlightTrack) { p.ft = ft }

func (p *pane) Render(width, height int, focused bool) string {
	border := lipgloss.Color("240")
	if focused {
		border = lipgloss.Color("75")
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(max(width-2, 10))

	title := p.kind.String()
	if p.ft != nil {
		title = fmt.Sprintf("%s — %s", title, p.ft.Name())
	}
	head := lipgloss.NewStyle().Bold(true).Render(title)
	body := p.body(max(width-6, 10), max(height-4, 3))
	return box.Render(head + "\n" + body)
}

func (p *pane) body(width, height int) string {
	if p.ft == nil {
		return "no flight track bound"
	}
	wps := p.ft.Waypoints()
	switch p.kind {
	case TableView:
		return renderTable(wps, height)
	case TopView:
		return renderRoute(wps, width)
	case SideView:
		return renderProfile(wps, height)
	case TrajectoryTool, TimeSeriesTool, LoopTool:
		return fmt.Sprintf("%s ready\n%d waypoints on the active track", p.kind, len(wps))
	}
	return ""
}

func renderTable(wps []flighttrack.Waypoint, height int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-4s %-24s %8s\n", "#", "Location", "FL")
	for i, wp := range wps {
		if i >= height-1 {
			fmt.Fprintf(&b, "… %d more", len(wps)-i)
			break
		}
		fmt.Fprintf(&b, "%-4d %-24s %8.0f\n", i+1, wp.Location, wp.FlightLevel)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderRoute(wps []flighttrack.Waypoint, width int) string {
	if len(wps) == 0 {
		return "(empty track)"
	}
	names := make([]string, len(wps))
	for i, wp := range wps {
		names[i] = wp.Location
	}
	route := strings.Join(names, " ── ")
	if lipgloss.Width(route) > width {
		route = ansi.Truncate(route, max(width, 2), "…")
	}
	return route
}

// renderProfile draws one row per distinct flight level, highest first, with
// a marker in each waypoint's column.
func renderProfile(wps []flighttrack.Waypoint, height int) string {
	if len(wps) == 0 {
		return "(empty track)"
	}
	levels := make([]float64, 0, len(wps))
	seen := map[float64]bool{}
	for _, wp := range wps {
		if !seen[wp.FlightLevel] {
			seen[wp.FlightLevel] = true
			levels = append(levels, wp.FlightLevel)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(levels)))
	if len(levels) > height {
		levels = levels[:height]
	}
	var b strings.Builder
	for _, lvl := range levels {
		fmt.Fprintf(&b, "FL%03.0f ", lvl)
		for _, wp := range wps {
			if wp.FlightLevel == lvl {
				b.WriteString("▆ ")
			} else {
				b.WriteString("· ")
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
