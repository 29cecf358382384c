// Package ui implements the planner's main window: the flight-track, view
// and tool lists, the active window pane, and the modal dialogs.
package ui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skyward/msplan/internal/config"
	"github.com/skyward/msplan/internal/flighttrack"
	"github.com/skyward/msplan/internal/plugins"
	"github.com/skyward/msplan/internal/views"
)

type listFocus int

const (
	focusTracks listFocus = iota
	focusViews
	focusTools
)

// opResult carries the outcome of a registry operation back into the event
// loop.
type opResult struct {
	status string
	quit   bool
}

type opDoneMsg struct{ opResult }

// activeNameMsg carries an active-track label change from an operation
// goroutine back into the event loop.
type activeNameMsg struct{ name string }

// picker is a transient selection menu (open view, import, export).
type picker struct {
	title  string
	items  []string
	cursor int
	pick   func(i int) tea.Cmd
}

// prompt is a transient single-line text input (rename).
type prompt struct {
	title  string
	input  string
	submit func(text string) tea.Cmd
}

// App is the bubbletea model of the main window. Registry operations that
// may block on a modal run in a command goroutine; while one is in flight
// the app ignores further operation keys and renders its last snapshot.
type App struct {
	cfg    config.Config
	log    *slog.Logger
	bridge *Bridge
	tracks *flighttrack.Registry
	wins   *views.Registry
	host   *plugins.Host

	keys          keyMap
	width, height int
	focus         listFocus
	cursors       [3]int

	// render snapshot, rebuilt by refresh
	activeName string
	trackLines []string
	viewLines  []string
	toolLines  []string
	paneBody   string

	dlg      *dialogRequestMsg
	input    string
	pick     *picker
	prompted *prompt
	status   string
	busy     bool
}

func New(cfg config.Config, logger *slog.Logger, bridge *Bridge,
	tracks *flighttrack.Registry, wins *views.Registry, host *plugins.Host) *App {
	a := &App{
		cfg:    cfg,
		log:    logger,
		bridge: bridge,
		tracks: tracks,
		wins:   wins,
		host:   host,
		keys:   newKeyMap(),
	}
	// The registry fires this from whatever goroutine runs the operation, so
	// it must not touch model fields directly.
	tracks.ActiveNameChanged = func(name string) { bridge.post(activeNameMsg{name: name}) }
	if active := tracks.Active(); active != nil {
		a.activeName = active.Name()
	}
	a.refresh()
	return a
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		// The registries belong to the operation goroutine while busy; the
		// snapshot is rebuilt when the operation reports back.
		if !a.busy {
			a.refresh()
		}
		return a, nil
	case activeNameMsg:
		a.activeName = msg.name
		return a, nil
	case dialogRequestMsg:
		a.dlg = &msg
		a.input = msg.proposed
		return a, nil
	case opDoneMsg:
		a.busy = false
		if msg.quit {
			// Close every open window before leaving so nothing sticks
			// around past the main window.
			for _, e := range append([]*views.Entry(nil), a.wins.Entries()...) {
				a.wins.CloseNotify(e)
			}
			return a, tea.Quit
		}
		if msg.status != "" {
			a.status = msg.status
		}
		a.refresh()
		return a, nil
	case tea.KeyMsg:
		switch {
		case a.dlg != nil:
			a.updateDialog(msg)
			return a, nil
		case a.prompted != nil:
			return a, a.updatePrompt(msg)
		case a.pick != nil:
			return a, a.updatePicker(msg)
		case a.busy:
			return a, nil
		}
		return a, a.updateKeys(msg)
	}
	return a, nil
}

// runOp executes fn on a command goroutine so it may block on dialogs.
func (a *App) runOp(fn func(o *opResult)) tea.Cmd {
	a.busy = true
	return func() tea.Msg {
		var o opResult
		fn(&o)
		return opDoneMsg{o}
	}
}

func (a *App) updateDialog(msg tea.KeyMsg) {
	d := a.dlg
	switch d.kind {
	case dialogConfirm:
		switch msg.String() {
		case "y", "Y", "enter":
			a.reply("yes")
		case "n", "N", "esc":
			a.reply("")
		}
	case dialogWarn, dialogInfo:
		switch msg.String() {
		case "enter", "esc", " ":
			a.reply("")
		}
	case dialogSaveName, dialogOpenName:
		switch msg.String() {
		case "enter":
			a.reply(strings.TrimSpace(a.input))
		case "esc":
			a.reply("")
		case "backspace":
			if len(a.input) > 0 {
				a.input = a.input[:len(a.input)-1]
			}
		default:
			if msg.Type == tea.KeyRunes {
				a.input += string(msg.Runes)
			}
		}
	}
}

func (a *App) reply(answer string) {
	a.dlg.reply <- answer
	a.dlg = nil
	a.input = ""
}

func (a *App) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	p := a.prompted
	switch msg.String() {
	case "enter":
		a.prompted = nil
		text := strings.TrimSpace(p.input)
		if text == "" {
			return nil
		}
		return p.submit(text)
	case "esc":
		a.prompted = nil
		return nil
	case "backspace":
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			p.input += string(msg.Runes)
		}
	}
	return nil
}

func (a *App) updatePicker(msg tea.KeyMsg) tea.Cmd {
	p := a.pick
	switch msg.String() {
	case "up":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down":
		if p.cursor < len(p.items)-1 {
			p.cursor++
		}
	case "enter":
		a.pick = nil
		return p.pick(p.cursor)
	case "esc":
		a.pick = nil
	}
	return nil
}

func (a *App) updateKeys(msg tea.KeyMsg) tea.Cmd {
	k := a.keys
	switch {
	case key.Matches(msg, k.Quit):
		return a.runOp(func(o *opResult) {
			o.quit = a.bridge.Confirm("Mission Support",
				"Do you want to close the mission planning application?")
		})

	case key.Matches(msg, k.NextList):
		a.focus = (a.focus + 1) % 3

	case key.Matches(msg, k.UpDown):
		a.moveCursor(msg.String())

	case key.Matches(msg, k.NewTrack):
		template := a.cfg.FlightTrack.Template()
		return a.runOp(func(o *opResult) {
			ft := a.tracks.New(template, true)
			o.status = fmt.Sprintf("created %q", ft.Name())
		})

	case key.Matches(msg, k.OpenTrack):
		return a.runOp(func(o *opResult) {
			path := a.bridge.AskOpenName(fmt.Sprintf("Flight track XML (*%s)", flighttrack.Extension))
			if path == "" {
				return
			}
			if ft := a.tracks.Open(path); ft != nil {
				o.status = fmt.Sprintf("opened %q", ft.Name())
			}
		})

	case key.Matches(msg, k.CloseTrack):
		ft := a.selectedTrack()
		if ft == nil {
			return nil
		}
		return a.runOp(func(o *opResult) {
			if a.tracks.Close(ft) {
				o.status = fmt.Sprintf("closed %q", ft.Name())
			}
		})

	case key.Matches(msg, k.Save):
		ft := a.tracks.Active()
		if ft == nil {
			return nil
		}
		return a.runOp(func(o *opResult) {
			if a.tracks.Save(ft) {
				o.status = fmt.Sprintf("saved to %s", ft.FilePath())
			}
		})

	case key.Matches(msg, k.SaveAs):
		ft := a.tracks.Active()
		if ft == nil {
			return nil
		}
		return a.runOp(func(o *opResult) {
			proposed := filepath.Join(a.cfg.Data.Dir, ft.Name()+flighttrack.Extension)
			path := a.bridge.AskSaveName(proposed)
			if path == "" {
				return
			}
			if a.tracks.SaveAs(ft, path) {
				o.status = fmt.Sprintf("saved to %s", ft.FilePath())
			}
		})

	case key.Matches(msg, k.Rename):
		ft := a.selectedTrack()
		if ft == nil {
			return nil
		}
		a.prompted = &prompt{
			title: "Rename flight track",
			input: ft.Name(),
			submit: func(name string) tea.Cmd {
				return a.runOp(func(o *opResult) {
					a.tracks.Rename(ft, name)
					o.status = fmt.Sprintf("renamed to %q", name)
				})
			},
		}

	case key.Matches(msg, k.Select):
		switch a.focus {
		case focusTracks:
			ft := a.selectedTrack()
			if ft == nil {
				return nil
			}
			return a.runOp(func(o *opResult) {
				a.tracks.SetActive(ft)
				o.status = fmt.Sprintf("active: %s", ft.Name())
			})
		default:
			if e := a.selectedEntry(); e != nil {
				a.wins.Activate(e)
				a.refresh()
			}
		}

	case key.Matches(msg, k.OpenView):
		kinds := views.Kinds()
		items := make([]string, len(kinds))
		for i, kind := range kinds {
			items[i] = kind.String()
		}
		a.pick = &picker{
			title: "Open view or tool",
			items: items,
			pick: func(i int) tea.Cmd {
				kind := kinds[i]
				return a.runOp(func(o *opResult) {
					e := a.wins.Open(views.New(kind), a.tracks.Active())
					o.status = fmt.Sprintf("opened %s", e.Label)
				})
			},
		}

	case key.Matches(msg, k.CloseView):
		if e := a.selectedEntry(); e != nil {
			a.wins.CloseNotify(e)
			a.refresh()
		}

	case key.Matches(msg, k.Import):
		filters := a.host.Table.Imports()
		if len(filters) == 0 {
			return nil
		}
		items := make([]string, len(filters))
		for i, f := range filters {
			items[i] = fmt.Sprintf("%s (*.%s)", f.Name, f.Extension)
		}
		a.pick = &picker{
			title: "Import flight track",
			items: items,
			pick: func(i int) tea.Cmd {
				f := filters[i]
				return a.runOp(func(o *opResult) {
					if ft := a.host.Import(f); ft != nil {
						o.status = fmt.Sprintf("imported %q", ft.Name())
					}
				})
			},
		}

	case key.Matches(msg, k.Export):
		filters := a.host.Table.Exports()
		if len(filters) == 0 {
			return nil
		}
		items := make([]string, len(filters))
		for i, f := range filters {
			items[i] = fmt.Sprintf("%s (*.%s)", f.Name, f.Extension)
		}
		a.pick = &picker{
			title: "Export active flight track",
			items: items,
			pick: func(i int) tea.Cmd {
				f := filters[i]
				return a.runOp(func(o *opResult) {
					a.host.Export(f)
					o.status = fmt.Sprintf("exported via %s", f.Name)
				})
			},
		}
	}
	return nil
}

func (a *App) moveCursor(dir string) {
	limit := 0
	switch a.focus {
	case focusTracks:
		limit = len(a.tracks.Tracks())
	case focusViews:
		limit = len(a.wins.Views())
	case focusTools:
		limit = len(a.wins.Tools())
	}
	c := &a.cursors[a.focus]
	if dir == "up" && *c > 0 {
		*c--
	}
	if dir == "down" && *c < limit-1 {
		*c++
	}
}

func (a *App) selectedTrack() *flighttrack.FlightTrack {
	all := a.tracks.Tracks()
	i := a.cursors[focusTracks]
	if i < 0 || i >= len(all) {
		return nil
	}
	return all[i]
}

func (a *App) selectedEntry() *views.Entry {
	var list []*views.Entry
	var i int
	switch a.focus {
	case focusViews:
		list, i = a.wins.Views(), a.cursors[focusViews]
	case focusTools:
		list, i = a.wins.Tools(), a.cursors[focusTools]
	default:
		return nil
	}
	if i < 0 || i >= len(list) {
		return nil
	}
	return list[i]
}
