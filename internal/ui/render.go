package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/skyward/msplan/internal/views"
)

const sidebarWidth = 36

// refresh rebuilds the render snapshot from the registries. It runs on the
// event loop only, never while an operation is in flight.
func (a *App) refresh() {
	a.clampCursors()

	active := a.tracks.Active()
	if active != nil {
		a.activeName = active.Name()
	}

	a.trackLines = a.trackLines[:0]
	for i, ft := range a.tracks.Tracks() {
		marker := "  "
		if ft == active {
			marker = "● "
		}
		name := ft.Name()
		if ft.Modified() {
			name += " *"
		}
		cursor := " "
		if a.focus == focusTracks && i == a.cursors[focusTracks] {
			cursor = ">"
		}
		a.trackLines = append(a.trackLines, cursor+marker+name)
	}

	a.viewLines = entryLines(a.wins.Views(), a.wins.Current(), a.focus == focusViews, a.cursors[focusViews])
	a.toolLines = entryLines(a.wins.Tools(), a.wins.Current(), a.focus == focusTools, a.cursors[focusTools])

	paneW := a.width - sidebarWidth - 2
	paneH := a.height - 4
	if current := a.wins.Current(); current != nil && paneW > 0 {
		a.paneBody = current.Window.Render(paneW, paneH, true)
	} else {
		a.paneBody = dimStyle.Render("no view open — press v to open one")
	}
}

func entryLines(entries []*views.Entry, current *views.Entry, focused bool, cursorAt int) []string {
	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		marker := "  "
		if e == current {
			marker = "● "
		}
		cursor := " "
		if focused && i == cursorAt {
			cursor = ">"
		}
		lines = append(lines, cursor+marker+e.Label)
	}
	return lines
}

func (a *App) clampCursors() {
	limits := [3]int{len(a.tracks.Tracks()), len(a.wins.Views()), len(a.wins.Tools())}
	for i := range a.cursors {
		if a.cursors[i] >= limits[i] {
			a.cursors[i] = limits[i] - 1
		}
		if a.cursors[i] < 0 {
			a.cursors[i] = 0
		}
	}
}

func (a *App) View() string {
	if a.width == 0 {
		return "starting…"
	}

	if a.dlg != nil {
		return a.renderModal(a.renderDialog())
	}
	if a.prompted != nil {
		return a.renderModal(a.renderPrompt())
	}
	if a.pick != nil {
		return a.renderModal(a.renderPicker())
	}

	label := labelStyle.Render("active flight track: " + a.activeName)
	sidebar := lipgloss.JoinVertical(lipgloss.Left,
		a.renderList("Flight Tracks", a.trackLines, a.focus == focusTracks),
		a.renderList("Views", a.viewLines, a.focus == focusViews),
		a.renderList("Tools", a.toolLines, a.focus == focusTools),
	)
	main := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", a.paneBody)

	help := footerStyle.Render(
		"n new · o open · w close · s save · S save as · r rename · enter select · " +
			"v view · x close window · i import · e export · tab list · q quit")
	status := statusBarStyle.Width(a.width).Render(a.status)

	return lipgloss.JoinVertical(lipgloss.Left, label, main, help, status)
}

func (a *App) renderList(title string, lines []string, focused bool) string {
	style := listBoxStyle
	if focused {
		style = focusBoxStyle
	}
	body := strings.Join(lines, "\n")
	if body == "" {
		body = dimStyle.Render("(none)")
	}
	return style.Width(sidebarWidth).Render(titleStyle.Render(title) + "\n" + body)
}

func (a *App) renderModal(content string) string {
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		modalStyle.Render(content))
}

func (a *App) renderDialog() string {
	d := a.dlg
	var hint string
	switch d.kind {
	case dialogConfirm:
		hint = "[y]es / [n]o"
	case dialogWarn, dialogInfo:
		hint = "press enter"
	case dialogSaveName, dialogOpenName:
		return fmt.Sprintf("%s\n%s\n\n> %s▌\n\n%s",
			titleStyle.Render(d.title), d.message, a.input,
			dimStyle.Render("enter accept · esc cancel"))
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s",
		titleStyle.Render(d.title), d.message, dimStyle.Render(hint))
}

func (a *App) renderPrompt() string {
	p := a.prompted
	return fmt.Sprintf("%s\n\n> %s▌\n\n%s",
		titleStyle.Render(p.title), p.input,
		dimStyle.Render("enter accept · esc cancel"))
}

func (a *App) renderPicker() string {
	p := a.pick
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.title))
	b.WriteString("\n\n")
	for i, item := range p.items {
		prefix := "  "
		if i == p.cursor {
			prefix = "> "
		}
		b.WriteString(prefix + item + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("enter select · esc cancel"))
	return b.String()
}
