package ui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

type dialogKind int

const (
	dialogConfirm dialogKind = iota
	dialogWarn
	dialogInfo
	dialogSaveName
	dialogOpenName
)

// dialogRequestMsg asks the running program to present a modal. The reply
// channel carries "yes"/"" for confirmations, an acknowledgement for
// notices, or the entered file name.
type dialogRequestMsg struct {
	kind     dialogKind
	title    string
	message  string
	proposed string
	reply    chan string
}

// Bridge implements dialog.Dialog against the bubbletea program: each call
// routes a modal request into the event loop and blocks until the user has
// answered, which suspends the operation exactly like a modal dialog does.
// Calls made before Attach (startup) fall back to the log; confirmations
// made there are denied.
type Bridge struct {
	send func(tea.Msg)
	log  *slog.Logger
}

func NewBridge(log *slog.Logger) *Bridge {
	return &Bridge{log: log}
}

// Attach connects the bridge to the running program.
func (b *Bridge) Attach(p *tea.Program) {
	b.send = p.Send
}

// post delivers msg into the event loop. Messages posted before Attach are
// dropped; the first snapshot covers anything that happened during startup.
func (b *Bridge) post(msg tea.Msg) {
	if b.send != nil {
		b.send(msg)
	}
}

func (b *Bridge) ask(kind dialogKind, title, message, proposed string) string {
	if b.send == nil {
		b.log.Warn("dialog before UI start", "title", title, "message", message)
		return ""
	}
	reply := make(chan string, 1)
	b.send(dialogRequestMsg{kind: kind, title: title, message: message, proposed: proposed, reply: reply})
	return <-reply
}

func (b *Bridge) Confirm(title, message string) bool {
	return b.ask(dialogConfirm, title, message, "") == "yes"
}

func (b *Bridge) Warn(title, message string) {
	b.ask(dialogWarn, title, message, "")
}

func (b *Bridge) Info(title, message string) {
	b.ask(dialogInfo, title, message, "")
}

func (b *Bridge) AskSaveName(proposed string) string {
	return b.ask(dialogSaveName, "Save flight track", "Enter file name", proposed)
}

func (b *Bridge) AskOpenName(filter string) string {
	return b.ask(dialogOpenName, "Open file", filter, "")
}
