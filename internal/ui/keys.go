package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NewTrack   key.Binding
	OpenTrack  key.Binding
	CloseTrack key.Binding
	Save       key.Binding
	SaveAs     key.Binding
	Rename     key.Binding
	Select     key.Binding
	OpenView   key.Binding
	CloseView  key.Binding
	Import     key.Binding
	Export     key.Binding
	NextList   key.Binding
	UpDown     key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NewTrack:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new track")),
		OpenTrack:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open track")),
		CloseTrack: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "close track")),
		Save:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		SaveAs:     key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "save as")),
		Rename:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select/activate")),
		OpenView:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "open view/tool")),
		CloseView:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close window")),
		Import:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import")),
		Export:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		NextList:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch list")),
		UpDown:     key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
