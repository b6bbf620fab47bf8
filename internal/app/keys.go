package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	NextFocus   key.Binding
	PrevFocus   key.Binding
	Submit      key.Binding
	ToggleTheme key.Binding

	Up       key.Binding
	Down     key.Binding
	Copy     key.Binding
	Delete   key.Binding
	ClearAll key.Binding
	Search   key.Binding
	New      key.Binding
	Escape   key.Binding

	Confirm key.Binding
	Cancel  key.Binding
	Switch  key.Binding
	Enter   key.Binding
}

var keys = keyMap{
	Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	NextFocus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	PrevFocus:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	Submit:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save note")),
	ToggleTheme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),

	Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
	Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
	Copy:     key.NewBinding(key.WithKeys("y", "c"), key.WithHelp("y", "copy")),
	Delete:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
	ClearAll: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear all")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	New:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	Escape:   key.NewBinding(key.WithKeys("esc")),

	Confirm: key.NewBinding(key.WithKeys("y", "Y")),
	Cancel:  key.NewBinding(key.WithKeys("n", "N", "esc")),
	Switch:  key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l")),
	Enter:   key.NewBinding(key.WithKeys("enter")),
}

// listHints is the footer shown while the card list has focus.
var listHints = []key.Binding{
	keys.Up, keys.Down, keys.Copy, keys.Delete, keys.ClearAll, keys.Search, keys.New, keys.ToggleTheme, keys.Quit,
}

// formHints is the footer shown while a text field has focus.
var formHints = []key.Binding{
	keys.Submit, keys.NextFocus, keys.PrevFocus, keys.ToggleTheme, keys.ForceQuit,
}
