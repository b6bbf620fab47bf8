// Package app implements the jotter TUI.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/jotter/internal/clipboard"
	"github.com/marcus/jotter/internal/config"
	"github.com/marcus/jotter/internal/notes"
	"github.com/marcus/jotter/internal/render"
	"github.com/marcus/jotter/internal/theme"
	"github.com/marcus/jotter/internal/ui"
)

// Focus identifies the widget receiving key input.
type Focus int

const (
	FocusTitle Focus = iota
	FocusContent
	FocusSearch
	FocusList
	focusCount
)

const (
	minWidth  = 40
	minHeight = 16

	// Rows used by everything except the card list.
	chromeHeight = 15
)

// Deps are the collaborators the model drives.
type Deps struct {
	Notes     *notes.Controller
	Cards     *render.Terminal // must be the controller's renderer
	Theme     *theme.Controller
	Clipboard clipboard.Writer
	UI        config.UIConfig
}

// Model is the root bubbletea model.
type Model struct {
	notes *notes.Controller
	cards *render.Terminal
	theme *theme.Controller
	clip  clipboard.Writer
	ui    config.UIConfig

	title   textinput.Model
	content textarea.Model
	search  textinput.Model
	focus   Focus
	cursor  int

	confirm *ui.ConfirmDialog

	toast      string
	toastError bool
	toastSeq   int

	width  int
	height int
	ready  bool
}

// New builds the model. The caller seeds and renders the controller first so
// the initial card list is already projected.
func New(d Deps) Model {
	if d.Clipboard == nil {
		d.Clipboard = clipboard.System{}
	}
	if d.UI.ToastDuration <= 0 {
		d.UI.ToastDuration = 2 * time.Second
	}

	title := textinput.New()
	title.Placeholder = "Title"
	title.Prompt = ""
	title.CharLimit = 200

	content := textarea.New()
	content.Placeholder = "Write a note…"
	content.ShowLineNumbers = false
	content.SetHeight(3)

	search := textinput.New()
	search.Placeholder = "Search notes"
	search.Prompt = "/ "

	m := Model{
		notes:   d.Notes,
		cards:   d.Cards,
		theme:   d.Theme,
		clip:    d.Clipboard,
		ui:      d.UI,
		title:   title,
		content: content,
		search:  search,
	}
	m.setFocus(FocusTitle)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// setFocus moves key input to f.
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	m.title.Blur()
	m.content.Blur()
	m.search.Blur()

	switch f {
	case FocusTitle:
		return m.title.Focus()
	case FocusContent:
		return m.content.Focus()
	case FocusSearch:
		return m.search.Focus()
	}
	return nil
}

// resize applies the terminal size to the inputs.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.ready = true

	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	m.title.Width = inner
	m.search.Width = inner - 2
	m.content.SetWidth(inner)
}

// clampCursor keeps the list cursor on an existing card.
func (m *Model) clampCursor() {
	n := m.cards.Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// refilter re-applies the search query after the controller rendered the full
// list.
func (m *Model) refilter() {
	if q := m.search.Value(); q != "" {
		m.notes.Filter(q)
	}
	m.clampCursor()
}
