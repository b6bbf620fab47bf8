package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/jotter/internal/msg"
	"github.com/marcus/jotter/internal/note"
	"github.com/marcus/jotter/internal/notes"
	"github.com/marcus/jotter/internal/render"
	"github.com/marcus/jotter/internal/ui"
)

// copyDoneMsg carries the outcome of an asynchronous clipboard write.
type copyDoneMsg struct {
	result render.CopyResult
}

// Update implements tea.Model.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.resize(message.Width, message.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(message)

	case copyDoneMsg:
		if message.result.OK {
			return m, msg.ShowToast(message.result.Message, m.ui.ToastDuration)
		}
		return m, msg.ShowError(message.result.Message, m.ui.ToastDuration)

	case msg.ToastMsg:
		m.toastSeq++
		m.toast = message.Message
		m.toastError = message.IsError
		return m, msg.ExpireToast(m.toastSeq, message.Duration)

	case msg.ToastExpiredMsg:
		if message.Seq == m.toastSeq {
			m.toast = ""
			m.toastError = false
		}
		return m, nil
	}

	return m.updateFocused(message)
}

func (m Model) handleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(k, keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.confirm != nil {
		return m.handleConfirmKey(k)
	}

	switch {
	case key.Matches(k, keys.ToggleTheme):
		return m, m.toggleTheme()
	case key.Matches(k, keys.NextFocus):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(k, keys.PrevFocus):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	}

	switch m.focus {
	case FocusTitle, FocusContent:
		return m.handleFormKey(k)
	case FocusSearch:
		return m.handleSearchKey(k)
	default:
		return m.handleListKey(k)
	}
}

func (m Model) handleFormKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, keys.Submit):
		return m, m.submit()
	case m.focus == FocusTitle && key.Matches(k, keys.Enter):
		return m, m.setFocus(FocusContent)
	case key.Matches(k, keys.Escape):
		return m, m.setFocus(FocusList)
	}
	return m.updateFocused(k)
}

func (m Model) handleSearchKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, keys.Escape):
		m.search.Reset()
		m.notes.Filter("")
		m.cursor = 0
		return m, m.setFocus(FocusList)
	case key.Matches(k, keys.Enter):
		return m, m.setFocus(FocusList)
	}

	before := m.search.Value()
	updated, cmd := m.updateFocused(k)
	m = updated.(Model)
	if m.search.Value() != before {
		m.notes.Filter(m.search.Value())
		m.cursor = 0
	}
	return m, cmd
}

func (m Model) handleListKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, keys.Quit):
		return m, tea.Quit
	case key.Matches(k, keys.Down):
		if m.cursor < m.cards.Len()-1 {
			m.cursor++
		}
	case key.Matches(k, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(k, keys.Copy):
		return m, m.copySelected()
	case key.Matches(k, keys.Delete):
		return m, m.deleteSelected()
	case key.Matches(k, keys.ClearAll):
		d := ui.NewConfirmDialog("Clear all notes", notes.ClearPrompt)
		d.ConfirmLabel = " Delete "
		m.confirm = d
	case key.Matches(k, keys.Search):
		return m, m.setFocus(FocusSearch)
	case key.Matches(k, keys.New):
		return m, m.setFocus(FocusTitle)
	}
	return m, nil
}

func (m Model) handleConfirmKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, keys.Confirm):
		return m, m.answerConfirm(true)
	case key.Matches(k, keys.Cancel):
		return m, m.answerConfirm(false)
	case key.Matches(k, keys.Switch):
		m.confirm.Toggle()
	case key.Matches(k, keys.Enter):
		return m, m.answerConfirm(m.confirm.Focus)
	}
	return m, nil
}

// answerConfirm closes the dialog and runs ClearAll with the user's answer.
func (m *Model) answerConfirm(yes bool) tea.Cmd {
	m.confirm = nil
	cleared, err := m.notes.ClearAll(notes.ConfirmFunc(func(string) bool { return yes }))
	if err != nil {
		return msg.ShowError("Clear failed", m.ui.ToastDuration)
	}
	if cleared {
		m.cursor = 0
		m.refilter()
		return msg.ShowToast("All notes deleted", m.ui.ToastDuration)
	}
	return nil
}

// submit adds the note in the form. Empty fields leave the form untouched.
func (m *Model) submit() tea.Cmd {
	_, ok, err := m.notes.AddNote(m.title.Value(), m.content.Value())
	if err != nil {
		return msg.ShowError("Save failed", m.ui.ToastDuration)
	}
	if !ok {
		return nil
	}

	m.title.Reset()
	m.content.Reset()
	m.cursor = 0
	m.refilter()
	return m.setFocus(FocusTitle)
}

func (m *Model) deleteSelected() tea.Cmd {
	card, ok := m.cards.Card(m.cursor)
	if !ok {
		return nil
	}
	if err := m.notes.RemoveNote(card.ID); err != nil {
		return msg.ShowError("Delete failed", m.ui.ToastDuration)
	}
	m.refilter()
	return nil
}

// copySelected writes the selected card's content to the clipboard off the
// event loop.
func (m *Model) copySelected() tea.Cmd {
	card, ok := m.cards.Card(m.cursor)
	if !ok {
		return nil
	}
	clip := m.clip
	n := note.Note{ID: card.ID, Title: card.Title, Content: card.Content}
	return func() tea.Msg {
		return copyDoneMsg{result: render.Copy(clip, n)}
	}
}

func (m *Model) toggleTheme() tea.Cmd {
	if m.theme == nil {
		return nil
	}
	if _, err := m.theme.Toggle(); err != nil {
		return msg.ShowError("Theme not saved", m.ui.ToastDuration)
	}
	return nil
}

// updateFocused forwards message to the focused input.
func (m Model) updateFocused(message tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FocusTitle:
		m.title, cmd = m.title.Update(message)
	case FocusContent:
		m.content, cmd = m.content.Update(message)
	case FocusSearch:
		m.search, cmd = m.search.Update(message)
	}
	return m, cmd
}
