package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/jotter/internal/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.width < minWidth || m.height < minHeight {
		msg := fmt.Sprintf("Terminal too small (%dx%d)\nMinimum: %dx%d",
			m.width, m.height, minWidth, minHeight)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			styles.Muted.Render(msg))
	}

	if m.confirm != nil {
		return m.confirm.Render(m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.field(m.title.View(), m.focus == FocusTitle))
	b.WriteString("\n")
	b.WriteString(m.field(m.content.View(), m.focus == FocusContent))
	b.WriteString("\n")
	b.WriteString(m.field(m.search.View(), m.focus == FocusSearch))
	b.WriteString("\n")

	listHeight := m.height - chromeHeight
	if !m.ui.ShowFooter {
		listHeight++
	}
	selected := -1
	if m.focus == FocusList {
		selected = m.cursor
	}
	b.WriteString(m.cards.Draw(m.width, listHeight, selected))
	b.WriteString("\n")

	b.WriteString(m.renderToast())
	if m.ui.ShowFooter {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}

	return lipgloss.NewStyle().Width(m.width).Height(m.height).MaxHeight(m.height).Render(b.String())
}

func (m Model) renderHeader() string {
	mode := styles.GetTheme(styles.Dark).DisplayName
	if m.theme != nil {
		mode = styles.GetTheme(string(m.theme.Current())).DisplayName
	}
	count := m.cards.Len()
	suffix := "s"
	if count == 1 {
		suffix = ""
	}
	return styles.Header.Render("Mini Notes") + "  " +
		styles.Muted.Render(fmt.Sprintf("%d note%s · %s", count, suffix, mode))
}

func (m Model) field(content string, focused bool) string {
	style := styles.Input
	if focused {
		style = styles.InputFocused
	}
	return style.Width(m.width - 2).Render(content)
}

func (m Model) renderToast() string {
	if m.toast == "" {
		return ""
	}
	if m.toastError {
		return styles.ToastError.Render(m.toast)
	}
	return styles.ToastSuccess.Render(m.toast)
}

func (m Model) renderFooter() string {
	hints := formHints
	if m.focus == FocusList {
		hints = listHints
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		help := h.Help()
		parts = append(parts, styles.KeyHint.Render(help.Key)+" "+help.Desc)
	}
	return styles.Footer.Render(strings.Join(parts, "  "))
}
