package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/jotter/internal/note"
	"github.com/marcus/jotter/internal/styles"
)

// Terminal keeps the latest projection for the TUI to draw.
type Terminal struct {
	opts Options
	view View
}

// NewTerminal returns a Terminal renderer showing the empty state.
func NewTerminal(opts Options) *Terminal {
	return &Terminal{opts: opts, view: View{Empty: true}}
}

// Render replaces the current projection with the one for list.
func (t *Terminal) Render(list []note.Note) {
	t.view = Project(list, t.opts)
}

// View returns the current projection.
func (t *Terminal) View() View {
	return t.view
}

// Len returns the number of cards currently shown.
func (t *Terminal) Len() int {
	return len(t.view.Cards)
}

// Card returns the card at i.
func (t *Terminal) Card(i int) (Card, bool) {
	if i < 0 || i >= len(t.view.Cards) {
		return Card{}, false
	}
	return t.view.Cards[i], true
}

// Draw lays out the current projection as cards width columns wide,
// highlighting selected. Output is limited to roughly height lines, keeping
// the selected card visible.
func (t *Terminal) Draw(width, height, selected int) string {
	return Cards(t.view, width, height, selected)
}

// Sanitize strips terminal escape sequences and control characters from user
// text so it cannot restyle or move the cursor.
func Sanitize(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0) {
			return -1
		}
		return r
	}, s)
}

// Cards draws v as a vertical list of bordered cards.
func Cards(v View, width, height, selected int) string {
	if v.Empty {
		return styles.Placeholder.Render(EmptyText)
	}
	if width < 20 {
		width = 20
	}

	// Card border (2) and padding (2).
	inner := width - 4

	rendered := make([]string, len(v.Cards))
	for i, c := range v.Cards {
		rendered[i] = drawCard(c, inner, i == selected)
	}
	return clip(rendered, height, selected)
}

func drawCard(c Card, inner int, selected bool) string {
	created := styles.Muted.Render(c.Created)
	createdWidth := lipgloss.Width(created)

	titleWidth := inner - createdWidth - 1
	if titleWidth < 1 {
		titleWidth = 1
	}
	title := ansi.Truncate(oneLine(Sanitize(c.Title)), titleWidth, "…")
	title = runewidth.FillRight(title, titleWidth)

	var body []string
	for _, line := range strings.Split(Sanitize(c.Content), "\n") {
		body = append(body, styles.Body.Render(ansi.Truncate(line, inner, "…")))
	}

	header := styles.Title.Render(title) + " " + created
	content := lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(body, "\n"))

	style := styles.Card
	if selected {
		style = styles.CardSelected
	}
	return style.Width(inner + 2).Render(content)
}

// clip keeps whole cards around selected within height lines. height <= 0
// disables clipping.
func clip(cards []string, height, selected int) string {
	if height <= 0 {
		return strings.Join(cards, "\n")
	}
	if selected < 0 || selected >= len(cards) {
		selected = 0
	}

	start, end := selected, selected+1
	used := lipgloss.Height(cards[selected])
	for {
		grew := false
		if end < len(cards) && used+lipgloss.Height(cards[end]) <= height {
			used += lipgloss.Height(cards[end])
			end++
			grew = true
		}
		if start > 0 && used+lipgloss.Height(cards[start-1]) <= height {
			start--
			used += lipgloss.Height(cards[start])
			grew = true
		}
		if !grew {
			break
		}
	}
	return strings.Join(cards[start:end], "\n")
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
