// Package render projects note lists into user-facing output. Projection is a
// pure function of the list; the HTML and terminal renderers only format it.
package render

import (
	"time"

	"github.com/marcus/jotter/internal/note"
)

// DefaultDateLayout formats card timestamps.
const DefaultDateLayout = "Jan 2, 2006 3:04 PM"

// EmptyText is shown in place of the list when there are no notes.
const EmptyText = "No notes yet. Add one above!"

// Options controls timestamp formatting.
type Options struct {
	DateLayout string
	Location   *time.Location // nil means time.Local
}

func (o Options) layout() string {
	if o.DateLayout == "" {
		return DefaultDateLayout
	}
	return o.DateLayout
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

// Card is one projected note. Title and Content are the raw user text; each
// renderer escapes them for its medium.
type Card struct {
	ID      string
	Title   string
	Content string
	Created string
}

// View is the projection of a note list.
type View struct {
	Empty bool
	Cards []Card
}

// Project builds the View for list.
func Project(list []note.Note, opts Options) View {
	if len(list) == 0 {
		return View{Empty: true}
	}

	cards := make([]Card, len(list))
	for i, n := range list {
		cards[i] = Card{
			ID:      n.ID,
			Title:   n.Title,
			Content: n.Content,
			Created: FormatCreated(n, opts),
		}
	}
	return View{Cards: cards}
}

// FormatCreated returns the human-readable creation time of n.
func FormatCreated(n note.Note, opts Options) string {
	return n.CreatedAt().In(opts.location()).Format(opts.layout())
}
