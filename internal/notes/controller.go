// Package notes orchestrates note mutations: it reads and writes the Store and
// re-renders after every change.
package notes

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/marcus/jotter/internal/note"
)

// Seed note written on first load when nothing is persisted.
const (
	SeedTitle   = "Welcome 👋"
	SeedContent = "Add your first note using the form above!"
)

// ClearPrompt is the question put to the Confirmer before ClearAll.
const ClearPrompt = "Delete all notes?"

// Store persists the canonical note list.
type Store interface {
	Get() []note.Note
	Set(list []note.Note) error
}

// Renderer projects a note list into the user-facing surface. It must not
// retain or modify the slice it is given.
type Renderer interface {
	Render(list []note.Note)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(list []note.Note)

func (f RenderFunc) Render(list []note.Note) { f(list) }

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Controller exposes the note operations.
type Controller struct {
	store    Store
	renderer Renderer
	now      func() time.Time
	newID    note.IDFunc
	logger   *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithIDFunc overrides note id generation.
func WithIDFunc(fn note.IDFunc) Option {
	return func(c *Controller) { c.newID = fn }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// New returns a Controller over store that renders through r. A nil r
// discards renders.
func New(store Store, r Renderer, opts ...Option) *Controller {
	c := &Controller{
		store:    store,
		renderer: r,
		now:      time.Now,
		newID:    note.NewID,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.renderer == nil {
		c.renderer = RenderFunc(func([]note.Note) {})
	}
	return c
}

// SetRenderer replaces the renderer. The TUI uses this because its model is
// built after the controller.
func (c *Controller) SetRenderer(r Renderer) {
	if r != nil {
		c.renderer = r
	}
}

// Notes returns a copy of the persisted list.
func (c *Controller) Notes() []note.Note {
	return c.store.Get()
}

// AddNote prepends a new note and re-renders. Title and content are trimmed;
// if either ends up empty nothing happens and ok is false.
func (c *Controller) AddNote(title, content string) (n note.Note, ok bool, err error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return note.Note{}, false, nil
	}

	n = note.New(c.newID, title, content, c.now())
	list := append([]note.Note{n}, c.store.Get()...)
	if err := c.store.Set(list); err != nil {
		c.logger.Error("notes: add failed", "err", err)
		return note.Note{}, false, fmt.Errorf("add note: %w", err)
	}

	c.logger.Debug("notes: added", "id", n.ID)
	c.render(list)
	return n, true, nil
}

// RemoveNote deletes the note with the given id and re-renders. Unknown ids
// leave the list unchanged.
func (c *Controller) RemoveNote(id string) error {
	current := c.store.Get()
	list := make([]note.Note, 0, len(current))
	for _, n := range current {
		if n.ID != id {
			list = append(list, n)
		}
	}

	if err := c.store.Set(list); err != nil {
		c.logger.Error("notes: remove failed", "id", id, "err", err)
		return fmt.Errorf("remove note %s: %w", id, err)
	}

	c.logger.Debug("notes: removed", "id", id, "found", len(list) != len(current))
	c.render(list)
	return nil
}

// Search returns the persisted notes whose title or content contains query,
// ignoring case, in list order. An empty query matches everything.
func (c *Controller) Search(query string) []note.Note {
	return Match(c.store.Get(), query)
}

// Filter renders the result of Search. It backs the search field.
func (c *Controller) Filter(query string) []note.Note {
	list := c.Search(query)
	c.render(list)
	return list
}

// ClearAll empties the list after confirm agrees. It reports whether the
// list was cleared.
func (c *Controller) ClearAll(confirm Confirmer) (bool, error) {
	if confirm == nil || !confirm.Confirm(ClearPrompt) {
		return false, nil
	}

	if err := c.store.Set([]note.Note{}); err != nil {
		c.logger.Error("notes: clear failed", "err", err)
		return false, fmt.Errorf("clear notes: %w", err)
	}

	c.logger.Debug("notes: cleared")
	c.render([]note.Note{})
	return true, nil
}

// Seed writes the welcome note when the persisted list is empty. It reports
// whether a note was written.
func (c *Controller) Seed() (bool, error) {
	if len(c.store.Get()) > 0 {
		return false, nil
	}

	seed := note.New(c.newID, SeedTitle, SeedContent, c.now())
	if err := c.store.Set([]note.Note{seed}); err != nil {
		return false, fmt.Errorf("seed notes: %w", err)
	}
	return true, nil
}

// Refresh renders the full persisted list.
func (c *Controller) Refresh() {
	c.render(c.store.Get())
}

func (c *Controller) render(list []note.Note) {
	c.renderer.Render(note.Clone(list))
}

// Match filters list by a case-insensitive substring of title or content.
// The result never aliases list.
func Match(list []note.Note, query string) []note.Note {
	if query == "" {
		return note.Clone(list)
	}

	q := strings.ToLower(query)
	out := make([]note.Note, 0, len(list))
	for _, n := range list {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q) {
			out = append(out, n)
		}
	}
	return out
}
