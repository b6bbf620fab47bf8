// Package note defines the note record shared by the store, controller and
// renderers.
package note

import (
	"time"

	"github.com/google/uuid"
)

// Note is a single user-authored note. ID and Created never change after
// construction.
type Note struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
	Created int64  `json:"created" yaml:"created"` // epoch milliseconds
}

// IDFunc generates note identifiers.
type IDFunc func() string

// NewID returns a random UUID string.
func NewID() string {
	return uuid.NewString()
}

// New builds a note with a fresh id stamped at now.
func New(id IDFunc, title, content string, now time.Time) Note {
	if id == nil {
		id = NewID
	}
	return Note{
		ID:      id(),
		Title:   title,
		Content: content,
		Created: now.UnixMilli(),
	}
}

// CreatedAt returns the creation timestamp as a time.Time.
func (n Note) CreatedAt() time.Time {
	return time.UnixMilli(n.Created)
}

// Clone returns a copy of list that shares no backing array with it.
func Clone(list []Note) []Note {
	out := make([]Note, len(list))
	copy(out, list)
	return out
}
