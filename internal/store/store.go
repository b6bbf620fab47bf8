// Package store persists the note list in a single KV slot.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/marcus/jotter/internal/kv"
	"github.com/marcus/jotter/internal/note"
)

// NotesKey is the slot holding the JSON-encoded note list.
const NotesKey = "mini-notes-v1"

// Store is the single source of truth for the note list.
type Store struct {
	kv     kv.KV
	logger *slog.Logger
}

// New returns a Store backed by area.
func New(area kv.KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: area, logger: logger}
}

// Get returns the persisted list, newest first. Nothing persisted, a read
// error and unparseable data all yield an empty list.
//
// Corrupt data is indistinguishable from "no notes" to callers; it is only
// visible in the debug log.
func (s *Store) Get() []note.Note {
	raw, ok, err := s.kv.Get(NotesKey)
	if err != nil {
		s.logger.Debug("store: read failed", "err", err)
		return []note.Note{}
	}
	if !ok || raw == "" {
		return []note.Note{}
	}

	var list []note.Note
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		s.logger.Debug("store: discarding unparseable notes", "err", err)
		return []note.Note{}
	}
	if list == nil {
		return []note.Note{}
	}
	return list
}

// Set replaces the persisted list with list.
func (s *Store) Set(list []note.Note) error {
	if list == nil {
		list = []note.Note{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal notes: %w", err)
	}
	if err := s.kv.Set(NotesKey, string(data)); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}
	return nil
}
