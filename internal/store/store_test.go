package store

import (
	"encoding/json"
	"testing"

	"github.com/marcus/jotter/internal/kv"
	"github.com/marcus/jotter/internal/note"
)

func TestGet_Empty(t *testing.T) {
	s := New(kv.NewMemory(), nil)
	got := s.Get()
	if got == nil || len(got) != 0 {
		t.Errorf("Get() on empty area = %#v, want empty non-nil slice", got)
	}
}

func TestSetGet_RoundTrip(t *testing.T) {
	s := New(kv.NewMemory(), nil)
	list := []note.Note{
		{ID: "b", Title: "Todo", Content: "buy milk", Created: 2},
		{ID: "a", Title: "Shopping", Content: "milk", Created: 1},
	}
	if err := s.Set(list); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got := s.Get()
	if len(got) != len(list) {
		t.Fatalf("Get() len = %d, want %d", len(got), len(list))
	}
	for i := range list {
		if got[i] != list[i] {
			t.Errorf("Get()[%d] = %+v, want %+v", i, got[i], list[i])
		}
	}
}

func TestGet_ParseFailureIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"garbage", "not json"},
		{"object", `{"id":"a"}`},
		{"null", "null"},
		{"empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area := kv.NewMemory()
			area.Set(NotesKey, tt.raw)
			if got := New(area, nil).Get(); len(got) != 0 {
				t.Errorf("Get() = %v, want empty", got)
			}
		})
	}
}

func TestSet_WireFormat(t *testing.T) {
	area := kv.NewMemory()
	s := New(area, nil)
	s.Set([]note.Note{{ID: "x", Title: "t", Content: "c", Created: 1700000000000}})

	raw, _, _ := area.Get(NotesKey)
	var decoded []map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("slot is not a JSON array: %v", err)
	}
	for _, field := range []string{"id", "title", "content", "created"} {
		if _, ok := decoded[0][field]; !ok {
			t.Errorf("missing field %q in %s", field, raw)
		}
	}
	if created, _ := decoded[0]["created"].(float64); created != 1700000000000 {
		t.Errorf("created = %v, want epoch millis number", decoded[0]["created"])
	}
}

func TestSet_NilWritesEmptyArray(t *testing.T) {
	area := kv.NewMemory()
	New(area, nil).Set(nil)
	if raw, _, _ := area.Get(NotesKey); raw != "[]" {
		t.Errorf("slot = %q, want []", raw)
	}
}

func TestSet_PropagatesWriteError(t *testing.T) {
	area := kv.NewMemory()
	area.Close()
	if err := New(area, nil).Set(nil); err == nil {
		t.Error("Set on closed area should fail")
	}
}
