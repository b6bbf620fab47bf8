package theme

import (
	"testing"

	"github.com/marcus/jotter/internal/kv"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		set    bool
		want   Mode
	}{
		{"unset defaults to dark", "", false, Dark},
		{"light", "light", true, Light},
		{"dark", "dark", true, Dark},
		{"unknown value", "sepia", true, Dark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area := kv.NewMemory()
			if tt.set {
				area.Set(Key, tt.stored)
			}

			var applied []Mode
			c := New(area, func(m Mode) { applied = append(applied, m) }, nil)
			if got := c.Init(); got != tt.want {
				t.Errorf("Init() = %q, want %q", got, tt.want)
			}
			if len(applied) != 1 || applied[0] != tt.want {
				t.Errorf("applied = %v, want [%s]", applied, tt.want)
			}
		})
	}
}

func TestToggle(t *testing.T) {
	area := kv.NewMemory()
	var applied Mode
	c := New(area, func(m Mode) { applied = m }, nil)
	c.Init()

	got, err := c.Toggle()
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if got != Light || applied != Light || c.Current() != Light {
		t.Errorf("after Toggle: got %q applied %q current %q, want light", got, applied, c.Current())
	}
	if raw, _, _ := area.Get(Key); raw != "light" {
		t.Errorf("persisted %q, want light", raw)
	}

	c.Toggle()
	if raw, _, _ := area.Get(Key); raw != "dark" {
		t.Errorf("persisted %q, want dark", raw)
	}

	// A fresh controller sees the persisted value.
	if got := New(area, nil, nil).Init(); got != Dark {
		t.Errorf("reloaded mode = %q, want dark", got)
	}
}

func TestToggle_PersistError(t *testing.T) {
	area := kv.NewMemory()
	c := New(area, nil, nil)
	c.Init()
	area.Close()

	got, err := c.Toggle()
	if err == nil {
		t.Error("Toggle on closed area should report error")
	}
	if got != Light {
		t.Errorf("mode should still flip, got %q", got)
	}
}
