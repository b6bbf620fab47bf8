package ui

import (
	"strings"
	"testing"
)

func TestNewConfirmDialog(t *testing.T) {
	d := NewConfirmDialog("Test Title", "Test message")

	if d.Title != "Test Title" {
		t.Errorf("expected title 'Test Title', got %q", d.Title)
	}
	if d.Message != "Test message" {
		t.Errorf("expected message 'Test message', got %q", d.Message)
	}
	if d.ConfirmLabel != " Confirm " {
		t.Errorf("expected default confirm label ' Confirm ', got %q", d.ConfirmLabel)
	}
	if d.CancelLabel != " Cancel " {
		t.Errorf("expected default cancel label ' Cancel ', got %q", d.CancelLabel)
	}
	if d.Width != ModalWidthMedium {
		t.Errorf("expected width %d, got %d", ModalWidthMedium, d.Width)
	}
	if d.Focus {
		t.Error("cancel should be focused by default")
	}
}

func TestConfirmDialog_Render(t *testing.T) {
	d := NewConfirmDialog("Clear all", "Delete all notes?")
	d.ConfirmLabel = " Delete "

	output := d.Render(80, 24)

	for _, want := range []string{"Clear all", "Delete all notes?", "Delete", "Cancel"} {
		if !strings.Contains(output, want) {
			t.Errorf("render should contain %q", want)
		}
	}
	if lines := strings.Count(output, "\n") + 1; lines != 24 {
		t.Errorf("placed dialog has %d lines, want 24", lines)
	}
}

func TestConfirmDialog_Toggle(t *testing.T) {
	d := NewConfirmDialog("t", "m")
	d.Toggle()
	if !d.Focus {
		t.Error("Toggle should focus confirm")
	}
	d.Toggle()
	if d.Focus {
		t.Error("second Toggle should focus cancel")
	}
}
