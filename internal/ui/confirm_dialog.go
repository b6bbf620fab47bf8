// Package ui provides shared UI components for the TUI.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/jotter/internal/styles"
)

// ModalWidthMedium is the default dialog width.
const ModalWidthMedium = 44

// ConfirmDialog is a yes/no confirmation modal.
type ConfirmDialog struct {
	Title        string
	Message      string
	ConfirmLabel string // e.g., " Delete ", " Yes "
	CancelLabel  string // e.g., " Cancel ", " No "
	Width        int

	// Focus is true when the confirm button is selected. Cancel is selected by
	// default so a stray enter does not destroy anything.
	Focus bool
}

// NewConfirmDialog creates a dialog with sensible defaults.
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:        title,
		Message:      message,
		ConfirmLabel: " Confirm ",
		CancelLabel:  " Cancel ",
		Width:        ModalWidthMedium,
	}
}

// Toggle moves focus to the other button.
func (d *ConfirmDialog) Toggle() {
	d.Focus = !d.Focus
}

// Render draws the dialog centered in a width x height area.
func (d *ConfirmDialog) Render(width, height int) string {
	confirm, cancel := styles.Button, styles.ButtonFocused
	if d.Focus {
		confirm, cancel = styles.ButtonFocused, styles.Button
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		confirm.Render(d.ConfirmLabel),
		"  ",
		cancel.Render(d.CancelLabel),
	)

	body := strings.Join([]string{
		styles.Title.Render(d.Title),
		"",
		styles.Body.Render(d.Message),
		"",
		buttons,
		"",
		styles.Muted.Render("y confirm · n/esc cancel · tab switch"),
	}, "\n")

	box := styles.ModalBox.Width(d.Width).Render(body)
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
