// Package theme owns the light/dark preference. It never touches notes.
package theme

import (
	"fmt"
	"log/slog"

	"github.com/marcus/jotter/internal/kv"
)

// Key is the KV slot holding the preference.
const Key = "theme"

// Mode is the UI color mode.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Default is used when nothing valid is persisted.
const Default = Dark

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == Light || m == Dark
}

// Flip returns the other mode.
func (m Mode) Flip() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

// Applier makes a mode visible.
type Applier func(Mode)

// Controller reads, toggles and persists the mode.
type Controller struct {
	kv      kv.KV
	apply   Applier
	current Mode
	logger  *slog.Logger
}

// New returns a Controller persisting to area. apply may be nil.
func New(area kv.KV, apply Applier, logger *slog.Logger) *Controller {
	if apply == nil {
		apply = func(Mode) {}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{kv: area, apply: apply, current: Default, logger: logger}
}

// Init loads the persisted mode, falling back to Default, and applies it.
func (c *Controller) Init() Mode {
	c.current = Default

	raw, ok, err := c.kv.Get(Key)
	switch {
	case err != nil:
		c.logger.Debug("theme: read failed", "err", err)
	case ok && Mode(raw).Valid():
		c.current = Mode(raw)
	case ok:
		c.logger.Debug("theme: ignoring unknown mode", "value", raw)
	}

	c.apply(c.current)
	return c.current
}

// Toggle flips the mode, persists it and applies it. The mode is applied even
// when persisting fails.
func (c *Controller) Toggle() (Mode, error) {
	c.current = c.current.Flip()
	c.apply(c.current)
	if err := c.kv.Set(Key, string(c.current)); err != nil {
		return c.current, fmt.Errorf("save theme: %w", err)
	}
	return c.current, nil
}

// Current returns the active mode.
func (c *Controller) Current() Mode {
	return c.current
}
