package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/jotter/internal/app"
	"github.com/marcus/jotter/internal/clipboard"
	"github.com/marcus/jotter/internal/render"
	"github.com/marcus/jotter/internal/styles"
	"github.com/marcus/jotter/internal/theme"
)

func runTUI(f *flags) error {
	var logOut io.Writer = io.Discard
	if lf, err := openLogFile(f); err == nil {
		defer lf.Close()
		logOut = lf
	}
	logger := newLogger(logOut, f.debug)

	e, err := openEnv(f, logger, func(m theme.Mode) { styles.Apply(string(m)) })
	if err != nil {
		return err
	}
	defer e.Close()

	cards := render.NewTerminal(e.renderOptions())
	e.notes.SetRenderer(cards)
	e.notes.Refresh()

	model := app.New(app.Deps{
		Notes:     e.notes,
		Cards:     cards,
		Theme:     e.theme,
		Clipboard: clipboard.System{},
		UI:        e.cfg.UI,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run application: %w", err)
	}
	return nil
}
