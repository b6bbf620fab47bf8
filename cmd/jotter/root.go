package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/marcus/jotter/internal/config"
	"github.com/marcus/jotter/internal/kv"
	"github.com/marcus/jotter/internal/notes"
	"github.com/marcus/jotter/internal/render"
	"github.com/marcus/jotter/internal/store"
	"github.com/marcus/jotter/internal/theme"
)

// flags shared by every command.
type flags struct {
	configPath string
	debug      bool
	ephemeral  bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:           "jotter",
		Short:         "A tiny note-taking widget for the terminal",
		Long:          `jotter keeps short title/content notes in a local store and shows them in a searchable list.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(f)
		},
	}

	root.PersistentFlags().StringVar(&f.configPath, "config", "", "path to config file")
	root.PersistentFlags().BoolVar(&f.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&f.ephemeral, "ephemeral", false, "keep notes in memory only")

	root.AddCommand(
		newAddCmd(f),
		newListCmd(f),
		newRemoveCmd(f),
		newCopyCmd(f),
		newClearCmd(f),
		newThemeCmd(f),
		newExportCmd(f),
		newConfigCmd(f),
		newVersionCmd(),
	)
	return root
}

// resolvedConfigPath is --config when given, else the default location.
func (f *flags) resolvedConfigPath() string {
	if f.configPath != "" {
		return f.configPath
	}
	return config.ConfigPath()
}

// env is everything a command needs, opened from config.
type env struct {
	cfg   *config.Config
	area  kv.KV
	notes *notes.Controller
	theme *theme.Controller
}

func (e *env) Close() error {
	return e.area.Close()
}

func (e *env) renderOptions() render.Options {
	return render.Options{DateLayout: e.cfg.UI.DateFormat}
}

// newLogger logs to w, at debug level when debug is set.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// openEnv loads config, opens the store and seeds it on first use. apply shows
// theme changes and may be nil.
func openEnv(f *flags, logger *slog.Logger, apply theme.Applier) (*env, error) {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if f.ephemeral {
		cfg.Storage.Backend = kv.BackendMemory
	}

	area, err := kv.Open(kv.Options{
		Backend: cfg.Storage.Backend,
		Path:    cfg.Storage.Path,
		Driver:  cfg.Storage.Driver,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("store opened", "backend", cfg.Storage.Backend, "path", cfg.Storage.Path)

	ctrl := notes.New(store.New(area, logger), nil, notes.WithLogger(logger))
	if seeded, err := ctrl.Seed(); err != nil {
		logger.Warn("seeding welcome note failed", "err", err)
	} else if seeded {
		logger.Debug("seeded welcome note")
	}

	themes := theme.New(area, apply, logger)
	themes.Init()

	return &env{cfg: cfg, area: area, notes: ctrl, theme: themes}, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// openLogFile returns the TUI log destination next to the config file in use.
// Logging to stderr would draw over the alt screen.
func openLogFile(f *flags) (io.WriteCloser, error) {
	path := f.resolvedConfigPath()
	if path == "" {
		return nil, fmt.Errorf("no config dir")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "jotter.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}
