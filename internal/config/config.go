package config

import "time"

// Config is the root configuration structure.
type Config struct {
	Storage StorageConfig `json:"storage"`
	UI      UIConfig      `json:"ui"`
}

// StorageConfig selects where notes and the theme preference are kept.
type StorageConfig struct {
	Backend string `json:"backend"` // "file", "sqlite" or "memory"
	Path    string `json:"path"`    // store file or database path (supports ~ expansion)
	Driver  string `json:"driver"`  // sqlite driver: "sqlite" (pure Go) or "sqlite3" (cgo)
}

// UIConfig configures UI appearance.
type UIConfig struct {
	DateFormat    string        `json:"dateFormat"`    // Go time layout for card timestamps
	ToastDuration time.Duration `json:"toastDuration"` // how long notifications stay visible
	ShowFooter    bool          `json:"showFooter"`
}

const (
	defaultDateFormat    = "Jan 2, 2006 3:04 PM"
	defaultToastDuration = 2 * time.Second
)

// DefaultStoragePath returns the store location used when none is configured.
func DefaultStoragePath(backend string) string {
	if backend == "sqlite" {
		return "~/" + configDir + "/store.db"
	}
	return "~/" + configDir + "/store.json"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "file",
			Path:    DefaultStoragePath("file"),
			Driver:  "sqlite",
		},
		UI: UIConfig{
			DateFormat:    defaultDateFormat,
			ToastDuration: defaultToastDuration,
			ShowFooter:    true,
		},
	}
}

// Validate replaces out-of-range values with defaults.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "file", "sqlite", "memory":
	default:
		c.Storage.Backend = "file"
	}
	switch c.Storage.Driver {
	case "sqlite", "sqlite3":
	default:
		c.Storage.Driver = "sqlite"
	}
	if c.Storage.Path == "" {
		c.Storage.Path = DefaultStoragePath(c.Storage.Backend)
	}
	if c.UI.DateFormat == "" {
		c.UI.DateFormat = defaultDateFormat
	}
	if c.UI.ToastDuration <= 0 {
		c.UI.ToastDuration = defaultToastDuration
	}
	return nil
}
