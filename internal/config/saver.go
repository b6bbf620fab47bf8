package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary that uses string durations.
type saveConfig struct {
	Storage StorageConfig `json:"storage"`
	UI      saveUIConfig  `json:"ui"`
}

type saveUIConfig struct {
	DateFormat    string `json:"dateFormat,omitempty"`
	ToastDuration string `json:"toastDuration,omitempty"`
	ShowFooter    *bool  `json:"showFooter,omitempty"`
}

// toSaveConfig converts Config to the JSON-serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		Storage: cfg.Storage,
		UI: saveUIConfig{
			DateFormat:    cfg.UI.DateFormat,
			ToastDuration: cfg.UI.ToastDuration.String(),
			ShowFooter:    &cfg.UI.ShowFooter,
		},
	}
}

// Save writes cfg to ConfigPath.
func Save(cfg *Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes cfg to path. Keys in an existing file that Config does not
// manage are preserved.
func SaveTo(path string, cfg *Config) error {
	if path == "" {
		return fmt.Errorf("no config path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	merged := make(map[string]json.RawMessage)
	if data, err := os.ReadFile(path); err == nil {
		// An unreadable existing file is overwritten.
		_ = json.Unmarshal(data, &merged)
	}

	managed, err := json.Marshal(toSaveConfig(cfg))
	if err != nil {
		return err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(managed, &fields); err != nil {
		return err
	}
	for k, v := range fields {
		merged[k] = v
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
