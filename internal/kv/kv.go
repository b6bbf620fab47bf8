// Package kv provides the persistent key-value area that jotter keeps its
// slots in. Each slot holds a single string value.
package kv

import (
	"errors"
	"fmt"
	"log/slog"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrClosed is returned by a KV after Close.
var ErrClosed = errors.New("kv: closed")

// KV is a process-wide, restart-surviving key-value area.
type KV interface {
	// Get returns the value stored under key. ok is false when the slot is unset.
	Get(key string) (value string, ok bool, err error)
	// Set replaces the value stored under key.
	Set(key, value string) error
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend string // "file" (default), "sqlite" or "memory"
	Path    string // file or database path; ignored for memory
	Driver  string // database/sql driver for sqlite: "sqlite3" or "sqlite"
	Logger  *slog.Logger
}

// Open returns the backend described by opts.
func Open(opts Options) (KV, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	switch opts.Backend {
	case "", BackendFile:
		f, err := OpenFile(opts.Path, logger)
		if err != nil {
			return nil, err
		}
		return f, nil
	case BackendSQLite:
		s, err := OpenSQLite(opts.Path, opts.Driver)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
