package platform

import (
	"log/slog"

	"github.com/cardbox-app/cardbox/pkg/store"
)

// Backend names accepted by WithBackend.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// options holds the internal configuration for opening a box.
type options struct {
	store        store.Store
	logger       *slog.Logger
	backend      string
	defaultColor string
}

// Option defines a functional option for configuring cardbox.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		backend: BackendFile,
	}
}

// WithBackend selects the storage backend by name ("file" or "sqlite").
// Defaults to "file".
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithStore injects a custom store (e.g. a mock). If provided, the
// backend selection is skipped.
func WithStore(st store.Store) Option {
	return func(o *options) {
		o.store = st
	}
}

// WithLogger sets the logger for the repository and session.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDefaultColor sets the initially selected color for new notes.
// Non-palette values are ignored.
func WithDefaultColor(c string) Option {
	return func(o *options) {
		o.defaultColor = c
	}
}
