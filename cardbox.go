package cardbox

import (
	"context"
	"log/slog"

	"github.com/cardbox-app/cardbox/internal/platform"
	"github.com/cardbox-app/cardbox/pkg/core"
	"github.com/cardbox-app/cardbox/pkg/store"
)

// --- Types ---

// Note is a public alias for the note entity.
type Note = core.Note

// Item is a public alias for a checklist entry.
type Item = core.Item

// Session is a public alias for the command surface.
type Session = core.Session

// --- Configuration ---

// Option defines a functional option for configuring cardbox.
type Option = platform.Option

// Backend names.
const (
	BackendFile   = platform.BackendFile
	BackendSQLite = platform.BackendSQLite
)

// WithBackend selects the storage backend by name ("file" or "sqlite").
func WithBackend(name string) Option {
	return platform.WithBackend(name)
}

// WithStore injects a custom storage adapter.
func WithStore(st store.Store) Option {
	return platform.WithStore(st)
}

// WithLogger sets the logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithDefaultColor sets the initially selected color for new notes.
func WithDefaultColor(c string) Option {
	return platform.WithDefaultColor(c)
}

// --- Factory ---

// Open loads the box at path and returns a ready session.
func Open(ctx context.Context, path string, opts ...Option) (*core.Session, error) {
	return platform.Open(ctx, path, opts...)
}

// --- Projection ---

// Project derives the pinned/others render views from a collection and
// a search query.
func Project(notes []Note, query string) (pinned, others []Note) {
	return core.Project(notes, query)
}

// Palette returns the selectable note colors in cycling order.
func Palette() []string {
	return core.Palette()
}
