// Package store persists the note collection as a single serialized
// blob held in one named slot. Implementations provide load/save
// primitives only; interpretation of the blob belongs to the caller.
package store

import (
	"context"
	"errors"
)

// Store is the durable slot the repository writes through.
type Store interface {
	// Load returns the current blob, or ErrNotFound if the slot has
	// never been written.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the blob. The write is durable when Save returns.
	Save(ctx context.Context, data []byte) error
}

// Common errors.
var (
	ErrNotFound         = errors.New("store: slot not found")
	ErrWatchUnsupported = errors.New("store: backend does not support watching")
)
