package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cardbox-app/cardbox/pkg/store"
)

// Repository is the single authority over the note collection. It owns
// the in-memory ordered list and writes it through to the store as a
// whole on every successful mutation, so the durable blob never trails
// the in-memory state.
//
// Collection order is significant: it is the manual-reorder and
// tie-break order within each pinned/unpinned partition. Partitioning
// itself happens in Project, never here.
type Repository struct {
	store  store.Store
	logger *slog.Logger

	mu    sync.RWMutex
	notes []Note
}

// NewRepository creates a repository over the given store. The
// collection is empty until Load is called.
func NewRepository(st store.Store, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{store: st, logger: logger, notes: []Note{}}
}

// Load reads the persisted blob and replaces the in-memory collection.
// A missing, malformed, or non-array blob is a recovered condition: the
// collection becomes empty and a warning is logged. Load never fails
// for bad data, only for transport errors other than absence.
func (r *Repository) Load(ctx context.Context) error {
	data, err := r.store.Load(ctx)
	if errors.Is(err, store.ErrNotFound) {
		r.logger.Warn("no persisted notes found, starting empty")
		r.reset(nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}

	var notes []Note
	if err := json.Unmarshal(data, &notes); err != nil {
		r.logger.Warn("persisted notes are malformed, starting empty", "error", err)
		r.reset(nil)
		return nil
	}

	for i := range notes {
		notes[i].Normalize()
	}
	r.reset(notes)
	return nil
}

// Notes returns a snapshot of the collection in order.
func (r *Repository) Notes() []Note {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Note, len(r.notes))
	copy(out, r.notes)
	return out
}

// Len returns the number of notes in the collection.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.notes)
}

// Add inserts a note at the front of the collection (newest first) and
// persists.
func (r *Repository) Add(ctx context.Context, n Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append([]Note{n}, r.notes...)
	return r.persist(ctx)
}

// UpdateByID applies mutate to the note with the given id and persists.
// A stale id (already-deleted note referenced by a lingering edit
// session) is tolerated as a silent no-op; found reports whether the
// note existed.
func (r *Repository) UpdateByID(ctx context.Context, id string, mutate func(*Note)) (found bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	mutate(&r.notes[idx])
	return true, r.persist(ctx)
}

// DeleteByID removes the note with the given id and persists. A missing
// id is a silent no-op with no persistence call.
func (r *Repository) DeleteByID(ctx context.Context, id string) (found bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	r.notes = append(r.notes[:idx], r.notes[idx+1:]...)
	return true, r.persist(ctx)
}

// ReplaceAll discards the collection and substitutes notes verbatim,
// then persists. Shape validation is the caller's job (see Session.Import).
func (r *Repository) ReplaceAll(ctx context.Context, notes []Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = make([]Note, len(notes))
	copy(r.notes, notes)
	return r.persist(ctx)
}

// Swap exchanges the positions of two notes, only if both share the
// same pinned value. Otherwise (or when either id is missing) nothing
// changes and nothing is persisted.
func (r *Repository) Swap(ctx context.Context, idA, idB string) (swapped bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, b := r.indexOf(idA), r.indexOf(idB)
	if a < 0 || b < 0 || a == b {
		return false, nil
	}
	if r.notes[a].Pinned != r.notes[b].Pinned {
		return false, nil
	}
	r.notes[a], r.notes[b] = r.notes[b], r.notes[a]
	return true, r.persist(ctx)
}

// MoveToEnd reinserts the note with the given id immediately after the
// last note whose pinned value equals pinnedGroup. The note must itself
// belong to that group; otherwise the call is a no-op. When the group
// has no other member the note goes to the end of the collection,
// which renders identically under the stable partition.
func (r *Repository) MoveToEnd(ctx context.Context, id string, pinnedGroup bool) (moved bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexOf(id)
	if idx < 0 || r.notes[idx].Pinned != pinnedGroup {
		return false, nil
	}

	n := r.notes[idx]
	rest := append(r.notes[:idx], r.notes[idx+1:]...)

	insert := len(rest)
	for i := len(rest) - 1; i >= 0; i-- {
		if rest[i].Pinned == pinnedGroup {
			insert = i + 1
			break
		}
	}

	r.notes = append(rest[:insert], append([]Note{n}, rest[insert:]...)...)
	return true, r.persist(ctx)
}

// persist writes the whole collection through to the store. Callers
// must hold the write lock.
func (r *Repository) persist(ctx context.Context) error {
	data, err := json.Marshal(r.notes)
	if err != nil {
		return fmt.Errorf("failed to serialize notes: %w", err)
	}
	if err := r.store.Save(ctx, data); err != nil {
		return fmt.Errorf("failed to persist notes: %w", err)
	}
	return nil
}

// indexOf returns the position of the note with the given id, or -1.
// Callers must hold at least the read lock.
func (r *Repository) indexOf(id string) int {
	for i := range r.notes {
		if r.notes[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *Repository) reset(notes []Note) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if notes == nil {
		notes = []Note{}
	}
	r.notes = notes
}
