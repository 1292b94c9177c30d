package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Session is the command surface the presentation layer talks to. It
// orchestrates the repository, carries the ephemeral UI state the Add
// command reads at invocation time (selected color, checklist mode,
// the id open in the editor), and emits the view-stale signal after
// every mutating command.
//
// Commands are synchronous: when one returns, the mutation is applied
// and persisted. Expected no-ops (stale ids, empty submissions,
// cross-partition swaps) report false rather than an error.
type Session struct {
	repo   *Repository
	logger *slog.Logger

	mu        sync.Mutex
	color     string
	checklist bool
	editing   string
	listeners []func(Event)
}

// NewSession creates a session over the repository. The selected color
// starts at the palette default and checklist mode starts off.
func NewSession(repo *Repository, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{repo: repo, logger: logger, color: DefaultColor()}
}

// Repository exposes the underlying repository (read paths, status).
func (s *Session) Repository() *Repository {
	return s.repo
}

// OnChange registers a listener for the view-stale signal. Listeners
// run synchronously on the mutating goroutine; keep them cheap.
func (s *Session) OnChange(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// ProjectedView recomputes the render views for the current collection.
func (s *Session) ProjectedView(query string) (pinned, others []Note) {
	return Project(s.repo.Notes(), query)
}

// --- Ephemeral UI state ---

// SelectColor sets the color new notes will carry. Non-palette values
// are rejected.
func (s *Session) SelectColor(c string) bool {
	if !IsPaletteColor(c) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.color = c
	return true
}

// SelectedColor returns the color the next Add will use.
func (s *Session) SelectedColor() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.color
}

// SetChecklistMode switches the Add command between plain and checklist
// note creation.
func (s *Session) SetChecklistMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checklist = on
}

// ChecklistMode reports whether Add will create checklist notes.
func (s *Session) ChecklistMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checklist
}

// OpenEditor marks a note as open for editing. Delete closes the
// session as a side effect when it removes that note.
func (s *Session) OpenEditor(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = id
}

// CloseEditor discards the editing state without touching the note.
func (s *Session) CloseEditor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = ""
}

// EditingID returns the id open in the editor, or "" when none.
func (s *Session) EditingID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing
}

// --- Mutation commands ---

// Add creates a note from the submitted fields and the session's
// selected color and checklist mode. An empty submission (no title and
// no content, or no title and no surviving items in checklist mode) is
// reported as not added; nothing is created or persisted.
func (s *Session) Add(ctx context.Context, title, content string, items []Item) (added bool, err error) {
	s.mu.Lock()
	color, checklist := s.color, s.checklist
	s.mu.Unlock()

	title = strings.TrimSpace(title)

	var n Note
	if checklist {
		collected := CollectItems(items)
		if title == "" && len(collected) == 0 {
			return false, nil
		}
		n = NewChecklistNote(title, collected, color)
	} else {
		content = strings.TrimSpace(content)
		if title == "" && content == "" {
			return false, nil
		}
		n = NewNote(title, content, color)
	}

	if err := s.repo.Add(ctx, n); err != nil {
		return false, err
	}
	s.notify(newEvent(EventCreate, n.ID))
	return true, nil
}

// Edit replaces the editable fields of a note. The title is trimmed;
// checklist notes get the freshly collected item list, plain notes the
// trimmed content. A stale id is a silent no-op.
func (s *Session) Edit(ctx context.Context, id, title, content string, items []Item) (found bool, err error) {
	found, err = s.repo.UpdateByID(ctx, id, func(n *Note) {
		n.Title = strings.TrimSpace(title)
		if n.Checklist {
			n.Items = CollectItems(items)
		} else {
			n.Content = strings.TrimSpace(content)
		}
	})
	if err != nil || !found {
		return found, err
	}
	s.notify(newEvent(EventModify, id))
	return true, nil
}

// Delete removes a note. If that note was open for editing the edit
// session is closed as a side effect.
func (s *Session) Delete(ctx context.Context, id string) (found bool, err error) {
	s.mu.Lock()
	if s.editing == id {
		s.editing = ""
	}
	s.mu.Unlock()

	found, err = s.repo.DeleteByID(ctx, id)
	if err != nil || !found {
		return found, err
	}
	s.notify(newEvent(EventDelete, id))
	return true, nil
}

// TogglePin flips a note's pinned flag.
func (s *Session) TogglePin(ctx context.Context, id string) (found bool, err error) {
	found, err = s.repo.UpdateByID(ctx, id, func(n *Note) {
		n.Pinned = !n.Pinned
	})
	if err != nil || !found {
		return found, err
	}
	s.notify(newEvent(EventModify, id))
	return true, nil
}

// CycleColor advances a note's color to the next palette entry.
func (s *Session) CycleColor(ctx context.Context, id string) (found bool, err error) {
	found, err = s.repo.UpdateByID(ctx, id, func(n *Note) {
		n.Color = NextColor(n.Color)
	})
	if err != nil || !found {
		return found, err
	}
	s.notify(newEvent(EventModify, id))
	return true, nil
}

// Reorder swaps two notes (drop-on-another-card). Cross-partition swaps
// are refused without persisting.
func (s *Session) Reorder(ctx context.Context, idA, idB string) (swapped bool, err error) {
	swapped, err = s.repo.Swap(ctx, idA, idB)
	if err != nil || !swapped {
		return swapped, err
	}
	s.notify(newEvent(EventReorder, idA))
	return true, nil
}

// ReorderToEnd moves a note to the end of its partition
// (drop-on-empty-area).
func (s *Session) ReorderToEnd(ctx context.Context, id string, pinnedGroup bool) (moved bool, err error) {
	moved, err = s.repo.MoveToEnd(ctx, id, pinnedGroup)
	if err != nil || !moved {
		return moved, err
	}
	s.notify(newEvent(EventReorder, id))
	return true, nil
}

// Import replaces the whole collection with an externally supplied JSON
// payload. The top level must be an array; anything else is rejected
// without mutating. Individual notes are taken best-effort with
// defensive defaults, never rejected.
func (s *Session) Import(ctx context.Context, data []byte) (count int, err error) {
	var top any
	if err := json.Unmarshal(data, &top); err != nil {
		return 0, fmt.Errorf("invalid json: %w", err)
	}
	raw, ok := top.([]any)
	if !ok {
		return 0, ErrNotAnArray
	}

	notes := make([]Note, 0, len(raw))
	for _, elem := range raw {
		buf, err := json.Marshal(elem)
		if err != nil {
			continue
		}
		var n Note
		if err := json.Unmarshal(buf, &n); err != nil {
			s.logger.Warn("skipping malformed note in import", "error", err)
			continue
		}
		n.Normalize()
		notes = append(notes, n)
	}

	if err := s.repo.ReplaceAll(ctx, notes); err != nil {
		return 0, err
	}
	s.notify(newEvent(EventReplace, ""))
	return len(notes), nil
}

// Export serializes the full collection as pretty-printed JSON. Pure
// read, no mutation.
func (s *Session) Export() ([]byte, error) {
	data, err := json.MarshalIndent(s.repo.Notes(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize notes: %w", err)
	}
	return data, nil
}

func (s *Session) notify(e Event) {
	s.mu.Lock()
	listeners := make([]func(Event), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(e)
	}
}
