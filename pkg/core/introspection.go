package core

import (
	"github.com/aretw0/introspection"
)

// SessionState exposes internal state for observability.
type SessionState struct {
	NoteCount     int    `json:"note_count"`
	SelectedColor string `json:"selected_color"`
	ChecklistMode bool   `json:"checklist_mode"`
	EditingID     string `json:"editing_id,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Session) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SessionState{
		NoteCount:     s.repo.Len(),
		SelectedColor: s.color,
		ChecklistMode: s.checklist,
		EditingID:     s.editing,
	}
}

// ComponentType implements introspection.Component.
func (s *Session) ComponentType() string {
	return "session"
}

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	NoteCount int `json:"note_count"`
	Pinned    int `json:"pinned"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pinned := 0
	for i := range r.notes {
		if r.notes[i].Pinned {
			pinned++
		}
	}

	return RepositoryState{
		NoteCount: len(r.notes),
		Pinned:    pinned,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "repository"
}

var _ introspection.Introspectable = (*Session)(nil)
var _ introspection.Component = (*Session)(nil)
var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
