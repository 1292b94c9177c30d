package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Item is a single checklist entry.
type Item struct {
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// Note is the central entity of the domain.
// It is either a plain text note (Content) or a checklist (Items),
// discriminated by Checklist. The inactive representation is ignored by
// all consumers; use Body and ChecklistItems instead of reading the
// fields directly.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Checklist bool   `json:"checklist"`
	Items     []Item `json:"items"`
	Color     string `json:"color"`
	Pinned    bool   `json:"pinned"`
}

// NewNote creates a plain text note with a fresh id.
func NewNote(title, content, color string) Note {
	return Note{
		ID:      newID(),
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(content),
		Color:   color,
		Items:   []Item{},
	}
}

// NewChecklistNote creates a checklist note with a fresh id.
// Blank items are dropped at collection time, not at render time.
func NewChecklistNote(title string, items []Item, color string) Note {
	return Note{
		ID:        newID(),
		Title:     strings.TrimSpace(title),
		Checklist: true,
		Items:     CollectItems(items),
		Color:     color,
	}
}

// Body returns the active text body. Empty for checklist notes.
func (n Note) Body() string {
	if n.Checklist {
		return ""
	}
	return n.Content
}

// ChecklistItems returns the active checklist entries. Nil for plain notes.
func (n Note) ChecklistItems() []Item {
	if !n.Checklist {
		return nil
	}
	return n.Items
}

// matches reports whether the note matches an already-normalized
// (trimmed, lower-cased, non-empty) query. The title is checked first;
// only the active representation is consulted after that.
func (n Note) matches(query string) bool {
	if strings.Contains(strings.ToLower(n.Title), query) {
		return true
	}
	if n.Checklist {
		for _, item := range n.Items {
			if strings.Contains(strings.ToLower(item.Text), query) {
				return true
			}
		}
		return false
	}
	return strings.Contains(strings.ToLower(n.Content), query)
}

// Normalize applies defensive defaults to a note that came from outside
// (persisted blob, import payload): nil items become an empty list, blank
// items are dropped, and missing id/color fields are filled in. Unknown
// color values are preserved; NextColor knows how to step past them.
func (n *Note) Normalize() {
	if n.ID == "" {
		n.ID = newID()
	}
	if n.Color == "" {
		n.Color = DefaultColor()
	}
	n.Items = CollectItems(n.Items)
}

// CollectItems filters out entries whose text is empty after trimming.
// The surviving entries keep their text verbatim and their order.
func CollectItems(items []Item) []Item {
	collected := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Text) == "" {
			continue
		}
		collected = append(collected, item)
	}
	return collected
}

// newID returns a globally-ordered unique id. UUIDv7 embeds a
// millisecond timestamp, so ids sort by creation time.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Practically unreachable (entropy exhaustion); fall back to a
		// timestamp so the ordering guarantee survives.
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return id.String()
}
