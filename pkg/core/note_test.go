package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectItems(t *testing.T) {
	tests := []struct {
		name  string
		input []Item
		want  []Item
	}{
		{
			name:  "Blank Item Dropped",
			input: []Item{{Text: "  ", Checked: false}, {Text: "Eggs", Checked: true}},
			want:  []Item{{Text: "Eggs", Checked: true}},
		},
		{
			name:  "All Blank",
			input: []Item{{Text: ""}, {Text: "\t"}},
			want:  []Item{},
		},
		{
			name:  "Nil Input",
			input: nil,
			want:  []Item{},
		},
		{
			name:  "Text Kept Verbatim",
			input: []Item{{Text: "  Milk  "}},
			want:  []Item{{Text: "  Milk  "}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollectItems(tt.input))
		})
	}
}

func TestNewNote(t *testing.T) {
	n := NewNote("  Groceries  ", "  buy milk  ", "teal")

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, "Groceries", n.Title)
	assert.Equal(t, "buy milk", n.Content)
	assert.Equal(t, "teal", n.Color)
	assert.False(t, n.Checklist)
	assert.False(t, n.Pinned)
}

func TestNewChecklistNote(t *testing.T) {
	n := NewChecklistNote("Todo", []Item{{Text: "one"}, {Text: "  "}}, "red")

	assert.True(t, n.Checklist)
	assert.Equal(t, []Item{{Text: "one"}}, n.Items)
	assert.Empty(t, n.Body(), "checklist notes have no text body")
}

func TestNoteIDsAreUniqueAndOrdered(t *testing.T) {
	a := NewNote("a", "x", "white")
	b := NewNote("b", "x", "white")

	require.NotEqual(t, a.ID, b.ID)
	// UUIDv7 ids sort by creation time.
	assert.Less(t, a.ID, b.ID)
}

func TestActiveRepresentation(t *testing.T) {
	plain := Note{Content: "body", Items: []Item{{Text: "stale"}}}
	assert.Equal(t, "body", plain.Body())
	assert.Nil(t, plain.ChecklistItems(), "inactive items must be ignored")

	list := Note{Checklist: true, Content: "stale", Items: []Item{{Text: "a"}}}
	assert.Empty(t, list.Body(), "inactive content must be ignored")
	assert.Equal(t, []Item{{Text: "a"}}, list.ChecklistItems())
}

func TestNormalize(t *testing.T) {
	t.Run("Fills Missing Fields", func(t *testing.T) {
		n := Note{Title: "bare"}
		n.Normalize()

		assert.NotEmpty(t, n.ID)
		assert.Equal(t, DefaultColor(), n.Color)
		assert.NotNil(t, n.Items)
	})

	t.Run("Preserves Unknown Color", func(t *testing.T) {
		n := Note{ID: "1", Color: "chartreuse"}
		n.Normalize()
		assert.Equal(t, "chartreuse", n.Color)
	})

	t.Run("Drops Blank Items", func(t *testing.T) {
		n := Note{ID: "1", Checklist: true, Items: []Item{{Text: " "}, {Text: "keep"}}}
		n.Normalize()
		assert.Equal(t, []Item{{Text: "keep"}}, n.Items)
	})
}
