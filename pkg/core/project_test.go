package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func noteIDs(notes []Note) []string {
	ids := make([]string, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}
	return ids
}

func TestProjectEmptyQueryPartitions(t *testing.T) {
	collection := []Note{
		{ID: "1", Title: "A", Pinned: false},
		{ID: "2", Title: "B", Pinned: true},
	}

	pinned, others := Project(collection, "")

	assert.Equal(t, []string{"2"}, noteIDs(pinned))
	assert.Equal(t, []string{"1"}, noteIDs(others))
}

func TestProjectPreservesCollectionOrder(t *testing.T) {
	// Partition is stable: each view is the collection order restricted
	// to that partition.
	collection := []Note{
		{ID: "1", Pinned: true},
		{ID: "2", Pinned: false},
		{ID: "3", Pinned: true},
		{ID: "4", Pinned: false},
		{ID: "5", Pinned: true},
	}

	pinned, others := Project(collection, "")

	assert.Equal(t, []string{"1", "3", "5"}, noteIDs(pinned))
	assert.Equal(t, []string{"2", "4"}, noteIDs(others))
}

func TestProjectQueryMatching(t *testing.T) {
	collection := []Note{
		{ID: "title", Title: "Shopping for Milk"},
		{ID: "content", Title: "Reminder", Content: "buy milk today"},
		{ID: "item", Title: "List", Checklist: true, Items: []Item{{Text: "Milk"}, {Text: "Eggs"}}},
		{ID: "none", Title: "Work", Content: "quarterly report"},
		{ID: "inactive", Title: "Plain", Content: "nothing", Items: []Item{{Text: "milk ghost"}}},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "Case Insensitive", query: "Milk", want: []string{"title", "content", "item"}},
		{name: "Whitespace Trimmed", query: "  milk  ", want: []string{"title", "content", "item"}},
		{name: "No Match", query: "zebra", want: []string{}},
		{name: "Empty Matches All", query: "", want: []string{"title", "content", "item", "none", "inactive"}},
		{name: "Title Match On Checklist", query: "list", want: []string{"item"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, others := Project(collection, tt.query)
			assert.Equal(t, tt.want, noteIDs(others))
		})
	}
}

func TestProjectIgnoresInactiveRepresentation(t *testing.T) {
	// A plain note carrying leftover checklist items must not match
	// through them.
	collection := []Note{
		{ID: "x", Title: "Plain", Content: "nothing", Items: []Item{{Text: "milk ghost"}}},
	}
	_, others := Project(collection, "milk")
	assert.Empty(t, others)
}

func TestProjectFilteredIsSubset(t *testing.T) {
	collection := []Note{
		{ID: "1", Title: "alpha", Pinned: true},
		{ID: "2", Title: "beta"},
		{ID: "3", Title: "alphabet"},
	}

	allPinned, allOthers := Project(collection, "")
	pinned, others := Project(collection, "alpha")

	full := map[string]bool{}
	for _, n := range append(allPinned, allOthers...) {
		full[n.ID] = true
	}
	for _, n := range append(pinned, others...) {
		assert.True(t, full[n.ID], "filtered result must be a subset of the unfiltered projection")
	}
	assert.Equal(t, []string{"1"}, noteIDs(pinned))
	assert.Equal(t, []string{"3"}, noteIDs(others))
}

func TestProjectEmptyPinnedSignalsHiddenSection(t *testing.T) {
	collection := []Note{{ID: "1", Title: "A"}}

	pinned, others := Project(collection, "")

	assert.NotNil(t, pinned)
	assert.Empty(t, pinned, "empty pinned view signals a hidden pinned section")
	assert.Len(t, others, 1)
}
