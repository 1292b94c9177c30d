package core

import "time"

// EventType represents the kind of change applied to the collection.
type EventType string

const (
	EventCreate  EventType = "CREATE"
	EventModify  EventType = "MODIFY"
	EventDelete  EventType = "DELETE"
	EventReorder EventType = "REORDER"
	EventReplace EventType = "REPLACE"
)

// Event is the "view is stale" signal emitted after every mutating
// command. ID is empty for whole-collection changes (REPLACE).
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer (events surface in logs).
func (e Event) String() string {
	if e.ID == "" {
		return string(e.Type)
	}
	return string(e.Type) + " " + e.ID
}

func newEvent(t EventType, id string) Event {
	return Event{Type: t, ID: id, Timestamp: time.Now().Unix()}
}
