// Package cardbox is a local, single-user note keeper. Notes are short
// text or checklist cards kept in one ordered collection, persisted as
// a single JSON blob, and projected into pinned/unpinned views for
// rendering.
//
// The root package is a thin facade over pkg/core (entity, repository,
// projector, commands) and pkg/store (slot persistence). The cardbox
// CLI under cmd/cardbox is one presentation layer; the library works
// headless.
//
//	session, err := cardbox.Open(ctx, "~/.cardbox/notes.json")
//	if err != nil { ... }
//	added, err := session.Add(ctx, "Groceries", "milk, eggs", nil)
//	pinned, others := session.ProjectedView("milk")
package cardbox
