package core

import "strings"

// Project derives the two render views from a collection and a search
// query. The query is trimmed and lower-cased; an empty query matches
// everything. Filtering and partitioning both preserve collection order
// (stable partition, not a sort), so within each view the manual order
// of the collection is the render order.
//
// An empty pinned view means the pinned section should be hidden; that
// decision belongs to the presentation layer.
func Project(notes []Note, query string) (pinned, others []Note) {
	q := strings.ToLower(strings.TrimSpace(query))

	pinned = []Note{}
	others = []Note{}
	for _, n := range notes {
		if q != "" && !n.matches(q) {
			continue
		}
		if n.Pinned {
			pinned = append(pinned, n)
		} else {
			others = append(others, n)
		}
	}
	return pinned, others
}
