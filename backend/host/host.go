// Package host models the application that owns the items: it supplies the
// day counter, the due-count tree and the item names. The tracker only ever
// reads from it.
package host

import "taskbar/backend/models"

// PathSeparator joins a parent name and a child name.
const PathSeparator = "::"

// Host is the read-only capability the tracker depends on.
type Host interface {
	// Today returns the host's day counter. ok is false until the host
	// has reported one.
	Today() (day int, ok bool)
	// Counts maps every item id to its current due count.
	Counts() map[int64]int
	// Tree returns the due-count tree.
	Tree() models.DueNode
	// Name returns the item's full hierarchical name.
	Name(id int64) (string, bool)
	// Exists reports whether the item still exists.
	Exists(id int64) bool
	// ReviewTotals returns today's review totals.
	ReviewTotals() models.ReviewTotals
}

type index struct {
	counts map[int64]int
	names  map[int64]string
}

// buildIndex flattens the tree. The root node is a container, not an item.
func buildIndex(root models.DueNode) index {
	idx := index{counts: map[int64]int{}, names: map[int64]string{}}
	var walk func(n models.DueNode, parent string)
	walk = func(n models.DueNode, parent string) {
		name := n.Name
		if parent != "" {
			name = parent + PathSeparator + n.Name
		}
		idx.counts[n.ID] = n.Due()
		idx.names[n.ID] = name
		for _, c := range n.Children {
			walk(c, name)
		}
	}
	for _, c := range root.Children {
		walk(c, "")
	}
	return idx
}
