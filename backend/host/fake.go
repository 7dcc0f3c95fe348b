package host

import "taskbar/backend/models"

// Fake is a scripted Host for tests and dry runs.
type Fake struct {
	Day     int
	HasDay  bool
	Items   map[int64]string
	Due     map[int64]int
	Reviews models.ReviewTotals
}

// NewFake returns a Fake on the given day with no items.
func NewFake(day int) *Fake {
	return &Fake{Day: day, HasDay: true, Items: map[int64]string{}, Due: map[int64]int{}}
}

// Add registers an item with a full hierarchical name and a due count.
func (f *Fake) Add(id int64, name string, due int) *Fake {
	f.Items[id] = name
	f.Due[id] = due
	return f
}

// Remove deletes an item, as if the user deleted it in the host.
func (f *Fake) Remove(id int64) {
	delete(f.Items, id)
	delete(f.Due, id)
}

func (f *Fake) Today() (int, bool) { return f.Day, f.HasDay }

func (f *Fake) Counts() map[int64]int {
	out := make(map[int64]int, len(f.Due))
	for id, n := range f.Due {
		out[id] = n
	}
	return out
}

// Tree returns a flat tree; names keep their full path.
func (f *Fake) Tree() models.DueNode {
	root := models.DueNode{}
	for id, name := range f.Items {
		root.Children = append(root.Children, models.DueNode{ID: id, Name: name, Review: f.Due[id]})
	}
	return root
}

func (f *Fake) Name(id int64) (string, bool) {
	name, ok := f.Items[id]
	return name, ok
}

func (f *Fake) Exists(id int64) bool {
	_, ok := f.Items[id]
	return ok
}

func (f *Fake) ReviewTotals() models.ReviewTotals { return f.Reviews }
