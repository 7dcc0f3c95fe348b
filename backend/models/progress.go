package models

// DayMarker records the host day counter a reset or capture last ran on.
type DayMarker struct {
	Day int `json:"day"`
}

// BaselineSnapshot maps item id to its starting due count for the day.
type BaselineSnapshot struct {
	Counts map[int64]int `json:"counts"`
}

// NewBaselineSnapshot returns an empty snapshot.
func NewBaselineSnapshot() BaselineSnapshot {
	return BaselineSnapshot{Counts: map[int64]int{}}
}

// Selection is the persisted list of tracked item ids.
type Selection struct {
	SelectedItems []int64 `json:"selected_items"`
}

// Task is the progress of one selected item for today.
type Task struct {
	ItemID    int64   `json:"item_id"`
	Name      string  `json:"name"`
	DueStart  int     `json:"due_start"`
	DueNow    int     `json:"due_now"`
	Done      int     `json:"done"`
	Progress  float64 `json:"progress"`
	Completed bool    `json:"completed"`
}

// GroupProgress is the aggregate progress of a set of items.
type GroupProgress struct {
	Progress float64 `json:"progress"`
	DueStart int     `json:"due_start"`
	Done     int     `json:"done"`
}
