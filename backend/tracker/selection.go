package tracker

import (
	"log"
	"strings"

	"taskbar/backend/host"
	"taskbar/backend/jsonfile"
	"taskbar/backend/kvstore"
	"taskbar/backend/models"
)

const keySelectionResetDay = "selection_reset_day"

// SelectionManager owns the ordered list of tracked item ids.
type SelectionManager struct {
	path      string
	kv        kvstore.Store
	host      host.Host
	snapshots *SnapshotManager
	logger    *log.Logger
}

func NewSelectionManager(path string, kv kvstore.Store, h host.Host, snapshots *SnapshotManager, logger *log.Logger) *SelectionManager {
	return &SelectionManager{path: path, kv: kv, host: h, snapshots: snapshots, logger: logger}
}

// Load returns the tracked ids in insertion order. The first load of a
// host day empties the selection and the baseline, so the user opts in to
// tracked items again each day.
func (m *SelectionManager) Load() []int64 {
	m.resetIfNewDay()

	var sel models.Selection
	if _, err := jsonfile.Read(m.path, &sel); err != nil {
		m.logger.Printf("selection: %v; using an empty selection", err)
		return []int64{}
	}
	return Dedup(sel.SelectedItems, m.host.Name)
}

// Save stores ids after removing duplicates and nested items. Items that
// have no starting count yet are seeded with their current count.
func (m *SelectionManager) Save(ids []int64) ([]int64, error) {
	stored, _, _, err := m.save(ids)
	return stored, err
}

// save also reports which ids got a fresh starting count.
func (m *SelectionManager) save(ids []int64) (stored, seeded []int64, snap models.BaselineSnapshot, err error) {
	m.resetIfNewDay()
	ids = Dedup(ids, m.host.Name)

	snap = m.snapshots.Load()
	seeded = Seed(&snap, ids, m.host.Counts())
	if len(seeded) > 0 {
		if err := m.snapshots.Save(snap); err != nil {
			m.logger.Printf("selection: seed baseline: %v", err)
		}
	}

	if err := jsonfile.Write(m.path, models.Selection{SelectedItems: ids}, "  "); err != nil {
		return nil, nil, snap, err
	}
	return ids, seeded, snap, nil
}

func (m *SelectionManager) resetIfNewDay() {
	today, ok := m.host.Today()
	if !ok {
		return
	}

	var marker models.DayMarker
	found, err := m.kv.Get(keySelectionResetDay, &marker)
	if err != nil {
		m.logger.Printf("selection: unreadable reset marker: %v", err)
	}
	if found && !IsNewDay(&marker, today) {
		return
	}

	if err := jsonfile.Write(m.path, models.Selection{SelectedItems: []int64{}}, "  "); err != nil {
		m.logger.Printf("selection: daily reset: %v", err)
		return
	}
	if err := m.snapshots.ResetForDay(today); err != nil {
		m.logger.Printf("selection: reset baseline: %v", err)
	}
	if err := m.kv.Set(keySelectionResetDay, models.DayMarker{Day: today}); err != nil {
		m.logger.Printf("selection: persist reset marker: %v", err)
	}
}

// Dedup drops repeated ids and every id whose name is a strict path
// descendant of another candidate's name. Ids without a known name are
// kept. Survivors keep their original order.
func Dedup(ids []int64, name func(int64) (string, bool)) []int64 {
	seen := make(map[int64]bool, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	names := make(map[int64]string, len(unique))
	for _, id := range unique {
		if n, ok := name(id); ok {
			names[id] = n
		}
	}

	out := make([]int64, 0, len(unique))
	for _, child := range unique {
		if !isNested(child, unique, names) {
			out = append(out, child)
		}
	}
	return out
}

func isNested(child int64, ids []int64, names map[int64]string) bool {
	childName := names[child]
	if childName == "" {
		return false
	}
	for _, parent := range ids {
		if parent == child {
			continue
		}
		parentName := names[parent]
		if parentName != "" && strings.HasPrefix(childName, parentName+host.PathSeparator) {
			return true
		}
	}
	return false
}
