package tracker

import (
	"log"

	"taskbar/backend/kvstore"
	"taskbar/backend/models"
)

const (
	keyBaselineDay = "baseline_day"
	keyBaseline    = "baseline"
)

// SnapshotManager owns the per-day starting counts. Within a day a starting
// count only ever rises; it is recaptured on a day transition.
type SnapshotManager struct {
	kv     kvstore.Store
	logger *log.Logger
}

func NewSnapshotManager(kv kvstore.Store, logger *log.Logger) *SnapshotManager {
	return &SnapshotManager{kv: kv, logger: logger}
}

func (m *SnapshotManager) marker() *models.DayMarker {
	var marker models.DayMarker
	found, err := m.kv.Get(keyBaselineDay, &marker)
	if err != nil {
		m.logger.Printf("snapshot: unreadable day marker, treating as missing: %v", err)
		return nil
	}
	if !found {
		return nil
	}
	return &marker
}

// Load returns the stored baseline, or an empty one if it is missing or
// unreadable.
func (m *SnapshotManager) Load() models.BaselineSnapshot {
	snap, _ := m.load()
	return snap
}

func (m *SnapshotManager) load() (models.BaselineSnapshot, bool) {
	snap := models.NewBaselineSnapshot()
	found, err := m.kv.Get(keyBaseline, &snap)
	if err != nil {
		m.logger.Printf("snapshot: unreadable baseline, rebuilding: %v", err)
		return models.NewBaselineSnapshot(), false
	}
	if !found || snap.Counts == nil {
		snap.Counts = map[int64]int{}
	}
	return snap, true
}

// EnsureBaseline returns today's baseline. On a new day it captures the
// current count of every selected item (0 when the host reports none),
// persists it with the new day marker and reports captured=true. On the
// same day the stored baseline comes back untouched and nothing is written.
func (m *SnapshotManager) EnsureBaseline(today int, selected []int64, counts map[int64]int) (snap models.BaselineSnapshot, captured bool) {
	if IsNewDay(m.marker(), today) {
		snap = capture(selected, counts)
		if err := m.kv.Set(keyBaseline, snap); err != nil {
			m.logger.Printf("snapshot: persist baseline: %v", err)
		}
		if err := m.kv.Set(keyBaselineDay, models.DayMarker{Day: today}); err != nil {
			m.logger.Printf("snapshot: persist day marker: %v", err)
		}
		return snap, true
	}

	snap, ok := m.load()
	if !ok {
		snap = capture(selected, counts)
		if err := m.kv.Set(keyBaseline, snap); err != nil {
			m.logger.Printf("snapshot: persist rebuilt baseline: %v", err)
		}
	}
	return snap, false
}

func capture(selected []int64, counts map[int64]int) models.BaselineSnapshot {
	snap := models.NewBaselineSnapshot()
	for _, id := range selected {
		snap.Counts[id] = counts[id]
	}
	return snap
}

// Reconcile raises the stored starting count to current when current is
// higher, which happens when work is added to an item after the capture.
// It returns the effective starting count and whether snap changed.
func Reconcile(snap *models.BaselineSnapshot, id int64, current int) (dueStart int, updated bool) {
	if snap.Counts == nil {
		snap.Counts = map[int64]int{}
	}
	stored := snap.Counts[id]
	if current <= stored {
		return stored, false
	}
	snap.Counts[id] = current
	return current, true
}

// Seed adds a starting count for every id that has none yet and returns
// the ids it added.
func Seed(snap *models.BaselineSnapshot, ids []int64, counts map[int64]int) []int64 {
	if snap.Counts == nil {
		snap.Counts = map[int64]int{}
	}
	var seeded []int64
	for _, id := range ids {
		if _, ok := snap.Counts[id]; ok {
			continue
		}
		snap.Counts[id] = counts[id]
		seeded = append(seeded, id)
	}
	return seeded
}

// Save persists snap without touching the day marker.
func (m *SnapshotManager) Save(snap models.BaselineSnapshot) error {
	return m.kv.Set(keyBaseline, snap)
}

// ResetForDay empties the baseline and stamps it with today, so the next
// EnsureBaseline on the same day keeps whatever gets seeded in between.
func (m *SnapshotManager) ResetForDay(today int) error {
	if err := m.kv.Set(keyBaseline, models.NewBaselineSnapshot()); err != nil {
		return err
	}
	return m.kv.Set(keyBaselineDay, models.DayMarker{Day: today})
}
