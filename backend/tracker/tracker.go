// Package tracker turns the host's mutable due counts into a stable per-day
// progress figure for each tracked item.
package tracker

import (
	"log"
	"sync"
	"time"

	"taskbar/backend/host"
	"taskbar/backend/models"
)

// DateLayout is the calendar date format used by the history store.
const DateLayout = "2006-01-02"

// HistoryRecorder receives the zero-progress rows written when an item
// gets its starting count for the day.
type HistoryRecorder interface {
	SaveItemHistory(entry models.ItemHistory) error
}

// Tracker composes the selection, the snapshot and the progress rules.
// mu serializes the read-modify-write of the selection and the baseline.
type Tracker struct {
	mu        sync.Mutex
	host      host.Host
	selection *SelectionManager
	snapshots *SnapshotManager
	recorder  HistoryRecorder
	logger    *log.Logger
	now       func() time.Time
}

func New(h host.Host, selection *SelectionManager, snapshots *SnapshotManager, recorder HistoryRecorder, logger *log.Logger) *Tracker {
	return &Tracker{
		host:      h,
		selection: selection,
		snapshots: snapshots,
		recorder:  recorder,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock replaces the wall clock used to date history rows.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

// Today returns the calendar date history rows are filed under.
func (t *Tracker) Today() string {
	return t.now().Format(DateLayout)
}

// Selection returns the tracked ids.
func (t *Tracker) Selection() []int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.selection.Load()
}

// SaveSelection replaces the tracked ids and returns what was stored.
// Items that get their first starting count of the day are recorded with
// zero progress.
func (t *Tracker) SaveSelection(ids []int64) ([]int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	stored, seeded, snap, err := t.selection.save(ids)
	if err != nil {
		return nil, err
	}
	if len(seeded) > 0 {
		t.recordBaseline(seeded, snap)
	}
	return stored, nil
}

// Tasks returns today's progress for every tracked item that still exists.
// Starting counts that fall below the current count are raised and
// written back.
func (t *Tracker) Tasks() []models.Task {
	t.mu.Lock()
	defer t.mu.Unlock()
	today, ok := t.host.Today()
	if !ok {
		t.logger.Printf("tracker: host has not reported a day yet")
		return []models.Task{}
	}

	selected := t.selection.Load()
	counts := t.host.Counts()
	snap, captured := t.snapshots.EnsureBaseline(today, selected, counts)
	if captured {
		t.recordBaseline(selected, snap)
	}

	updated := false
	tasks := make([]models.Task, 0, len(selected))
	for _, id := range selected {
		name, ok := t.host.Name(id)
		if !ok {
			continue
		}
		dueNow := counts[id]
		dueStart, raised := Reconcile(&snap, id, dueNow)
		updated = updated || raised

		done, progress, completed := ItemProgress(dueStart, dueNow)
		tasks = append(tasks, models.Task{
			ItemID:    id,
			Name:      name,
			DueStart:  dueStart,
			DueNow:    dueNow,
			Done:      done,
			Progress:  progress,
			Completed: completed,
		})
	}

	if updated {
		if err := t.snapshots.Save(snap); err != nil {
			t.logger.Printf("tracker: persist raised baseline: %v", err)
		}
	}
	return tasks
}

func (t *Tracker) recordBaseline(ids []int64, snap models.BaselineSnapshot) {
	if t.recorder == nil {
		return
	}
	date := t.Today()
	for _, id := range ids {
		name, ok := t.host.Name(id)
		if !ok {
			continue
		}
		entry := models.ItemHistory{
			Date:     date,
			ItemID:   id,
			ItemName: name,
			DueStart: snap.Counts[id],
		}
		if err := t.recorder.SaveItemHistory(entry); err != nil {
			t.logger.Printf("tracker: record baseline for %d: %v", id, err)
		}
	}
}

// Group computes the aggregate progress of ids against today's baseline
// without modifying it. Items that no longer exist are skipped; items with
// no starting count start from their current count.
func (t *Tracker) Group(ids []int64) models.GroupProgress {
	t.mu.Lock()
	defer t.mu.Unlock()
	snap := t.snapshots.Load()
	counts := t.host.Counts()

	items := make([]Counts, 0, len(ids))
	for _, id := range ids {
		if !t.host.Exists(id) {
			continue
		}
		dueNow := counts[id]
		stored, ok := snap.Counts[id]
		if !ok {
			stored = dueNow
		}
		items = append(items, Counts{DueStart: max(stored, dueNow), DueNow: dueNow})
	}
	return GroupProgressOf(items)
}
