package tracker

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskbar/backend/host"
	"taskbar/backend/models"
)

type recordedHistory struct {
	entries []models.ItemHistory
}

func (r *recordedHistory) SaveItemHistory(e models.ItemHistory) error {
	r.entries = append(r.entries, e)
	return nil
}

type fixture struct {
	host     *host.Fake
	kv       *countingStore
	tracker  *Tracker
	recorder *recordedHistory
	selPath  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		host:     host.NewFake(100),
		kv:       newCountingStore(),
		recorder: &recordedHistory{},
		selPath:  filepath.Join(t.TempDir(), "selection.json"),
	}
	f.host.Add(1, "Math", 40).Add(2, "Math::Algebra", 10).Add(3, "History", 20).Add(4, "Mathematics", 5)

	snaps := NewSnapshotManager(f.kv, quietLogger())
	sel := NewSelectionManager(f.selPath, f.kv, f.host, snaps, quietLogger())
	f.tracker = New(f.host, sel, snaps, f.recorder, quietLogger()).
		WithClock(func() time.Time { return time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC) })
	return f
}

func TestDedupDropsDescendants(t *testing.T) {
	h := host.NewFake(1).Add(1, "Math", 0).Add(2, "Math::Algebra", 0).Add(4, "Mathematics", 0).Add(5, "Math::Algebra::Linear", 0)

	assert.Equal(t, []int64{1, 4}, Dedup([]int64{2, 1, 4, 5, 1}, h.Name))
	assert.Equal(t, []int64{2, 4}, Dedup([]int64{5, 2, 4}, h.Name))
	assert.Equal(t, []int64{99, 1}, Dedup([]int64{99, 1, 99}, h.Name), "unknown ids are kept")
}

func TestSaveSelectionStoresOnlyParent(t *testing.T) {
	f := newFixture(t)

	stored, err := f.tracker.SaveSelection([]int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, stored)
	assert.Equal(t, []int64{1}, f.tracker.Selection())
}

func TestTasksLifecycle(t *testing.T) {
	f := newFixture(t)
	_, err := f.tracker.SaveSelection([]int64{1, 2, 3})
	require.NoError(t, err)

	tasks := f.tracker.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, models.Task{ItemID: 1, Name: "Math", DueStart: 40, DueNow: 40}, tasks[0])
	assert.Len(t, f.recorder.entries, 2, "newly seeded items record zero-progress rows")
	assert.Equal(t, "2024-01-05", f.recorder.entries[0].Date)

	f.host.Due[1] = 30
	tasks = f.tracker.Tasks()
	assert.Equal(t, 10, tasks[0].Done)
	assert.Equal(t, 0.25, tasks[0].Progress)

	// Work added after the capture raises the denominator.
	f.host.Due[3] = 25
	tasks = f.tracker.Tasks()
	assert.Equal(t, 25, tasks[1].DueStart)
	assert.Equal(t, 0.0, tasks[1].Progress)

	f.host.Due[3] = 0
	tasks = f.tracker.Tasks()
	assert.True(t, tasks[1].Completed)
	assert.Equal(t, 1.0, tasks[1].Progress)
	assert.Equal(t, 25, tasks[1].DueStart)

	writes := f.kv.sets
	f.tracker.Tasks()
	assert.Equal(t, writes, f.kv.sets, "unchanged counts must not write")
}

func TestTasksSkipsDeletedItems(t *testing.T) {
	f := newFixture(t)
	_, err := f.tracker.SaveSelection([]int64{1, 3})
	require.NoError(t, err)

	f.host.Remove(3)
	tasks := f.tracker.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, int64(1), tasks[0].ItemID)
}

func TestNewDayResetsSelection(t *testing.T) {
	f := newFixture(t)
	_, err := f.tracker.SaveSelection([]int64{1, 3})
	require.NoError(t, err)
	require.Len(t, f.tracker.Tasks(), 2)

	f.host.Day = 101
	assert.Empty(t, f.tracker.Selection())
	assert.Empty(t, f.tracker.Tasks())

	_, err = f.tracker.SaveSelection([]int64{3})
	require.NoError(t, err)
	f.host.Due[3] = 15
	tasks := f.tracker.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, 20, tasks[0].DueStart, "baseline was seeded when the item was selected")
	assert.Equal(t, 5, tasks[0].Done)
}

func TestSelectionSavedFirstOnNewDayKeepsBaseline(t *testing.T) {
	f := newFixture(t)
	_, err := f.tracker.SaveSelection([]int64{1})
	require.NoError(t, err)
	require.Len(t, f.tracker.Tasks(), 1)

	f.host.Day = 101
	f.recorder.entries = nil
	_, err = f.tracker.SaveSelection([]int64{3})
	require.NoError(t, err)
	require.Len(t, f.recorder.entries, 1)
	assert.Equal(t, 20, f.recorder.entries[0].DueStart)

	f.host.Due[3] = 15
	before := f.tracker.Group([]int64{3})
	assert.Equal(t, models.GroupProgress{Progress: 0.25, DueStart: 20, Done: 5}, before)

	tasks := f.tracker.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, 20, tasks[0].DueStart)
	assert.Equal(t, 5, tasks[0].Done)
	assert.Equal(t, before, f.tracker.Group([]int64{3}))
	assert.Len(t, f.recorder.entries, 1, "no second capture on the same day")
}

func TestTasksWithoutHostDay(t *testing.T) {
	f := newFixture(t)
	f.host.HasDay = false
	assert.Empty(t, f.tracker.Tasks())
}

func TestGroupUsesBaselineAndSkipsMissing(t *testing.T) {
	f := newFixture(t)
	_, err := f.tracker.SaveSelection([]int64{1, 3})
	require.NoError(t, err)
	f.tracker.Tasks()

	f.host.Due[1] = 0
	f.host.Due[3] = 10
	g := f.tracker.Group([]int64{1, 3, 77})
	assert.Equal(t, 60, g.DueStart)
	assert.Equal(t, 50, g.Done)
	assert.Equal(t, 0.833, g.Progress)

	// No starting count yet: starts from the current count.
	g = f.tracker.Group([]int64{4})
	assert.Equal(t, models.GroupProgress{Progress: 0, DueStart: 5, Done: 0}, g)

	assert.Equal(t, 0.0, f.tracker.Group([]int64{77}).Progress)
}
