package sessions

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskbar/backend/apperr"
	"taskbar/backend/models"
)

type savedSelection struct {
	ids []int64
}

func (s *savedSelection) SaveSelection(ids []int64) ([]int64, error) {
	s.ids = ids
	return ids, nil
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sessions.json")
	clock := time.UnixMilli(1_700_000_000_000)
	return NewStore(path, log.New(io.Discard, "", 0)).WithClock(func() time.Time { return clock })
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s := newTestStore(t)
	doc := s.Load()
	assert.Empty(t, doc.Sessions)
	assert.NotNil(t, doc.Folders)
	assert.Nil(t, doc.ActiveSessionID)
}

func TestLoadCorruptFileIsEmpty(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))
	assert.Empty(t, s.Load().Sessions)
}

func TestUpsertValidatesAndDedups(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Upsert(models.Session{Name: "   "})
	assert.True(t, apperr.IsValidation(err))
	assert.Empty(t, s.Load().Sessions, "rejected upsert must not write")

	sess, err := s.Upsert(models.Session{Name: " Morning ", ItemIDs: []int64{10, 20, 10}, Folder: "Work"})
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "Morning", sess.Name)
	assert.Equal(t, []int64{10, 20}, sess.ItemIDs)
	assert.Equal(t, int64(1_700_000_000_000), sess.CreatedAtMs)

	doc := s.Load()
	require.Len(t, doc.Sessions, 1)
	assert.Equal(t, []string{"Work"}, doc.Folders)
}

func TestUpsertUpdatesInPlace(t *testing.T) {
	s := newTestStore(t)
	first, err := s.Upsert(models.Session{Name: "A", ItemIDs: []int64{1}})
	require.NoError(t, err)
	_, err = s.Upsert(models.Session{Name: "B", ItemIDs: []int64{2}})
	require.NoError(t, err)

	updated, err := s.Upsert(models.Session{ID: first.ID, Name: "A2", ItemIDs: []int64{3, 4}})
	require.NoError(t, err)
	assert.Equal(t, first.CreatedAtMs, updated.CreatedAtMs)

	doc := s.Load()
	require.Len(t, doc.Sessions, 2)
	assert.Equal(t, "A2", doc.Sessions[0].Name)
	assert.Equal(t, []int64{3, 4}, doc.Sessions[0].ItemIDs)
	assert.Equal(t, "B", doc.Sessions[1].Name)
}

func TestActivateReplacesSelection(t *testing.T) {
	s := newTestStore(t)
	sess, err := s.Upsert(models.Session{Name: "S", ItemIDs: []int64{10, 20}})
	require.NoError(t, err)

	sel := &savedSelection{ids: []int64{99}}
	_, err = s.Activate(sess.ID, sel)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20}, sel.ids)

	doc := s.Load()
	require.NotNil(t, doc.ActiveSessionID)
	assert.Equal(t, sess.ID, *doc.ActiveSessionID)

	_, err = s.Activate("missing", sel)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteClearsActive(t *testing.T) {
	s := newTestStore(t)
	sess, err := s.Upsert(models.Session{Name: "S", ItemIDs: []int64{1}})
	require.NoError(t, err)
	_, err = s.Activate(sess.ID, &savedSelection{})
	require.NoError(t, err)

	require.NoError(t, s.Delete(sess.ID))
	doc := s.Load()
	assert.Empty(t, doc.Sessions)
	assert.Nil(t, doc.ActiveSessionID)

	assert.True(t, apperr.IsNotFound(s.Delete(sess.ID)))
}

func TestLoadPicksUpExternalWrites(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Upsert(models.Session{Name: "Cached"})
	require.NoError(t, err)
	require.Len(t, s.Load().Sessions, 1)

	external := `{"sessions":[{"id":"x","name":"One"},{"id":"y","name":"Two"}],"folders":[]}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(external), 0o644))
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(s.Path(), later, later))

	doc := s.Load()
	require.Len(t, doc.Sessions, 2)
	assert.Equal(t, "Two", doc.Sessions[1].Name)
	assert.Equal(t, []int64{}, doc.Sessions[0].ItemIDs)
}

func TestLoadReturnsIndependentCopies(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Upsert(models.Session{Name: "S", ItemIDs: []int64{1, 2}})
	require.NoError(t, err)

	doc := s.Load()
	doc.Sessions[0].ItemIDs[0] = 42
	doc.Folders = append(doc.Folders, "stray")

	again := s.Load()
	assert.Equal(t, []int64{1, 2}, again.Sessions[0].ItemIDs)
	assert.Empty(t, again.Folders)
}

func TestInitCreatesEmptyDocumentOnce(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Init())
	_, err := os.Stat(s.Path())
	require.NoError(t, err)

	_, err = s.Upsert(models.Session{Name: "Kept"})
	require.NoError(t, err)
	require.NoError(t, s.Init())
	assert.Len(t, s.Load().Sessions, 1)
}

func TestConcurrentUpsertsKeepEverySession(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Init())

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, err := s.Upsert(models.Session{Name: fmt.Sprintf("s%d", i), Folder: "Work"})
			assert.NoError(t, err)
		}(i)
		go func() {
			defer wg.Done()
			s.Load()
		}()
	}
	wg.Wait()

	doc := s.Load()
	assert.Len(t, doc.Sessions, workers)
	assert.Equal(t, []string{"Work"}, doc.Folders)
}
