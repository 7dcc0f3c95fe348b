package kvstore

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskbar/backend/apperr"
	"taskbar/backend/models"
)

func discard() *log.Logger { return log.New(io.Discard, "", 0) }

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := NewFileStore(path, discard())

	var marker models.DayMarker
	found, err := s.Get("baseline_day", &marker)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set("baseline_day", models.DayMarker{Day: 812}))
	require.NoError(t, s.Set("baseline", models.BaselineSnapshot{Counts: map[int64]int{10: 40, 20: 5}}))

	found, err = s.Get("baseline_day", &marker)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 812, marker.Day)

	var snap models.BaselineSnapshot
	found, err = NewFileStore(path, discard()).Get("baseline", &snap)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, map[int64]int{10: 40, 20: 5}, snap.Counts)
}

func TestFileStoreCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	s := NewFileStore(path, discard())

	var marker models.DayMarker
	_, err := s.Get("baseline_day", &marker)
	assert.True(t, apperr.IsConsistency(err))

	require.NoError(t, s.Set("baseline_day", models.DayMarker{Day: 3}))
	found, err := s.Get("baseline_day", &marker)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, marker.Day)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Set("k", []int{1, 2}))

	var got []int
	found, err := s.Get("k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int{1, 2}, got)
}
