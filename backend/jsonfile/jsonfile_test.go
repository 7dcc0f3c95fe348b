package jsonfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskbar/backend/apperr"
)

type doc struct {
	Items []int64 `json:"items"`
}

func TestReadMissingAndBlank(t *testing.T) {
	dir := t.TempDir()

	var d doc
	found, err := Read(filepath.Join(dir, "missing.json"), &d)
	require.NoError(t, err)
	assert.False(t, found)

	blank := filepath.Join(dir, "blank.json")
	require.NoError(t, os.WriteFile(blank, []byte("  \n"), 0o644))
	found, err = Read(blank, &d)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestReadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items": [1,`), 0o644))

	var d doc
	found, err := Read(path, &d)
	assert.False(t, found)
	assert.True(t, apperr.IsConsistency(err))
}

func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "doc.json")
	require.NoError(t, Write(path, doc{Items: []int64{3, 1, 2}}, "  "))

	var d doc
	found, err := Read(path, &d)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int64{3, 1, 2}, d.Items)
	assert.False(t, ModTime(path).IsZero())
}

func TestModCache(t *testing.T) {
	var c ModCache[doc]
	t0 := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	_, ok := c.Get(t0)
	assert.False(t, ok)

	c.Put(t0, doc{Items: []int64{1}})
	got, ok := c.Get(t0)
	assert.True(t, ok)
	assert.Equal(t, []int64{1}, got.Items)

	_, ok = c.Get(t0.Add(time.Second))
	assert.False(t, ok, "a new modification time must miss")

	c.Invalidate()
	_, ok = c.Get(t0)
	assert.False(t, ok)
}
