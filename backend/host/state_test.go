package host

import (
	"io"
	"log"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskbar/backend/models"
)

func sampleState(day int) models.HostState {
	return models.HostState{
		Today: &day,
		Tree: models.DueNode{
			ID: 0,
			Children: []models.DueNode{
				{
					ID: 1, Name: "Math", New: 5, Learn: 2, Review: 10,
					Children: []models.DueNode{
						{ID: 2, Name: "Algebra", New: 5, Review: 4},
					},
				},
				{ID: 3, Name: "History", Review: 7},
			},
		},
		ReviewTotals: models.ReviewTotals{TotalCards: 12, TotalReviews: 30},
	}
}

func TestStateStoreIndexesTree(t *testing.T) {
	s := NewStateStore("", log.New(io.Discard, "", 0))

	_, ok := s.Today()
	assert.False(t, ok, "no day before the first push")

	require.NoError(t, s.Push(sampleState(100)))

	day, ok := s.Today()
	assert.True(t, ok)
	assert.Equal(t, 100, day)

	name, ok := s.Name(2)
	assert.True(t, ok)
	assert.Equal(t, "Math::Algebra", name)

	assert.Equal(t, map[int64]int{1: 17, 2: 9, 3: 7}, s.Counts())
	assert.False(t, s.Exists(0), "the root is not an item")
	assert.False(t, s.Exists(99))
	assert.Equal(t, 30, s.ReviewTotals().TotalReviews)
}

func TestStateStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host.json")
	logger := log.New(io.Discard, "", 0)

	require.NoError(t, NewStateStore(path, logger).Push(sampleState(7)))

	reloaded := NewStateStore(path, logger)
	day, ok := reloaded.Today()
	assert.True(t, ok)
	assert.Equal(t, 7, day)
	assert.True(t, reloaded.Exists(3))
}
