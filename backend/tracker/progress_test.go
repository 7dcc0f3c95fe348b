package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemProgressBounds(t *testing.T) {
	for start := 0; start <= 30; start++ {
		for now := 0; now <= 40; now++ {
			done, p, completed := ItemProgress(start, now)
			assert.GreaterOrEqual(t, done, 0)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
			assert.Equal(t, now == 0, completed)
		}
	}
}

func TestItemProgressValues(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		now       int
		done      int
		progress  float64
		completed bool
	}{
		{"untouched", 40, 40, 0, 0, false},
		{"quarter", 40, 30, 10, 0.25, false},
		{"rounded", 3, 2, 1, 0.333, false},
		{"finished", 40, 0, 40, 1, true},
		{"nothing due", 0, 0, 0, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done, p, completed := ItemProgress(tt.start, tt.now)
			assert.Equal(t, tt.done, done)
			assert.Equal(t, tt.progress, p)
			assert.Equal(t, tt.completed, completed)
		})
	}
}

func TestGroupProgressSumsBeforeDividing(t *testing.T) {
	// 90/100 done on the large item, 0/10 on the small one.
	g := GroupProgressOf([]Counts{{DueStart: 100, DueNow: 10}, {DueStart: 10, DueNow: 10}})
	assert.Equal(t, 110, g.DueStart)
	assert.Equal(t, 90, g.Done)
	assert.Equal(t, 0.818, g.Progress)
	assert.NotEqual(t, 0.45, g.Progress, "must not be the average of fractions")
}

func TestGroupProgressEmptyIsZero(t *testing.T) {
	g := GroupProgressOf(nil)
	assert.Equal(t, 0.0, g.Progress)
	assert.Zero(t, g.DueStart)
}
