package tracker

import (
	"math"

	"taskbar/backend/models"
)

// ItemProgress derives today's figures for one item.
func ItemProgress(dueStart, dueNow int) (done int, progress float64, completed bool) {
	done = max(dueStart-dueNow, 0)
	return done, fraction(done, dueStart), dueNow == 0
}

// fraction is done/dueStart clamped to [0, 1] and rounded to three places.
// Nothing due counts as finished.
func fraction(done, dueStart int) float64 {
	if dueStart == 0 {
		return 1.0
	}
	p := float64(done) / float64(dueStart)
	p = math.Min(math.Max(p, 0), 1)
	return math.Round(p*1000) / 1000
}

// Counts is one item's starting and current due counts.
type Counts struct {
	DueStart int
	DueNow   int
}

// GroupProgressOf sums starting counts and done counts over the items
// before dividing, so larger items weigh more than an average of
// per-item fractions would let them. An empty group reports 0.
func GroupProgressOf(items []Counts) models.GroupProgress {
	if len(items) == 0 {
		return models.GroupProgress{}
	}
	var g models.GroupProgress
	for _, it := range items {
		g.DueStart += it.DueStart
		g.Done += max(it.DueStart-it.DueNow, 0)
	}
	g.Progress = fraction(g.Done, g.DueStart)
	return g
}
