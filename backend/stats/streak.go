package stats

import (
	"slices"
	"time"
)

// ComputeStreak counts consecutive calendar days ending at asOf. dates are
// the summary dates on record; entries after asOf are ignored and asOf
// itself always counts, so the result is at least 1.
func ComputeStreak(asOf string, dates []string) int {
	head, err := time.Parse(DateLayout, asOf)
	if err != nil {
		return 1
	}

	earlier := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		t, err := time.Parse(DateLayout, d)
		if err != nil || !t.Before(head) {
			continue
		}
		earlier = append(earlier, t)
	}
	slices.SortFunc(earlier, func(a, b time.Time) int { return b.Compare(a) })
	earlier = slices.CompactFunc(earlier, time.Time.Equal)

	streak := 1
	prev := head
	for _, d := range earlier {
		if !prev.AddDate(0, 0, -1).Equal(d) {
			break
		}
		streak++
		prev = d
	}
	return streak
}
