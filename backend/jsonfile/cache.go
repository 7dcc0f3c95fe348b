package jsonfile

import "time"

// ModCache holds the last parsed value of a file together with the
// modification time it was parsed at. A different modification time
// invalidates the entry, so edits made by other writers (an import, a
// hand edit) are picked up on the next read.
type ModCache[T any] struct {
	key   time.Time
	value T
	valid bool
}

// Get returns the cached value if it was stored under key.
func (c *ModCache[T]) Get(key time.Time) (T, bool) {
	if !c.valid || !c.key.Equal(key) {
		var zero T
		return zero, false
	}
	return c.value, true
}

// Put stores value under key.
func (c *ModCache[T]) Put(key time.Time, value T) {
	c.key = key
	c.value = value
	c.valid = true
}

// Invalidate drops the cached value.
func (c *ModCache[T]) Invalidate() {
	var zero T
	c.value = zero
	c.valid = false
}
