package tracker

import "taskbar/backend/models"

// IsNewDay reports whether the host day counter has moved past the stored
// marker. A missing marker always starts a new day. The host owns rollover
// semantics (custom cutoff hours and so on), so wall-clock time is never
// consulted here.
func IsNewDay(stored *models.DayMarker, today int) bool {
	return stored == nil || stored.Day != today
}
