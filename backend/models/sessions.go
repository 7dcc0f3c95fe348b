package models

// Session is a named, reusable group of item ids.
type Session struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ItemIDs     []int64 `json:"item_ids"`
	Folder      string  `json:"folder"`
	CreatedAtMs int64   `json:"created_at_ms"`
	UpdatedAtMs int64   `json:"updated_at_ms"`
}

// SessionsDocument is the on-disk shape of sessions.json.
type SessionsDocument struct {
	Sessions        []Session `json:"sessions"`
	ActiveSessionID *string   `json:"active_session_id"`
	Folders         []string  `json:"folders"`
}

// NewSessionsDocument returns the empty document.
func NewSessionsDocument() SessionsDocument {
	return SessionsDocument{Sessions: []Session{}, Folders: []string{}}
}

// SessionView is a session decorated with its live progress.
type SessionView struct {
	Session
	GroupProgress
	Active bool `json:"active"`
}

// SessionsOverview is returned by the sessions query.
type SessionsOverview struct {
	Sessions        []SessionView `json:"sessions"`
	ActiveSessionID *string       `json:"active_session_id"`
	Folders         []string      `json:"folders"`
}
