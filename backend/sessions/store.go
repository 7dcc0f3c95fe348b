// Package sessions stores named groups of item ids and the folders they are
// filed under in sessions.json.
package sessions

import (
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"taskbar/backend/apperr"
	"taskbar/backend/jsonfile"
	"taskbar/backend/models"
)

// SelectionSaver replaces the tracked selection. Activating a session
// writes through it.
type SelectionSaver interface {
	SaveSelection(ids []int64) ([]int64, error)
}

// Store is the session and folder store. Reads are served from a cache
// keyed by the file's modification time. Every public method holds mu for
// its whole load-modify-save.
type Store struct {
	mu     sync.Mutex
	path   string
	logger *log.Logger
	cache  jsonfile.ModCache[models.SessionsDocument]
	now    func() time.Time
}

func NewStore(path string, logger *log.Logger) *Store {
	return &Store{path: path, logger: logger, now: time.Now}
}

// WithClock replaces the clock used for session timestamps.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// Load returns the current document. A missing or corrupt file yields the
// empty document.
func (s *Store) Load() models.SessionsDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() models.SessionsDocument {
	key := jsonfile.ModTime(s.path)
	if !key.IsZero() {
		if doc, ok := s.cache.Get(key); ok {
			return clone(doc)
		}
	}

	doc := models.NewSessionsDocument()
	found, err := jsonfile.Read(s.path, &doc)
	if err != nil {
		s.logger.Printf("sessions: %v; using an empty document", err)
		s.cache.Invalidate()
		return models.NewSessionsDocument()
	}
	if !found {
		return models.NewSessionsDocument()
	}
	normalize(&doc)
	s.cache.Put(key, doc)
	return clone(doc)
}

func (s *Store) save(doc models.SessionsDocument) error {
	normalize(&doc)
	if err := jsonfile.Write(s.path, doc, "  "); err != nil {
		s.cache.Invalidate()
		return err
	}
	s.cache.Put(jsonfile.ModTime(s.path), clone(doc))
	return nil
}

// Init writes the empty document if the file does not exist yet.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !jsonfile.ModTime(s.path).IsZero() {
		return nil
	}
	return s.save(models.NewSessionsDocument())
}

// Get returns the session with id.
func (s *Store) Get(id string) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	i := indexOf(doc.Sessions, id)
	if i < 0 {
		return models.Session{}, apperr.NotFound("get session", "session "+id+" not found")
	}
	return doc.Sessions[i], nil
}

// Upsert validates in, then updates the session with the same id or
// appends a new one. It returns the stored session.
func (s *Store) Upsert(in models.Session) (models.Session, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Session{}, apperr.Validation("upsert session", "name required")
	}
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = ulid.Make().String()
	}
	folder := strings.TrimSpace(in.Folder)
	ids := uniqueIDs(in.ItemIDs)
	nowMs := s.now().UnixMilli()

	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	var out models.Session
	if i := indexOf(doc.Sessions, id); i >= 0 {
		sess := &doc.Sessions[i]
		sess.Name = name
		sess.ItemIDs = ids
		sess.Folder = folder
		sess.UpdatedAtMs = nowMs
		out = *sess
	} else {
		out = models.Session{
			ID:          id,
			Name:        name,
			ItemIDs:     ids,
			Folder:      folder,
			CreatedAtMs: nowMs,
			UpdatedAtMs: nowMs,
		}
		doc.Sessions = append(doc.Sessions, out)
	}
	registerFolder(&doc, folder)

	if err := s.save(doc); err != nil {
		return models.Session{}, err
	}
	return out, nil
}

// Delete removes the session with id. Deleting the active session clears
// the active id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	i := indexOf(doc.Sessions, id)
	if i < 0 {
		return apperr.NotFound("delete session", "session "+id+" not found")
	}
	doc.Sessions = slices.Delete(doc.Sessions, i, i+1)
	if doc.ActiveSessionID != nil && *doc.ActiveSessionID == id {
		doc.ActiveSessionID = nil
	}
	return s.save(doc)
}

// Activate replaces the selection with the session's item ids and marks
// the session active.
func (s *Store) Activate(id string, selection SelectionSaver) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	i := indexOf(doc.Sessions, id)
	if i < 0 {
		return models.Session{}, apperr.NotFound("activate session", "session "+id+" not found")
	}
	sess := doc.Sessions[i]
	if _, err := selection.SaveSelection(slices.Clone(sess.ItemIDs)); err != nil {
		return models.Session{}, err
	}
	doc.ActiveSessionID = &sess.ID
	if err := s.save(doc); err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

func indexOf(sessions []models.Session, id string) int {
	return slices.IndexFunc(sessions, func(s models.Session) bool { return s.ID == id })
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func registerFolder(doc *models.SessionsDocument, folder string) {
	if folder != "" && !slices.Contains(doc.Folders, folder) {
		doc.Folders = append(doc.Folders, folder)
	}
}

func normalize(doc *models.SessionsDocument) {
	if doc.Sessions == nil {
		doc.Sessions = []models.Session{}
	}
	if doc.Folders == nil {
		doc.Folders = []string{}
	}
	for i := range doc.Sessions {
		if doc.Sessions[i].ItemIDs == nil {
			doc.Sessions[i].ItemIDs = []int64{}
		}
	}
}

func clone(doc models.SessionsDocument) models.SessionsDocument {
	out := models.SessionsDocument{
		Sessions: make([]models.Session, len(doc.Sessions)),
		Folders:  slices.Clone(doc.Folders),
	}
	for i, sess := range doc.Sessions {
		sess.ItemIDs = slices.Clone(sess.ItemIDs)
		out.Sessions[i] = sess
	}
	if doc.ActiveSessionID != nil {
		id := *doc.ActiveSessionID
		out.ActiveSessionID = &id
	}
	if out.Folders == nil {
		out.Folders = []string{}
	}
	return out
}
