package sessions

import (
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"

	"taskbar/backend/apperr"
	"taskbar/backend/jsonfile"
	"taskbar/backend/models"
)

// Export writes the current document to path.
func (s *Store) Export(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return apperr.Validation("export sessions", "path required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return jsonfile.Write(path, s.load(), "  ")
}

// Import replaces the stored document with the one at path. The file must
// hold a JSON object with a "sessions" field.
func (s *Store) Import(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return apperr.Validation("import sessions", "path required")
	}

	var probe map[string]json.RawMessage
	found, err := jsonfile.Read(path, &probe)
	switch {
	case apperr.IsConsistency(err):
		return apperr.Validation("import sessions", filepath.Base(path)+" is not a sessions file")
	case err != nil:
		return err
	case !found:
		return apperr.NotFound("import sessions", filepath.Base(path)+" not found")
	}
	if _, ok := probe["sessions"]; !ok {
		return apperr.Validation("import sessions", filepath.Base(path)+" is not a sessions file")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	doc := models.NewSessionsDocument()
	if _, err := jsonfile.Read(path, &doc); err != nil {
		return apperr.Validation("import sessions", "invalid sessions file: "+err.Error())
	}
	return s.save(doc)
}
