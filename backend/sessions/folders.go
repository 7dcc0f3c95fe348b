package sessions

import (
	"slices"
	"strings"

	"taskbar/backend/apperr"
)

// CreateFolder adds an empty folder.
func (s *Store) CreateFolder(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperr.Validation("create folder", "folder name required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	if slices.Contains(doc.Folders, name) {
		return apperr.Conflict("create folder", "folder "+name+" already exists")
	}
	doc.Folders = append(doc.Folders, name)
	return s.save(doc)
}

// RenameFolder renames a folder in place and moves every session filed
// under the old name with it.
func (s *Store) RenameFolder(oldName, newName string) error {
	oldName, newName = strings.TrimSpace(oldName), strings.TrimSpace(newName)
	if oldName == "" || newName == "" {
		return apperr.Validation("rename folder", "folder names required")
	}
	if oldName == newName {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	i := slices.Index(doc.Folders, oldName)
	if i < 0 {
		return apperr.NotFound("rename folder", "folder "+oldName+" not found")
	}
	if slices.Contains(doc.Folders, newName) {
		return apperr.Conflict("rename folder", "folder "+newName+" already exists")
	}

	doc.Folders[i] = newName
	for j := range doc.Sessions {
		if doc.Sessions[j].Folder == oldName {
			doc.Sessions[j].Folder = newName
		}
	}
	return s.save(doc)
}

// DeleteFolder removes a folder. Its sessions are kept and moved to no
// folder; the number moved is returned.
func (s *Store) DeleteFolder(name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, apperr.Validation("delete folder", "folder name required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	moved := 0
	for i := range doc.Sessions {
		if doc.Sessions[i].Folder == name {
			doc.Sessions[i].Folder = ""
			moved++
		}
	}
	doc.Folders = slices.DeleteFunc(doc.Folders, func(f string) bool { return f == name })
	if err := s.save(doc); err != nil {
		return 0, err
	}
	return moved, nil
}

// MoveSessionToFolder refiles a session. An empty folder means no folder;
// an unknown folder is registered.
func (s *Store) MoveSessionToFolder(id, folder string) error {
	folder = strings.TrimSpace(folder)

	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	i := indexOf(doc.Sessions, strings.TrimSpace(id))
	if i < 0 {
		return apperr.NotFound("move session", "session "+id+" not found")
	}
	doc.Sessions[i].Folder = folder
	doc.Sessions[i].UpdatedAtMs = s.now().UnixMilli()
	registerFolder(&doc, folder)
	return s.save(doc)
}
