package sessions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskbar/backend/apperr"
	"taskbar/backend/models"
)

func TestCreateFolder(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateFolder(" Work "))
	assert.True(t, apperr.IsConflict(s.CreateFolder("Work")))
	assert.True(t, apperr.IsValidation(s.CreateFolder("")))
	assert.Equal(t, []string{"Work"}, s.Load().Folders)
}

func TestRenameFolderPropagates(t *testing.T) {
	s := newTestStore(t)
	a, err := s.Upsert(models.Session{Name: "A", Folder: "Work"})
	require.NoError(t, err)
	b, err := s.Upsert(models.Session{Name: "B", Folder: "Work"})
	require.NoError(t, err)
	_, err = s.Upsert(models.Session{Name: "C", Folder: "Home"})
	require.NoError(t, err)

	require.NoError(t, s.RenameFolder("Work", "Projects"))

	doc := s.Load()
	assert.Contains(t, doc.Folders, "Projects")
	assert.NotContains(t, doc.Folders, "Work")
	for _, sess := range doc.Sessions {
		switch sess.ID {
		case a.ID, b.ID:
			assert.Equal(t, "Projects", sess.Folder)
		default:
			assert.Equal(t, "Home", sess.Folder)
		}
	}
}

func TestRenameFolderRejections(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateFolder("Work"))
	require.NoError(t, s.CreateFolder("Home"))

	assert.True(t, apperr.IsConflict(s.RenameFolder("Work", "Home")))
	assert.True(t, apperr.IsNotFound(s.RenameFolder("Gone", "New")))
	assert.True(t, apperr.IsValidation(s.RenameFolder("Work", " ")))
	assert.NoError(t, s.RenameFolder("Work", "Work"))
	assert.Equal(t, []string{"Work", "Home"}, s.Load().Folders)
}

func TestDeleteFolderKeepsSessions(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Upsert(models.Session{Name: "A", Folder: "Work"})
	require.NoError(t, err)
	_, err = s.Upsert(models.Session{Name: "B", Folder: "Work"})
	require.NoError(t, err)

	moved, err := s.DeleteFolder("Work")
	require.NoError(t, err)
	assert.Equal(t, 2, moved)

	doc := s.Load()
	assert.Empty(t, doc.Folders)
	require.Len(t, doc.Sessions, 2)
	for _, sess := range doc.Sessions {
		assert.Empty(t, sess.Folder)
	}
}

func TestMoveSessionToFolder(t *testing.T) {
	s := newTestStore(t)
	sess, err := s.Upsert(models.Session{Name: "A"})
	require.NoError(t, err)

	require.NoError(t, s.MoveSessionToFolder(sess.ID, "Evening"))
	doc := s.Load()
	assert.Equal(t, "Evening", doc.Sessions[0].Folder)
	assert.Equal(t, []string{"Evening"}, doc.Folders)

	require.NoError(t, s.MoveSessionToFolder(sess.ID, ""))
	assert.Empty(t, s.Load().Sessions[0].Folder)

	assert.True(t, apperr.IsNotFound(s.MoveSessionToFolder("nope", "Evening")))
}

func TestExportImportRoundTrip(t *testing.T) {
	s := newTestStore(t)
	a, err := s.Upsert(models.Session{Name: "A", ItemIDs: []int64{1, 2}, Folder: "Work"})
	require.NoError(t, err)
	_, err = s.Upsert(models.Session{Name: "B", ItemIDs: []int64{3}})
	require.NoError(t, err)
	require.NoError(t, s.CreateFolder("Empty"))
	_, err = s.Activate(a.ID, &savedSelection{})
	require.NoError(t, err)
	before := s.Load()

	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, s.Export(path))

	_, err = s.Upsert(models.Session{Name: "Later"})
	require.NoError(t, err)

	require.NoError(t, s.Import(path))
	assert.Equal(t, before, s.Load())
}

func TestImportRejectsForeignFiles(t *testing.T) {
	s := newTestStore(t)
	dir := t.TempDir()

	notObject := filepath.Join(dir, "list.json")
	require.NoError(t, os.WriteFile(notObject, []byte(`[1,2,3]`), 0o644))
	assert.True(t, apperr.IsValidation(s.Import(notObject)))

	noSessions := filepath.Join(dir, "other.json")
	require.NoError(t, os.WriteFile(noSessions, []byte(`{"folders":[]}`), 0o644))
	assert.True(t, apperr.IsValidation(s.Import(noSessions)))

	assert.True(t, apperr.IsNotFound(s.Import(filepath.Join(dir, "missing.json"))))
}
