// Package bridge exposes the tracker, the session store and the history
// store as the operations the front-end calls. Every operation either
// degrades to an empty result or returns an error the HTTP layer turns
// into a structured response.
package bridge

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"taskbar/backend/apperr"
	"taskbar/backend/host"
	"taskbar/backend/jsonfile"
	"taskbar/backend/kvstore"
	"taskbar/backend/models"
	"taskbar/backend/sessions"
	"taskbar/backend/stats"
	"taskbar/backend/tracker"
)

// Pusher is implemented by hosts that accept pushed state.
type Pusher interface {
	Push(st models.HostState) error
}

// Deps are the collaborators of a Bridge.
type Deps struct {
	Host          host.Host
	KV            kvstore.Store
	Stats         *stats.Store
	SelectionPath string
	SessionsPath  string
	SettingsPath  string
	Logger        *log.Logger
	// TokenSecret signs bridge tokens. Empty means one is generated and
	// kept in KV.
	TokenSecret string
	HistoryDays int
	Clock       func() time.Time
}

type Bridge struct {
	host         host.Host
	kv           kvstore.Store
	tracker      *tracker.Tracker
	sessions     *sessions.Store
	stats        *stats.Store
	selection    string
	settingsPath string
	logger       *log.Logger
	historyDays  int

	secretMu sync.Mutex
	secret   string
}

func New(d Deps) *Bridge {
	if d.Clock == nil {
		d.Clock = time.Now
	}
	if d.HistoryDays <= 0 {
		d.HistoryDays = 365
	}

	snapshots := tracker.NewSnapshotManager(d.KV, d.Logger)
	selection := tracker.NewSelectionManager(d.SelectionPath, d.KV, d.Host, snapshots, d.Logger)
	d.Stats.WithClock(d.Clock)

	b := &Bridge{
		host:         d.Host,
		kv:           d.KV,
		tracker:      tracker.New(d.Host, selection, snapshots, d.Stats, d.Logger).WithClock(d.Clock),
		sessions:     sessions.NewStore(d.SessionsPath, d.Logger).WithClock(d.Clock),
		stats:        d.Stats,
		selection:    d.SelectionPath,
		settingsPath: d.SettingsPath,
		logger:       d.Logger,
		secret:       d.TokenSecret,
		historyDays:  d.HistoryDays,
	}
	return b
}

const initMarker = ".initialized"

// Init prepares the data directory. On the very first run it writes an
// empty selection; the sessions document is created whenever it is
// missing.
func (b *Bridge) Init() error {
	marker := filepath.Join(filepath.Dir(b.selection), initMarker)
	if _, err := os.Stat(marker); os.IsNotExist(err) {
		if err := jsonfile.Write(b.selection, models.Selection{SelectedItems: []int64{}}, "  "); err != nil {
			return err
		}
		if err := os.WriteFile(marker, []byte("1"), 0o644); err != nil {
			return apperr.IO("write init marker", err)
		}
		b.logger.Printf("bridge: initialized data directory %s", filepath.Dir(b.selection))
	}
	return b.sessions.Init()
}

// PushHostState replaces the host snapshot the tracker reads from.
func (b *Bridge) PushHostState(st models.HostState) error {
	p, ok := b.host.(Pusher)
	if !ok {
		return apperr.Validation("push host state", "host does not accept pushed state")
	}
	if st.Today == nil {
		return apperr.Validation("push host state", "today required")
	}
	return p.Push(st)
}

// Tree returns the host's due tree.
func (b *Bridge) Tree() models.DueNode { return b.host.Tree() }

// ReviewTotals returns today's review totals as reported by the host.
func (b *Bridge) ReviewTotals() models.ReviewTotals { return b.host.ReviewTotals() }

// Tasks returns today's progress for every tracked item.
func (b *Bridge) Tasks() []models.Task { return b.tracker.Tasks() }

// Selection returns the tracked ids.
func (b *Bridge) Selection() []int64 { return b.tracker.Selection() }

// SaveSelection replaces the tracked ids.
func (b *Bridge) SaveSelection(ids []int64) ([]int64, error) {
	return b.tracker.SaveSelection(ids)
}

// Sessions returns every session with its live group progress.
func (b *Bridge) Sessions() models.SessionsOverview {
	doc := b.sessions.Load()
	out := models.SessionsOverview{
		Sessions:        make([]models.SessionView, 0, len(doc.Sessions)),
		ActiveSessionID: doc.ActiveSessionID,
		Folders:         doc.Folders,
	}
	for _, sess := range doc.Sessions {
		out.Sessions = append(out.Sessions, models.SessionView{
			Session:       sess,
			GroupProgress: b.tracker.Group(sess.ItemIDs),
			Active:        doc.ActiveSessionID != nil && *doc.ActiveSessionID == sess.ID,
		})
	}
	return out
}

func (b *Bridge) UpsertSession(in models.Session) (models.Session, error) {
	return b.sessions.Upsert(in)
}

func (b *Bridge) DeleteSession(id string) error {
	return b.sessions.Delete(id)
}

// ActivateSession makes the session's items the tracked selection.
func (b *Bridge) ActivateSession(id string) (models.Session, error) {
	return b.sessions.Activate(id, b.tracker)
}

func (b *Bridge) CreateFolder(name string) error { return b.sessions.CreateFolder(name) }

func (b *Bridge) RenameFolder(oldName, newName string) error {
	return b.sessions.RenameFolder(oldName, newName)
}

func (b *Bridge) DeleteFolder(name string) (int, error) { return b.sessions.DeleteFolder(name) }

func (b *Bridge) MoveSessionToFolder(id, folder string) error {
	return b.sessions.MoveSessionToFolder(id, folder)
}

func (b *Bridge) ImportSessions(path string) error { return b.sessions.Import(path) }

func (b *Bridge) ExportSessions(path string) error { return b.sessions.Export(path) }

// SaveDailySnapshot records today's totals and one history row per task.
func (b *Bridge) SaveDailySnapshot() (models.DailySummary, error) {
	tasks := b.tracker.Tasks()
	date := b.tracker.Today()

	done, completed := 0, 0
	for _, t := range tasks {
		done += t.Done
		if t.Completed {
			completed++
		}
	}

	summary, err := b.stats.SaveDailySummary(date, done, completed, 0)
	if err != nil {
		return models.DailySummary{}, err
	}
	for _, t := range tasks {
		err := b.stats.SaveItemHistory(models.ItemHistory{
			Date:            date,
			ItemID:          t.ItemID,
			ItemName:        t.Name,
			DueStart:        t.DueStart,
			Done:            t.Done,
			ProgressPercent: stats.PercentOf(t.Progress),
			Completed:       t.Completed,
		})
		if err != nil {
			return summary, err
		}
	}
	b.logger.Printf("bridge: daily snapshot saved: %d done, %d items completed", done, completed)
	return summary, nil
}

func (b *Bridge) DailyStats(days int) ([]models.DailySummary, error) {
	return b.stats.DailyStats(days)
}

func (b *Bridge) ItemHistory(itemID int64, days int) ([]models.ItemHistory, error) {
	return b.stats.ItemHistory(itemID, days)
}

func (b *Bridge) TotalStats() (models.TotalStats, error) {
	return b.stats.TotalStats()
}

// ExportCSV writes the summary table to path. days <= 0 uses the
// configured history window.
func (b *Bridge) ExportCSV(path string, days int) (int, error) {
	if days <= 0 {
		days = b.historyDays
	}
	return b.stats.ExportCSV(path, days)
}
