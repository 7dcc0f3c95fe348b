package host

import (
	"log"
	"sync"

	"taskbar/backend/jsonfile"
	"taskbar/backend/models"
)

// StateStore is a Host fed by state the host application pushes. The last
// pushed state is written to path (when set) so a restart keeps it.
type StateStore struct {
	mu     sync.RWMutex
	path   string
	logger *log.Logger
	state  models.HostState
	idx    index
}

// NewStateStore loads the last persisted state from path, if any. An empty
// path keeps state in memory only.
func NewStateStore(path string, logger *log.Logger) *StateStore {
	s := &StateStore{path: path, logger: logger, idx: buildIndex(models.DueNode{})}
	if path == "" {
		return s
	}
	var st models.HostState
	found, err := jsonfile.Read(path, &st)
	if err != nil {
		logger.Printf("host: ignoring persisted state: %v", err)
		return s
	}
	if found {
		s.state = st
		s.idx = buildIndex(st.Tree)
	}
	return s
}

// Push replaces the current host state.
func (s *StateStore) Push(st models.HostState) error {
	idx := buildIndex(st.Tree)

	s.mu.Lock()
	s.state = st
	s.idx = idx
	s.mu.Unlock()

	if s.path == "" {
		return nil
	}
	return jsonfile.Write(s.path, st, "  ")
}

func (s *StateStore) Today() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Today == nil {
		return 0, false
	}
	return *s.state.Today, true
}

func (s *StateStore) Counts() map[int64]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int64]int, len(s.idx.counts))
	for id, n := range s.idx.counts {
		out[id] = n
	}
	return out
}

func (s *StateStore) Tree() models.DueNode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Tree
}

func (s *StateStore) Name(id int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	name, ok := s.idx.names[id]
	return name, ok
}

func (s *StateStore) Exists(id int64) bool {
	_, ok := s.Name(id)
	return ok
}

func (s *StateStore) ReviewTotals() models.ReviewTotals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ReviewTotals
}
