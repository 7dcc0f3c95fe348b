// Package kvstore persists small typed records (day markers, the baseline
// snapshot, the bridge passphrase) under string keys.
package kvstore

import (
	"log"
	"sync"

	"github.com/goccy/go-json"

	"taskbar/backend/apperr"
	"taskbar/backend/jsonfile"
)

// Store is the key-value capability the tracker depends on.
type Store interface {
	// Get decodes the value stored under key into v. found is false when
	// the key is absent.
	Get(key string, v any) (found bool, err error)
	// Set encodes v and stores it under key.
	Set(key string, v any) error
}

// FileStore keeps every key in a single JSON object on disk.
type FileStore struct {
	path   string
	logger *log.Logger
	mu     sync.Mutex
}

func NewFileStore(path string, logger *log.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

func (s *FileStore) load() (map[string]json.RawMessage, error) {
	doc := map[string]json.RawMessage{}
	if _, err := jsonfile.Read(s.path, &doc); err != nil {
		return map[string]json.RawMessage{}, err
	}
	return doc, nil
}

func (s *FileStore) Get(key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return false, err
	}
	raw, ok := doc[key]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, apperr.Consistency("decode "+key, err)
	}
	return true, nil
}

func (s *FileStore) Set(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		if !apperr.IsConsistency(err) {
			return err
		}
		s.logger.Printf("kvstore: %v; starting from an empty document", err)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return apperr.Consistency("encode "+key, err)
	}
	doc[key] = raw
	return jsonfile.Write(s.path, doc, "  ")
}

// MemoryStore is a Store that never touches disk.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

func (s *MemoryStore) Get(key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, apperr.Consistency("decode "+key, err)
	}
	return true, nil
}

func (s *MemoryStore) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return apperr.Consistency("encode "+key, err)
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}
