// Package store is a small disk-backed key-value store for the few values
// spinhue keeps between runs. Each key lives in its own file named by a hash
// of the key, and writes are atomic via temp-file-then-rename.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// entrySuffix is the file extension of stored entries.
const entrySuffix = ".entry"

// entry is the JSON document persisted for each key.
type entry struct {
	Key     string          `json:"key"`
	Updated int64           `json:"updated"` // UnixNano
	Value   json.RawMessage `json:"value"`
}

// Store is safe for concurrent use within one process.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// Open returns a Store rooted at dir, creating the directory with 0755
// permissions if needed.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("store: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

// Get returns the raw JSON value for key. A missing, unreadable or corrupt
// entry is reported as a miss.
func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, err := s.readEntry(s.path(key))
	if err != nil || e.Key != key {
		return nil, false
	}
	return e.Value, true
}

// Put stores value, which must be valid JSON, under key.
func (s *Store) Put(key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("store: value for %q is not valid JSON", key)
	}
	data, err := json.Marshal(entry{
		Key:     key,
		Updated: time.Now().UnixNano(),
		Value:   value,
	})
	if err != nil {
		return fmt.Errorf("store: marshal %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := atomicWrite(s.path(key), data, s.dir); err != nil {
		return fmt.Errorf("store: write %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("store: delete %q: %w", key, err)
	}
	return nil
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Keys lists the keys of all readable entries.
func (s *Store) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("store: read directory: %w", err)
	}
	var keys []string
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), entrySuffix) {
			continue
		}
		e, err := s.readEntry(filepath.Join(s.dir, de.Name()))
		if err != nil {
			continue
		}
		keys = append(keys, e.Key)
	}
	return keys, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, hashKey(key)+entrySuffix)
}

func (s *Store) readEntry(path string) (entry, error) {
	var e entry
	data, err := os.ReadFile(path)
	if err != nil {
		return e, err
	}
	if err := json.Unmarshal(data, &e); err != nil {
		return e, err
	}
	return e, nil
}

// atomicWrite writes data to path via a temporary file and rename.
func atomicWrite(path string, data []byte, tmpDir string) error {
	tmp, err := os.CreateTemp(tmpDir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	success = true
	return nil
}
