// Package storage persists small string key/value pairs: best scores, stage progress and the pilot profile
package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// KV is a flat string key/value store
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// FileStore keeps all pairs in memory and rewrites the YAML file on every Set
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
	logger *slog.Logger
}

// OpenFile loads path if it exists
// A missing file starts empty; an unreadable or corrupt file starts empty and is overwritten on the next Set
func OpenFile(path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &FileStore{
		path:   path,
		values: make(map[string]string),
		logger: logger,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("storage read failed, using defaults", "path", path, "error", err)
		}
		return s
	}
	if err := yaml.Unmarshal(data, &s.values); err != nil {
		logger.Warn("storage parse failed, using defaults", "path", path, "error", err)
		s.values = make(map[string]string)
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	return s
}

// Get returns the stored value
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores the value and writes the file immediately
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.flush()
}

// Keys returns stored keys in sorted order
func (s *FileStore) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) flush() error {
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	// Write beside the target then rename so a crash never leaves a truncated file
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}

// MemoryStore is a KV without persistence
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the stored value
func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

// Set stores the value
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Int reads a numeric value, returning def when absent or not a number
func Int(kv KV, key string, def int) int {
	raw, ok := kv.Get(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// SetInt stores a numeric value
func SetInt(kv KV, key string, value int) error {
	return kv.Set(key, strconv.Itoa(value))
}

// RaiseInt stores value only if it exceeds the current one, reporting whether it did
func RaiseInt(kv KV, key string, value, def int) (bool, error) {
	if value <= Int(kv, key, def) {
		return false, nil
	}
	return true, SetInt(kv, key, value)
}
