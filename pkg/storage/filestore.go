package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Subscriber receives the raw JSON value written under a watched key.
type Subscriber func(raw json.RawMessage)

// FileStore keeps named JSON values in memory and mirrors them to a single
// file on disk. The in-memory value is authoritative for the session: a
// failed flush degrades durability only, it never rejects a write.
type FileStore struct {
	mu          sync.Mutex
	path        string
	values      map[string]json.RawMessage
	subscribers map[string][]Subscriber
	logger      *zap.Logger
}

// NewFileStore ensures the data directory exists and loads any previously
// persisted values. A missing or malformed file yields an empty store.
func NewFileStore(dataDir, fileName string, logger *zap.Logger) (*FileStore, error) {
	if dataDir == "" {
		dataDir = "./data"
	}
	if fileName == "" {
		fileName = "dashboard.json"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	s := &FileStore{
		path:        filepath.Join(dataDir, fileName),
		values:      make(map[string]json.RawMessage),
		subscribers: make(map[string][]Subscriber),
		logger:      logger,
	}
	s.load()
	return s, nil
}

// Get decodes the value stored under key into dest. It reports false when
// the key is absent or the stored value does not decode into dest, so the
// caller keeps whatever default dest already holds.
func (s *FileStore) Get(key string, dest interface{}) bool {
	s.mu.Lock()
	raw, ok := s.values[key]
	s.mu.Unlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.logger.Warn("stored value is malformed, using default",
			zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set records value under key, notifies subscribers of that key and flushes
// the store to disk. Serialization and disk failures are logged, never
// returned: by the time Set returns the in-memory value is updated and
// visible to subsequent Get calls.
func (s *FileStore) Set(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("value not serializable, keeping previous durable state",
			zap.String("key", key), zap.Error(err))
		return
	}

	s.mu.Lock()
	s.values[key] = raw
	subs := append([]Subscriber(nil), s.subscribers[key]...)
	flushErr := s.flushLocked()
	s.mu.Unlock()

	if flushErr != nil {
		s.logger.Error("flush failed, in-memory state retained",
			zap.String("key", key), zap.Error(flushErr))
	}

	for _, fn := range subs {
		fn(raw)
	}
}

// Subscribe registers fn to run after every Set of key.
func (s *FileStore) Subscribe(key string, fn Subscriber) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.subscribers[key] = append(s.subscribers[key], fn)
	s.mu.Unlock()
}

// Path exposes the underlying file location (useful for debugging).
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("store file unreadable, starting empty", zap.Error(err))
		}
		return
	}
	values := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &values); err != nil {
		s.logger.Warn("store file malformed, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return
	}
	s.values = values
}

// flushLocked writes the whole map via a temp file and rename so a crashed
// flush never leaves a truncated store behind. Caller holds the lock.
func (s *FileStore) flushLocked() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
