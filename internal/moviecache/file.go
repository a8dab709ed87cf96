package moviecache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofrs/flock"

	"trini/internal/candidate"
	"trini/internal/logging"
)

type fileEntry struct {
	Records   []candidate.Raw `json:"records"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// FileStore keeps the cache in one JSON document. Writers hold an exclusive
// flock on path+".lock" so several trini processes can share the file.
type FileStore struct {
	path   string
	lock   *flock.Flock
	logger *slog.Logger
	mu     sync.Mutex
}

// NewFileStore creates a store backed by path. The file is created lazily on
// the first Put.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &FileStore{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logging.NewComponentLogger(logger, "moviecache"),
	}
}

// Lookup returns the records stored under key.
func (s *FileStore) Lookup(ctx context.Context, key string) ([]candidate.Raw, error) {
	var records []candidate.Raw
	err := s.withLock(ctx, false, func(entries map[string]fileEntry) (bool, error) {
		records = entries[key].Records
		return false, nil
	})
	return records, err
}

// Put replaces the records stored under key.
func (s *FileStore) Put(ctx context.Context, key string, records []candidate.Raw) error {
	return s.withLock(ctx, true, func(entries map[string]fileEntry) (bool, error) {
		entries[key] = fileEntry{Records: records, UpdatedAt: time.Now().UTC()}
		return true, nil
	})
}

// Keys lists stored keys in alphabetical order.
func (s *FileStore) Keys(ctx context.Context) ([]KeyInfo, error) {
	var infos []KeyInfo
	err := s.withLock(ctx, false, func(entries map[string]fileEntry) (bool, error) {
		for key, entry := range entries {
			infos = append(infos, KeyInfo{Key: key, Count: len(entry.Records), UpdatedAt: entry.UpdatedAt})
		}
		return false, nil
	})
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos, err
}

// Clear removes every entry.
func (s *FileStore) Clear(ctx context.Context) error {
	return s.withLock(ctx, true, func(entries map[string]fileEntry) (bool, error) {
		clear(entries)
		return true, nil
	})
}

// Close releases the file lock handle.
func (s *FileStore) Close() error {
	return s.lock.Close()
}

func (s *FileStore) withLock(ctx context.Context, exclusive bool, fn func(map[string]fileEntry) (bool, error)) error {
	ctx = ensureContext(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	if exclusive {
		if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
			return fmt.Errorf("create cache directory: %w", err)
		}
	} else if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		_, err := fn(map[string]fileEntry{})
		return err
	}

	var (
		locked bool
		err    error
	)
	if exclusive {
		locked, err = s.lock.TryLockContext(ctx, 20*time.Millisecond)
	} else {
		locked, err = s.lock.TryRLockContext(ctx, 20*time.Millisecond)
	}
	if err != nil {
		return fmt.Errorf("lock cache file: %w", err)
	}
	if !locked {
		return fmt.Errorf("lock cache file: %s is held by another process", s.lock.Path())
	}
	defer func() {
		_ = s.lock.Unlock()
	}()

	entries, err := s.load()
	if err != nil {
		if !exclusive {
			return err
		}
		logging.WarnWithContext(s.logger, "cache file unreadable; rewriting", "moviecache_load_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "reseed with trini cache seed"),
			logging.String(logging.FieldImpact, "previously cached records are discarded"))
		entries = map[string]fileEntry{}
	}
	dirty, err := fn(entries)
	if err != nil || !dirty {
		return err
	}
	return s.save(entries)
}

func (s *FileStore) load() (map[string]fileEntry, error) {
	entries := map[string]fileEntry{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entries, nil
		}
		return nil, fmt.Errorf("read cache file: %w", err)
	}
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse cache file: %w", err)
	}
	return entries, nil
}

func (s *FileStore) save(entries map[string]fileEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
