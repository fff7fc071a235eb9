// Package file implements storage.Store on flat files, one file per key.
// Writes go through a temp file and rename, so readers always see a complete
// value; an RWMutex serializes writers against in-process readers. This is
// the documented single-writer, copy-on-read consistency model, suitable
// for a catalog that changes rarely relative to read volume.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/getpawsy/pawsy/internal/storage"
)

// Compile-time check: Store implements storage.Store.
var _ storage.Store = (*Store)(nil)

// Config holds file store settings.
type Config struct {
	// Dir is the data directory. Created if missing.
	Dir string
}

// Store implements storage.Store on a directory of files.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// NewStore creates a file store rooted at cfg.Dir.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("dir is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", cfg.Dir, err)
	}
	return &Store{dir: cfg.Dir}, nil
}

// Get retrieves a value by key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, &storage.Error{Op: storage.OpGet, Err: err}
	}
	return data, nil
}

// Set stores a value atomically: write to a temp file, then rename over the
// target so a crash never leaves a torn value behind.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.path(key)
	tmp, err := os.CreateTemp(s.dir, filepath.Base(target)+".tmp-*")
	if err != nil {
		return &storage.Error{Op: storage.OpSet, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &storage.Error{Op: storage.OpSet, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &storage.Error{Op: storage.OpSet, Err: err}
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return &storage.Error{Op: storage.OpSet, Err: err}
	}
	return nil
}

// Del removes a key. Missing keys are not an error.
func (s *Store) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &storage.Error{Op: storage.OpDel, Err: err}
	}
	return nil
}

// Ping checks that the data directory is still a writable directory.
func (s *Store) Ping(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return &storage.Error{Op: storage.OpPing, Err: err}
	}
	if !info.IsDir() {
		return &storage.Error{Op: storage.OpPing, Err: fmt.Errorf("%s is not a directory", s.dir)}
	}
	return nil
}

// WaitForReady polls Ping until the store responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		if err := s.Ping(ctx); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for data dir: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

// Close is a no-op for the file driver.
func (s *Store) Close() {}

// path maps a key to a file name. Colons in keys (namespace separators)
// become underscores so keys stay portable across filesystems.
func (s *Store) path(key string) string {
	name := strings.NewReplacer(":", "_", "/", "_").Replace(key) + ".json"
	return filepath.Join(s.dir, name)
}
