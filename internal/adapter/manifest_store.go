package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	m "github.com/awhisler/wdioTest/internal/model"
)

const (
	manifestLockName        = ".tests.lock"
	defaultLockRetryDelay   = 10 * time.Millisecond
	manifestEntrySeparator  = " "
	manifestFilePermissions = 0o600
)

// ManifestStore owns the failure manifest file and its directory.
type ManifestStore interface {
	// Dir returns the manifest directory.
	Dir() m.Path
	// Reset removes the directory if present and recreates it empty.
	Reset() error
	// Append writes entry to the manifest, creating it when absent and
	// otherwise appending it after a single space. Appends are serialized
	// within the process and across processes.
	Append(ctx context.Context, entry string) error
	// Read returns the manifest content. A missing manifest reads as empty.
	Read() (string, error)
	// RemoveFile deletes the manifest file if present.
	RemoveFile() error
	// RemoveDir deletes the manifest directory if present.
	RemoveDir() error
}

// FileManifestStore keeps the manifest at <dir>/tests.txt and guards appends
// with <dir>/.tests.lock.
type FileManifestStore struct {
	dir        m.Path
	retryDelay time.Duration
	mu         sync.Mutex
}

// NewFileManifestStore returns a store rooted at dir.
func NewFileManifestStore(dir m.Path) *FileManifestStore {
	return &FileManifestStore{
		dir:        dir,
		retryDelay: defaultLockRetryDelay,
	}
}

// Dir returns the manifest directory.
func (s *FileManifestStore) Dir() m.Path {
	return s.dir
}

func (s *FileManifestStore) file() string {
	return filepath.Join(string(s.dir), m.ManifestFileName)
}

// Reset clears any previous manifest.
func (s *FileManifestStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.RemoveAll(string(s.dir)); err != nil {
		return fmt.Errorf("remove manifest dir: %w", err)
	}

	if err := os.MkdirAll(string(s.dir), 0o750); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}

	return nil
}

// Append adds one entry under the process mutex and the file lock.
func (s *FileManifestStore) Append(ctx context.Context, entry string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(string(s.dir), 0o750); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}

	lock := flock.New(filepath.Join(string(s.dir), manifestLockName))

	locked, err := lock.TryLockContext(ctx, s.retryDelay)
	if err != nil {
		return fmt.Errorf("lock manifest: %w", err)
	}

	if !locked {
		return fmt.Errorf("lock manifest: %w", context.Cause(ctx))
	}

	defer func() {
		if err := lock.Unlock(); err != nil {
			slog.Warn("Failed to unlock manifest", "path", lock.Path(), "error", err)
		}
	}()

	return s.appendLocked(entry)
}

func (s *FileManifestStore) appendLocked(entry string) error {
	path := s.file()

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("Creating failure manifest", "path", path, "entry", entry)

		return os.WriteFile(path, []byte(entry), manifestFilePermissions)
	case err != nil:
		return fmt.Errorf("stat manifest: %w", err)
	}

	// #nosec G304 - manifest path is fixed by the report layout
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, manifestFilePermissions)
	if err != nil {
		return fmt.Errorf("open manifest: %w", err)
	}

	if _, err := f.WriteString(manifestEntrySeparator + entry); err != nil {
		_ = f.Close()
		return fmt.Errorf("append manifest: %w", err)
	}

	return f.Close()
}

// Read returns the manifest content.
func (s *FileManifestStore) Read() (string, error) {
	data, err := os.ReadFile(s.file())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}

		return "", fmt.Errorf("read manifest: %w", err)
	}

	return string(data), nil
}

// RemoveFile deletes the manifest file.
func (s *FileManifestStore) RemoveFile() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.file())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove manifest: %w", err)
	}

	return nil
}

// RemoveDir deletes the manifest directory.
func (s *FileManifestStore) RemoveDir() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.RemoveAll(string(s.dir)); err != nil {
		return fmt.Errorf("remove manifest dir: %w", err)
	}

	return nil
}
