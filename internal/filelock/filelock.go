// Package filelock guards a project tree against concurrent runs and
// provides atomic file writes for configuration bootstrapping.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// lockName is the lock file dropped in the project root while a batch
// is renaming files inside it.
const lockName = ".jdfile.lock"

// BatchLock serializes batches per project root. Unique-name resolution
// observes the filesystem state left by earlier renames, so two
// concurrent runs in the same tree could both claim the same free name.
type BatchLock struct {
	flock *flock.Flock
	path  string
}

// AcquireBatch takes the batch lock for root without blocking. A held
// lock means another run is active in the same tree; that is an error,
// not a wait.
func AcquireBatch(root string) (*BatchLock, error) {
	path := filepath.Join(root, lockName)
	fl := flock.New(path)

	acquired, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire batch lock %s: %w", path, err)
	}
	if !acquired {
		return nil, fmt.Errorf("project %s is locked by another run", root)
	}
	return &BatchLock{flock: fl, path: path}, nil
}

// Release drops the lock and removes the lock file.
func (b *BatchLock) Release() error {
	if err := b.flock.Unlock(); err != nil {
		return fmt.Errorf("release batch lock %s: %w", b.path, err)
	}
	os.Remove(b.path)
	return nil
}

// AtomicWrite writes data to path through a temp file in the same
// directory followed by a rename, so readers never observe a partial
// file. Parent directories are created as needed.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("set permissions: %w", err)
	}

	// Rename is atomic within one filesystem.
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", path, err)
	}
	tmp = nil
	return nil
}
