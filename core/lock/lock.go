// Package lock prevents two sync runs from sharing a data directory.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileName is the name of the lock file inside the data directory.
const FileName = "application-sync.lock"

// ErrLocked is returned when another process holds the lock.
var ErrLocked = errors.New("lock: another sync is running")

// Lock is an exclusive, process-level lock on a data directory.
type Lock struct {
	fl *flock.Flock
}

// Acquire takes the lock of dir without waiting. The directory is created if needed.
func Acquire(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("lock: create data dir: %w", err)
	}

	fl := flock.New(filepath.Join(dir, FileName))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrLocked, fl.Path())
	}
	return &Lock{fl: fl}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.fl.Path()
}

// Release frees the lock.
func (l *Lock) Release() error {
	return l.fl.Unlock()
}
