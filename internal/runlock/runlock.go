// Package runlock prevents two lrcembed runs from working on the same
// directory at once.
package runlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileName is the lock file created in each locked directory.
const FileName = ".lrcembed.lock"

// ErrLocked is returned when another process holds the lock.
var ErrLocked = errors.New("directory is locked by another lrcembed run")

// Lock is an advisory lock on one directory.
type Lock struct {
	path string
	fl   *flock.Flock
}

// Acquire takes the lock for dir without blocking.
func Acquire(dir string) (*Lock, error) {
	path := filepath.Join(dir, FileName)
	fl := flock.New(path)

	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrLocked)
	}
	return &Lock{path: path, fl: fl}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Release removes the lock file and unlocks it.
func (l *Lock) Release() error {
	_ = os.Remove(l.path) //nolint:errcheck // Leftover lock files are harmless
	return l.fl.Unlock()
}

// Set is a group of locks acquired together.
type Set []*Lock

// AcquireAll locks every distinct directory in dirs. If any lock cannot be
// taken, the ones already held are released.
func AcquireAll(dirs []string) (Set, error) {
	seen := make(map[string]bool)
	var set Set
	for _, dir := range dirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			abs = dir
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true

		l, err := Acquire(abs)
		if err != nil {
			_ = set.Release()
			return nil, err
		}
		set = append(set, l)
	}
	return set, nil
}

// Release releases every lock in the set and returns the first error.
func (s Set) Release() error {
	var first error
	for _, l := range s {
		if err := l.Release(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
