// Package registry manages the format-specific lyric adapters.
package registry

import (
	"fmt"
	"sync"

	"github.com/simonhull/lrcembed/internal/types"
)

// Container is an opened audio container whose lyrics tag can be read and
// replaced.
//
// A Container holds file resources until Close is called. Close must be
// safe to call after a failed WriteLyrics.
type Container interface {
	// HasLyrics reports whether the container already carries a lyrics tag.
	// It never fails; load errors surface from Tagger.Open.
	HasLyrics() bool

	// Lyrics returns the current lyrics text, or "" if none.
	Lyrics() string

	// WriteLyrics replaces the lyrics tag with text and persists the
	// container to its backing file.
	WriteLyrics(text string) error

	// Close releases file handles and in-memory tag state.
	Close() error
}

// WriteOptions configures how a Tagger persists changes.
type WriteOptions struct {
	// PreserveModTime restores the audio file's modification time after a write.
	PreserveModTime bool

	// BackupSuffix, when set, keeps the previous file content at
	// path+BackupSuffix.
	BackupSuffix string
}

// Tagger opens containers of a single format.
type Tagger interface {
	Open(path string, opts WriteOptions) (Container, error)
}

var (
	mu      sync.RWMutex
	taggers = make(map[types.Format]Tagger)
)

// Register registers a tagger for a format.
// This is called by format packages during initialization (init functions).
func Register(format types.Format, tagger Tagger) {
	mu.Lock()
	defer mu.Unlock()
	taggers[format] = tagger
}

// Get returns the tagger for a given format.
// Returns nil if no tagger is registered for the format.
func Get(format types.Format) Tagger {
	mu.RLock()
	defer mu.RUnlock()
	return taggers[format]
}

// Lookup returns the tagger for file, or an UnsupportedFormatError when the
// extension is not handled or no adapter package was linked in.
func Lookup(file types.AudioFile) (Tagger, error) {
	if file.Format == types.FormatUnknown {
		return nil, &types.UnsupportedFormatError{
			Path:   file.Path,
			Reason: "no adapter for extension",
		}
	}
	t := Get(file.Format)
	if t == nil {
		return nil, &types.UnsupportedFormatError{
			Path:   file.Path,
			Reason: fmt.Sprintf("no tagger registered for %s", file.Format),
		}
	}
	return t, nil
}
