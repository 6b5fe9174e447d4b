package lrcembed

import (
	"errors"
	"os"

	"github.com/simonhull/lrcembed/internal/types"
)

var errDiskFull = errors.New("no space left on device")

// fakeTagger keeps lyrics in memory, keyed by path, and counts handles.
type fakeTagger struct {
	format types.Format
	store  map[string]string

	openErr  error
	writeErr map[string]error
	corrupt  bool   // Lyrics returns something other than what was written
	onWrite  func() // runs inside WriteLyrics after storing

	opens  int
	closes int
}

func newFakeTagger(format types.Format) *fakeTagger {
	return &fakeTagger{
		format:   format,
		store:    make(map[string]string),
		writeErr: make(map[string]error),
	}
}

func (f *fakeTagger) Open(path string, opts WriteOptions) (Container, error) {
	if f.openErr != nil {
		return nil, &types.ContainerLoadError{Path: path, Format: f.format, Err: f.openErr}
	}
	f.opens++
	return &fakeContainer{tagger: f, path: path}, nil
}

type fakeContainer struct {
	tagger *fakeTagger
	path   string
}

func (c *fakeContainer) HasLyrics() bool {
	return c.tagger.store[c.path] != ""
}

func (c *fakeContainer) Lyrics() string {
	if c.tagger.corrupt {
		return c.tagger.store[c.path] + "\x00"
	}
	return c.tagger.store[c.path]
}

func (c *fakeContainer) WriteLyrics(text string) error {
	if err := c.tagger.writeErr[c.path]; err != nil {
		return &types.TagWriteError{Path: c.path, Format: c.tagger.format, Err: err}
	}
	c.tagger.store[c.path] = text
	if c.tagger.onWrite != nil {
		c.tagger.onWrite()
	}
	return nil
}

func (c *fakeContainer) Close() error {
	c.tagger.closes++
	return nil
}

// failWrites wraps a real tagger so that every WriteLyrics fails without
// touching the file.
type failWrites struct {
	Tagger
	format types.Format
}

func (f failWrites) Open(path string, opts WriteOptions) (Container, error) {
	c, err := f.Tagger.Open(path, opts)
	if err != nil {
		return nil, err
	}
	return failingContainer{Container: c, path: path, format: f.format}, nil
}

type failingContainer struct {
	Container
	path   string
	format types.Format
}

func (c failingContainer) WriteLyrics(string) error {
	return &types.TagWriteError{Path: c.path, Format: c.format, Err: errDiskFull}
}

func mustRemove(path string) func() {
	return func() { _ = os.Remove(path) }
}
