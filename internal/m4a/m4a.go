// Package m4a embeds lyrics into MPEG-4 audio files as a ©lyr atom.
package m4a

import (
	"fmt"

	"github.com/Sorrow446/go-mp4tag"

	"github.com/simonhull/lrcembed/internal/atomicfile"
	"github.com/simonhull/lrcembed/internal/registry"
	"github.com/simonhull/lrcembed/internal/types"
)

func init() {
	registry.Register(types.FormatM4A, &tagger{})
}

type tagger struct{}

func (t *tagger) Open(path string, opts registry.WriteOptions) (registry.Container, error) {
	mp4, err := mp4tag.Open(path)
	if err != nil {
		return nil, loadError(path, err)
	}

	tags, err := mp4.Read()
	if err != nil {
		mp4.Close()
		return nil, loadError(path, err)
	}

	return newContainer(path, opts, tags, mp4.Write, func() { mp4.Close() }), nil
}

// writeFunc persists tags; names listed in the second argument are deleted.
type writeFunc func(tags *mp4tag.MP4Tags, del []string) error

type container struct {
	path  string
	opts  registry.WriteOptions
	tags  *mp4tag.MP4Tags
	write writeFunc
	close func()
}

func newContainer(path string, opts registry.WriteOptions, tags *mp4tag.MP4Tags, write writeFunc, closeFn func()) *container {
	if tags == nil {
		tags = &mp4tag.MP4Tags{}
	}
	return &container{path: path, opts: opts, tags: tags, write: write, close: closeFn}
}

// HasLyrics reports whether the ©lyr atom carries any text.
func (c *container) HasLyrics() bool {
	return c.tags != nil && c.tags.Lyrics != ""
}

func (c *container) Lyrics() string {
	if c.tags == nil {
		return ""
	}
	return c.tags.Lyrics
}

// WriteLyrics passes only the ©lyr value: the library merges it onto the
// atoms already in the file and appends every picture or freeform value it
// receives. Empty strings are skipped on merge, so clearing is a delete.
func (c *container) WriteLyrics(text string) error {
	if c.write == nil {
		return &types.TagWriteError{Path: c.path, Format: types.FormatM4A, Err: fmt.Errorf("container closed")}
	}

	var del []string
	if text == "" {
		del = []string{"lyrics"}
	}

	if c.opts.BackupSuffix != "" {
		if err := atomicfile.Backup(c.path, c.opts.BackupSuffix); err != nil {
			return &types.TagWriteError{Path: c.path, Format: types.FormatM4A, Err: err}
		}
	}

	restore := func() {}
	if c.opts.PreserveModTime {
		restore = atomicfile.KeepModTime(c.path)
	}
	if err := c.write(&mp4tag.MP4Tags{Lyrics: text}, del); err != nil {
		return &types.TagWriteError{Path: c.path, Format: types.FormatM4A, Err: err}
	}
	restore()

	c.tags.Lyrics = text
	return nil
}

func (c *container) Close() error {
	if c.close != nil {
		c.close()
	}
	c.close = nil
	c.write = nil
	return nil
}

func loadError(path string, err error) error {
	return &types.ContainerLoadError{Path: path, Format: types.FormatM4A, Err: err}
}
