// Package mp3 embeds lyrics into MP3 files as an ID3v2 USLT frame.
package mp3

import (
	"fmt"

	"github.com/bogem/id3v2/v2"

	"github.com/simonhull/lrcembed/internal/atomicfile"
	"github.com/simonhull/lrcembed/internal/registry"
	"github.com/simonhull/lrcembed/internal/types"
)

const (
	// lyricsFrameID is the unsynchronised lyrics/text transcription frame.
	lyricsFrameID = "USLT"

	// unknownLanguage is the ID3 code for an undetermined language. The
	// frame requires exactly three letters, so it stands in for "none".
	unknownLanguage = "XXX"
)

func init() {
	registry.Register(types.FormatMP3, &tagger{})
}

type tagger struct{}

func (t *tagger) Open(path string, opts registry.WriteOptions) (registry.Container, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, &types.ContainerLoadError{Path: path, Format: types.FormatMP3, Err: err}
	}
	return &container{path: path, opts: opts, tag: tag}, nil
}

type container struct {
	path string
	opts registry.WriteOptions
	tag  *id3v2.Tag
}

// HasLyrics reports whether any USLT frame exists, whatever its language
// or description.
func (c *container) HasLyrics() bool {
	return c.tag != nil && len(c.tag.GetFrames(lyricsFrameID)) > 0
}

func (c *container) Lyrics() string {
	if c.tag == nil {
		return ""
	}
	for _, f := range c.tag.GetFrames(lyricsFrameID) {
		if uslt, ok := f.(id3v2.UnsynchronisedLyricsFrame); ok {
			return uslt.Lyrics
		}
	}
	return ""
}

// WriteLyrics deletes every USLT frame and adds exactly one, so repeated
// runs replace lyrics instead of accumulating frames with different
// language or description fields.
func (c *container) WriteLyrics(text string) error {
	if c.tag == nil {
		return &types.TagWriteError{Path: c.path, Format: types.FormatMP3, Err: fmt.Errorf("container closed")}
	}

	c.tag.DeleteFrames(lyricsFrameID)
	c.tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
		Encoding:          encodingFor(c.tag.Version()),
		Language:          unknownLanguage,
		ContentDescriptor: "",
		Lyrics:            text,
	})

	if c.opts.BackupSuffix != "" {
		if err := atomicfile.Backup(c.path, c.opts.BackupSuffix); err != nil {
			return &types.TagWriteError{Path: c.path, Format: types.FormatMP3, Err: err}
		}
	}

	restore := func() {}
	if c.opts.PreserveModTime {
		restore = atomicfile.KeepModTime(c.path)
	}
	if err := c.tag.Save(); err != nil {
		return &types.TagWriteError{Path: c.path, Format: types.FormatMP3, Err: err}
	}
	restore()
	return nil
}

func (c *container) Close() error {
	if c.tag == nil {
		return nil
	}
	err := c.tag.Close()
	c.tag = nil
	return err
}

// encodingFor picks UTF-8 where the tag version supports it. ID3v2.3 has
// no UTF-8 encoding; UTF-16 with BOM is its lossless equivalent.
func encodingFor(version byte) id3v2.Encoding {
	if version < 4 {
		return id3v2.EncodingUTF16
	}
	return id3v2.EncodingUTF8
}
