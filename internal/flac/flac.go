// Package flac embeds lyrics into FLAC files as a LYRICS Vorbis comment.
package flac

import (
	"bytes"
	"fmt"
	"os"

	goflac "github.com/go-flac/go-flac"
	"github.com/go-flac/flacvorbis"

	"github.com/simonhull/lrcembed/internal/atomicfile"
	"github.com/simonhull/lrcembed/internal/registry"
	"github.com/simonhull/lrcembed/internal/types"
	"github.com/simonhull/lrcembed/internal/vorbis"
)

func init() {
	registry.Register(types.FormatFLAC, &tagger{})
}

type tagger struct{}

// Open reads the whole file into memory and parses its metadata blocks.
// No file handle outlives the call.
func (t *tagger) Open(path string, opts registry.WriteOptions) (registry.Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, loadError(path, err)
	}

	f, err := goflac.ParseBytes(bytes.NewReader(data))
	if err != nil {
		return nil, loadError(path, err)
	}

	c := &container{path: path, opts: opts, file: f, cmtIdx: -1}
	for i, block := range f.Meta {
		if block.Type != goflac.VorbisComment {
			continue
		}
		cmt, err := flacvorbis.ParseFromMetaDataBlock(*block)
		if err != nil {
			return nil, loadError(path, fmt.Errorf("vorbis comment block: %w", err))
		}
		c.cmt = cmt
		c.cmtIdx = i
		break
	}

	return c, nil
}

type container struct {
	path   string
	opts   registry.WriteOptions
	file   *goflac.File
	cmt    *flacvorbis.MetaDataBlockVorbisComment
	cmtIdx int // index of the vorbis comment block in file.Meta, -1 if none
}

func (c *container) HasLyrics() bool {
	return c.cmt != nil && vorbis.Has(c.cmt.Comments, vorbis.LyricsKey)
}

func (c *container) Lyrics() string {
	if c.cmt == nil {
		return ""
	}
	v, _ := vorbis.Get(c.cmt.Comments, vorbis.LyricsKey)
	return v
}

// WriteLyrics replaces every LYRICS comment with a single one holding text,
// leaving all other comments and blocks untouched. A file without a
// comment block gets one appended after its existing blocks.
func (c *container) WriteLyrics(text string) error {
	if c.file == nil {
		return &types.TagWriteError{Path: c.path, Format: types.FormatFLAC, Err: fmt.Errorf("container closed")}
	}

	cmt := c.cmt
	if cmt == nil {
		cmt = flacvorbis.New()
	}
	cmt.Comments = vorbis.Set(cmt.Comments, vorbis.LyricsKey, text)

	block := cmt.Marshal()
	if c.cmtIdx < 0 {
		c.file.Meta = append(c.file.Meta, &block)
		c.cmtIdx = len(c.file.Meta) - 1
	} else {
		c.file.Meta[c.cmtIdx] = &block
	}
	c.cmt = cmt

	var opts []atomicfile.Option
	if c.opts.PreserveModTime {
		opts = append(opts, atomicfile.WithPreserveModTime())
	}
	if c.opts.BackupSuffix != "" {
		opts = append(opts, atomicfile.WithBackup(c.opts.BackupSuffix))
	}
	if err := atomicfile.Write(c.path, c.file.Marshal(), opts...); err != nil {
		return &types.TagWriteError{Path: c.path, Format: types.FormatFLAC, Err: err}
	}
	return nil
}

// Close drops the parsed file; the backing file is not held open.
func (c *container) Close() error {
	c.file = nil
	c.cmt = nil
	return nil
}

func loadError(path string, err error) error {
	return &types.ContainerLoadError{Path: path, Format: types.FormatFLAC, Err: err}
}
