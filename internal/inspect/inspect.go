// Package inspect summarizes the lyric state of an audio file.
//
// Tags are read with an independent reader rather than the embedding
// adapters, so a report also cross-checks what was written.
package inspect

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhowden/tag"

	"github.com/simonhull/lrcembed/internal/types"
)

// Report describes one audio file.
type Report struct {
	Path   string
	Format types.Format

	// TagFormat is the tag flavour found in the file, e.g. "VORBIS" or "ID3v2.4".
	TagFormat string
	Title     string
	Artist    string
	Album     string

	HasLyrics   bool
	LyricsLines int
	// Preview is the first non-empty line of the embedded lyrics.
	Preview string

	SidecarPath   string
	SidecarExists bool
	// FailedExists reports a "<name>.lrc.failed" left by an earlier failure.
	FailedExists bool
}

// Inspect reads the tags of the audio file at path.
func Inspect(path string) (Report, error) {
	file := types.NewAudioFile(path)
	r := Report{
		Path:        path,
		Format:      file.Format,
		SidecarPath: file.SidecarPath,
	}
	if file.Format == types.FormatUnknown {
		return r, &types.UnsupportedFormatError{Path: path, Reason: "no adapter for extension"}
	}

	r.SidecarExists = isFile(file.SidecarPath)
	r.FailedExists = isFile(file.SidecarPath + types.FailedSuffix)

	f, err := os.Open(path)
	if err != nil {
		return r, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return r, &types.ContainerLoadError{Path: path, Format: file.Format, Err: fmt.Errorf("read tags: %w", err)}
	}

	r.TagFormat = string(m.Format())
	r.Title = m.Title()
	r.Artist = m.Artist()
	r.Album = m.Album()

	lyrics := m.Lyrics()
	if lyrics != "" {
		r.HasLyrics = true
		lines := strings.Split(strings.ReplaceAll(lyrics, "\r\n", "\n"), "\n")
		r.LyricsLines = len(lines)
		for _, line := range lines {
			if s := strings.TrimSpace(line); s != "" {
				r.Preview = s
				break
			}
		}
	}
	return r, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
