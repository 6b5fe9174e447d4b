package types

import (
	"path/filepath"
	"strings"
)

// Format represents the container format of an audio file.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatFLAC represents FLAC files carrying Vorbis comments.
	FormatFLAC
	// FormatMP3 represents MP3 files carrying ID3v2 tags.
	FormatMP3
	// FormatM4A represents MPEG-4 audio files carrying iTunes-style atoms.
	FormatM4A
)

// String returns the display name of the format.
func (f Format) String() string {
	switch f {
	case FormatFLAC:
		return "FLAC"
	case FormatMP3:
		return "MP3"
	case FormatM4A:
		return "M4A"
	default:
		return "Unknown"
	}
}

// Extensions returns the file extensions handled for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatFLAC:
		return []string{".flac"}
	case FormatMP3:
		return []string{".mp3"}
	case FormatM4A:
		return []string{".m4a"}
	default:
		return nil
	}
}

// Supported lists every format that has a lyrics adapter.
func Supported() []Format {
	return []Format{FormatFLAC, FormatMP3, FormatM4A}
}

// FormatFromPath determines the format from the file extension.
//
// Matching is case-insensitive (".FLAC" and ".flac" are the same format).
// File content is never examined: a file named "x.mp3" is treated as MP3
// even if its bytes say otherwise, and the adapter reports the mismatch
// as a load error.
func FormatFromPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range Supported() {
		for _, e := range f.Extensions() {
			if ext == e {
				return f
			}
		}
	}
	return FormatUnknown
}
