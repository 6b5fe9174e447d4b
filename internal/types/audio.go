package types

import (
	"path/filepath"
	"strings"
)

// SidecarExt is the extension of lyric sidecar files.
const SidecarExt = ".lrc"

// FailedSuffix is appended to a sidecar whose embedding failed.
const FailedSuffix = ".failed"

// AudioFile identifies one audio file queued for embedding.
//
// AudioFile is immutable once constructed: the format is derived once,
// from the extension, and the sidecar path follows from the audio path.
type AudioFile struct {
	Path        string
	Format      Format
	SidecarPath string
}

// NewAudioFile builds an AudioFile for path.
//
// Unsupported extensions yield Format == FormatUnknown; callers filter
// those out before dispatching to an adapter.
func NewAudioFile(path string) AudioFile {
	return AudioFile{
		Path:        path,
		Format:      FormatFromPath(path),
		SidecarPath: SidecarPathFor(path),
	}
}

// Name returns the base name of the audio file.
func (a AudioFile) Name() string {
	return filepath.Base(a.Path)
}

// SidecarPathFor replaces the extension of audioPath with ".lrc",
// keeping the directory and stem.
//
//	SidecarPathFor("/music/a/song.flac") == "/music/a/song.lrc"
func SidecarPathFor(audioPath string) string {
	ext := filepath.Ext(audioPath)
	return strings.TrimSuffix(audioPath, ext) + SidecarExt
}
