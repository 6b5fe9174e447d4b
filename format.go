package lrcembed

import (
	"github.com/simonhull/lrcembed/internal/registry"
	"github.com/simonhull/lrcembed/internal/types"
)

// Format is an alias to types.Format.
// Re-exporting from internal/types to maintain public API.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatFLAC    = types.FormatFLAC
	FormatMP3     = types.FormatMP3
	FormatM4A     = types.FormatM4A
)

// AudioFile is an alias to types.AudioFile.
type AudioFile = types.AudioFile

// NewAudioFile is a wrapper around types.NewAudioFile.
func NewAudioFile(path string) AudioFile {
	return types.NewAudioFile(path)
}

// FormatFromPath is a wrapper around types.FormatFromPath.
func FormatFromPath(path string) Format {
	return types.FormatFromPath(path)
}

// IsSupported reports whether path has an extension with a lyrics adapter.
func IsSupported(path string) bool {
	return types.FormatFromPath(path) != types.FormatUnknown
}

// Tagger is an alias to registry.Tagger.
// Re-exporting from internal/registry to maintain public API.
type Tagger = registry.Tagger

// Container is an alias to registry.Container.
type Container = registry.Container

// WriteOptions is an alias to registry.WriteOptions.
type WriteOptions = registry.WriteOptions
