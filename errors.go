package lrcembed

import (
	"github.com/simonhull/lrcembed/internal/types"
)

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
// Re-exporting from internal/types to maintain public API.
type UnsupportedFormatError = types.UnsupportedFormatError

// SidecarDecodeError is an alias to types.SidecarDecodeError.
// Re-exporting from internal/types to maintain public API.
type SidecarDecodeError = types.SidecarDecodeError

// ContainerLoadError is an alias to types.ContainerLoadError.
// Re-exporting from internal/types to maintain public API.
type ContainerLoadError = types.ContainerLoadError

// TagWriteError is an alias to types.TagWriteError.
// Re-exporting from internal/types to maintain public API.
type TagWriteError = types.TagWriteError

// CleanupWarning is an alias to types.CleanupWarning.
// Re-exporting from internal/types to maintain public API.
type CleanupWarning = types.CleanupWarning
