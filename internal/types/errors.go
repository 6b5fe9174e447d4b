package types

import "fmt"

// UnsupportedFormatError is returned when a file's extension has no adapter.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// SidecarDecodeError is returned when a sidecar is not valid UTF-8.
//
// Offset is the byte offset of the first invalid sequence.
type SidecarDecodeError struct {
	Path   string
	Offset int
}

func (e *SidecarDecodeError) Error() string {
	return fmt.Sprintf("%s: invalid UTF-8 at byte %d", e.Path, e.Offset)
}

// ContainerLoadError is returned when an audio container cannot be opened
// or parsed.
type ContainerLoadError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ContainerLoadError) Error() string {
	return fmt.Sprintf("%s: load %s container: %v", e.Path, e.Format, e.Err)
}

func (e *ContainerLoadError) Unwrap() error {
	return e.Err
}

// TagWriteError is returned when lyrics cannot be persisted, or when the
// persisted value cannot be confirmed by reading it back.
type TagWriteError struct {
	Path   string
	Format Format
	Err    error
}

func (e *TagWriteError) Error() string {
	return fmt.Sprintf("%s: write %s lyrics: %v", e.Path, e.Format, e.Err)
}

func (e *TagWriteError) Unwrap() error {
	return e.Err
}

// CleanupWarning records a non-fatal failure to delete or rename a sidecar.
//
// It never changes a file's outcome; it is attached to it.
type CleanupWarning struct {
	Path string
	Op   string // "delete" or "rename"
	Err  error
}

func (w *CleanupWarning) Error() string {
	return fmt.Sprintf("%s: %s sidecar: %v", w.Path, w.Op, w.Err)
}

func (w *CleanupWarning) Unwrap() error {
	return w.Err
}
