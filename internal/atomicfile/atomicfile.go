// Package atomicfile replaces file contents without ever exposing a
// partially written file at the destination path.
package atomicfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TempPattern is the pattern of temporary files created next to the target.
// Directory scanners skip names matching it.
const TempPattern = ".lrcembed-*.tmp"

// Write replaces the file at path with data.
//
// The data goes to a temporary file in the same directory, is fsynced, and
// is then renamed over path. If any step fails, path is left untouched and
// the temporary file is removed. The permission bits of an existing file
// are carried over to the replacement.
func Write(path string, data []byte, opts ...Option) error { //nolint:gocyclo // Atomic file operations require sequential steps
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	mode := os.FileMode(0o644)
	var origModTime time.Time
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
		origModTime = info.ModTime()
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), TempPattern)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tempPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if options.backupSuffix != "" {
		if _, err := os.Stat(path); err == nil {
			if err := os.Rename(path, path+options.backupSuffix); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}
	success = true

	if options.preserveModTime && !origModTime.IsZero() {
		_ = os.Chtimes(path, origModTime, origModTime) //nolint:errcheck // Non-fatal: file was written successfully
	}

	return nil
}

// Backup copies path to path+suffix, replacing an older backup. Write has
// the same effect through WithBackup; Backup serves writers that rewrite
// the file themselves. The copy keeps the permission bits and modification
// time of the original.
func Backup(path, suffix string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("create backup: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("create backup: %w", err)
	}
	if err := Write(path+suffix, data); err != nil {
		return fmt.Errorf("create backup: %w", err)
	}
	if err := os.Chmod(path+suffix, info.Mode().Perm()); err != nil {
		return fmt.Errorf("create backup: %w", err)
	}
	_ = os.Chtimes(path+suffix, info.ModTime(), info.ModTime()) //nolint:errcheck // Content is what matters
	return nil
}

// KeepModTime records the modification time of path and returns a function
// that restores it. It is meant for writers that rewrite the file
// themselves:
//
//	restore := atomicfile.KeepModTime(path)
//	err := tag.Save()
//	if err == nil {
//		restore()
//	}
//
// If path cannot be stat'ed the returned function does nothing.
func KeepModTime(path string) func() {
	info, err := os.Stat(path)
	if err != nil {
		return func() {}
	}
	mtime := info.ModTime()
	return func() {
		_ = os.Chtimes(path, mtime, mtime) //nolint:errcheck // Non-fatal: content already written
	}
}
