package sidecar

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/simonhull/lrcembed/internal/types"
)

func writeSidecar(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestResolve_Missing(t *testing.T) {
	dir := t.TempDir()

	got, err := Resolve(filepath.Join(dir, "track.mp3"))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != nil {
		t.Errorf("Resolve() = %+v, want nil", got)
	}
}

func TestResolve_Text(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"plain", []byte("line1\nline2"), "line1\nline2"},
		{"timestamps verbatim", []byte("[00:12.00]Hello\n[00:15.30]World"), "[00:12.00]Hello\n[00:15.30]World"},
		{"empty", []byte{}, ""},
		{"multibyte", []byte("Grüße 世界"), "Grüße 世界"},
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, "hi"...), "hi"},
		{"utf16 le bom", []byte{0xFF, 0xFE, 'h', 0, 'i', 0}, "hi"},
		{"utf16 be bom", []byte{0xFE, 0xFF, 0, 'h', 0, 'i'}, "hi"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			lrc := writeSidecar(t, dir, "song.lrc", tc.data)

			got, err := Resolve(filepath.Join(dir, "song.flac"))
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got == nil {
				t.Fatal("Resolve() = nil, want sidecar")
			}
			if got.Path != lrc {
				t.Errorf("Path = %q, want %q", got.Path, lrc)
			}
			if got.Text != tc.want {
				t.Errorf("Text = %q, want %q", got.Text, tc.want)
			}
		})
	}
}

func TestResolve_InvalidUTF8(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		offset int
	}{
		{"lone continuation", []byte("ab\x80cd"), 2},
		{"truncated sequence", []byte("abc\xE4\xB8"), 3},
		{"after bom", []byte{0xEF, 0xBB, 0xBF, 'a', 0xFF}, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeSidecar(t, dir, "song.lrc", tc.data)

			_, err := Resolve(filepath.Join(dir, "song.mp3"))
			var decodeErr *types.SidecarDecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("expected *SidecarDecodeError, got %T: %v", err, err)
			}
			if decodeErr.Offset != tc.offset {
				t.Errorf("Offset = %d, want %d", decodeErr.Offset, tc.offset)
			}
		})
	}
}

func TestResolve_DirectoryIsNotASidecar(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "song.lrc"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Resolve(filepath.Join(dir, "song.m4a"))
	if err != nil || got != nil {
		t.Errorf("Resolve() = %v, %v; want nil, nil", got, err)
	}
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	lrc := writeSidecar(t, dir, "song.lrc", []byte("x"))

	if err := Remove(lrc); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := os.Stat(lrc); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("sidecar still present: %v", err)
	}
	if err := Remove(lrc); err == nil {
		t.Error("Remove() of missing file should fail")
	}
}

func TestMarkFailed(t *testing.T) {
	dir := t.TempDir()
	lrc := writeSidecar(t, dir, "song.lrc", []byte("fresh"))
	writeSidecar(t, dir, "song.lrc.failed", []byte("stale"))

	if err := MarkFailed(lrc); err != nil {
		t.Fatalf("MarkFailed() error = %v", err)
	}

	if _, err := os.Stat(lrc); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("original sidecar still present: %v", err)
	}
	data, err := os.ReadFile(FailedPath(lrc))
	if err != nil {
		t.Fatalf("read .failed: %v", err)
	}
	if string(data) != "fresh" {
		t.Errorf(".failed content = %q, want %q", data, "fresh")
	}
}

func TestMarkFailed_Missing(t *testing.T) {
	dir := t.TempDir()
	if err := MarkFailed(filepath.Join(dir, "gone.lrc")); err == nil {
		t.Error("MarkFailed() of missing file should fail")
	}
}
