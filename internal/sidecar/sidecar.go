// Package sidecar locates and reads the .lrc file paired with an audio file.
package sidecar

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/simonhull/lrcembed/internal/types"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Sidecar is the lyric text read from a .lrc file.
//
// Text is passed to adapters verbatim; timestamps are not interpreted.
type Sidecar struct {
	Path string
	Text string
}

// Resolve reads the sidecar that belongs to audioPath.
//
// It returns (nil, nil) when no sidecar exists. Sidecars must be UTF-8;
// a leading byte-order mark is dropped, and a UTF-16 file that starts with
// a BOM is transcoded. Any other invalid byte sequence yields a
// *types.SidecarDecodeError.
func Resolve(audioPath string) (*Sidecar, error) {
	path := types.SidecarPathFor(audioPath)

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat sidecar: %w", err)
	}
	if info.IsDir() {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sidecar: %w", err)
	}

	text, err := decode(path, data)
	if err != nil {
		return nil, err
	}
	return &Sidecar{Path: path, Text: text}, nil
}

func decode(path string, data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		if off := invalidOffset(data[len(bomUTF8):]); off >= 0 {
			return "", &types.SidecarDecodeError{Path: path, Offset: off + len(bomUTF8)}
		}
		return string(data[len(bomUTF8):]), nil
	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeUTF16(path, data, unicode.LittleEndian)
	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeUTF16(path, data, unicode.BigEndian)
	}

	if off := invalidOffset(data); off >= 0 {
		return "", &types.SidecarDecodeError{Path: path, Offset: off}
	}
	return string(data), nil
}

func decodeUTF16(path string, data []byte, order unicode.Endianness) (string, error) {
	if len(data)%2 != 0 {
		return "", &types.SidecarDecodeError{Path: path, Offset: len(data) - 1}
	}
	out, err := unicode.UTF16(order, unicode.ExpectBOM).NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode UTF-16 sidecar %s: %w", path, err)
	}
	return string(out), nil
}

// invalidOffset returns the byte offset of the first invalid UTF-8
// sequence in data, or -1 if data is valid.
func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

// Remove deletes the sidecar at path.
func Remove(path string) error {
	return os.Remove(path)
}

// FailedPath returns the name a sidecar is moved to after a failed embed.
func FailedPath(path string) string {
	return path + types.FailedSuffix
}

// MarkFailed renames the sidecar at path to "<path>.failed", replacing any
// .failed file left by an earlier run. The rename keeps the lyric text
// recoverable.
func MarkFailed(path string) error {
	target := FailedPath(path)
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		if err := os.Remove(target); err != nil {
			return fmt.Errorf("remove stale %s: %w", target, err)
		}
	}
	return os.Rename(path, target)
}
