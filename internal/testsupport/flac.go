package testsupport

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// FLACAudio is the frame payload appended after the metadata blocks of
// every FLAC fixture. It starts with a frame sync code.
var FLACAudio = []byte{0xFF, 0xF8, 0x69, 0x08, 0x00, 0x0F, 0xAA, 0x55, 0xAA, 0x55, 0x01, 0x02, 0x03, 0x04}

// BuildFLAC creates a minimal FLAC stream: STREAMINFO, a VORBIS_COMMENT
// block holding comments, and FLACAudio. With withComments false the
// comment block is omitted entirely.
func BuildFLAC(withComments bool, comments ...string) []byte {
	buf := &bytes.Buffer{}

	buf.WriteString("fLaC")

	// STREAMINFO header: not last unless it is the only block.
	header := byte(0x00)
	if !withComments {
		header = 0x80
	}
	buf.WriteByte(header)
	buf.Write([]byte{0x00, 0x00, 0x22}) // 34 bytes

	binary.Write(buf, binary.BigEndian, uint16(4096)) // min block size
	binary.Write(buf, binary.BigEndian, uint16(4096)) // max block size
	buf.Write([]byte{0x00, 0x00, 0x00})               // min frame size
	buf.Write([]byte{0x00, 0x00, 0x00})               // max frame size

	// [sample_rate(20)] [channels-1(3)] [bits-1(5)] [total_samples(36)]
	sampleRate := uint64(44100)
	channels := uint64(1)
	bitsPerSample := uint64(15)
	totalSamples := uint64(44100)
	packed := (sampleRate << 44) | (channels << 41) | (bitsPerSample << 36) | totalSamples
	binary.Write(buf, binary.BigEndian, packed)

	buf.Write(make([]byte, 16)) // MD5

	if withComments {
		buf.WriteByte(0x84) // VORBIS_COMMENT, last

		data := &bytes.Buffer{}
		vendor := "lrcembed-test"
		binary.Write(data, binary.LittleEndian, uint32(len(vendor)))
		data.WriteString(vendor)
		binary.Write(data, binary.LittleEndian, uint32(len(comments)))
		for _, c := range comments {
			binary.Write(data, binary.LittleEndian, uint32(len(c)))
			data.WriteString(c)
		}

		n := data.Len()
		buf.Write([]byte{byte(n >> 16), byte(n >> 8), byte(n)})
		buf.Write(data.Bytes())
	}

	buf.Write(FLACAudio)
	return buf.Bytes()
}

// WriteFLAC writes a FLAC fixture named name into dir and returns its path.
func WriteFLAC(t testing.TB, dir, name string, comments ...string) string {
	t.Helper()
	return write(t, filepath.Join(dir, name), BuildFLAC(true, comments...))
}

// WriteText writes a text file (for example a sidecar) and returns its path.
func WriteText(t testing.TB, path, content string) string {
	t.Helper()
	return write(t, path, []byte(content))
}

func write(t testing.TB, path string, data []byte) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path or fails the test.
func ReadFile(t testing.TB, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return data
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
