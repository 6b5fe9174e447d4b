package testsupport

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
)

// MP3Audio is a fake MPEG frame appended after the ID3v2 tag of every MP3
// fixture.
var MP3Audio = []byte{0xFF, 0xFB, 0x90, 0x00, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77}

// MP3Tag describes the ID3v2 content of an MP3 fixture.
type MP3Tag struct {
	Version byte // 3 or 4; 0 means 4
	Title   string
	Artist  string
	Lyrics  []id3v2.UnsynchronisedLyricsFrame
}

// BuildMP3 returns an ID3v2 tag built with the id3v2 library followed by
// MP3Audio. An empty MP3Tag produces a file without any tag.
func BuildMP3(t testing.TB, fixture MP3Tag) []byte {
	t.Helper()

	tag := id3v2.NewEmptyTag()
	if fixture.Version != 0 {
		tag.SetVersion(fixture.Version)
	}
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	if fixture.Version == 3 {
		tag.SetDefaultEncoding(id3v2.EncodingUTF16)
	}
	if fixture.Title != "" {
		tag.SetTitle(fixture.Title)
	}
	if fixture.Artist != "" {
		tag.SetArtist(fixture.Artist)
	}
	for _, f := range fixture.Lyrics {
		tag.AddUnsynchronisedLyricsFrame(f)
	}

	buf := &bytes.Buffer{}
	if _, err := tag.WriteTo(buf); err != nil {
		t.Fatalf("build id3v2 tag: %v", err)
	}
	buf.Write(MP3Audio)
	return buf.Bytes()
}

// WriteMP3 writes an MP3 fixture named name into dir and returns its path.
func WriteMP3(t testing.TB, dir, name string, fixture MP3Tag) string {
	t.Helper()
	return write(t, filepath.Join(dir, name), BuildMP3(t, fixture))
}
