package testsupport

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"sort"
	"testing"
)

// M4AAudio is the fake sample data stored in the mdat box of every M4A
// fixture.
var M4AAudio = []byte{0x21, 0x10, 0x05, 0x20, 0xA4, 0x1B, 0xFF, 0xC0, 0x00, 0x13, 0x37}

// M4ATag describes the iTunes item list of an M4A fixture.
type M4ATag struct {
	Title  string
	Artist string
	Lyrics string
	// Covers become data boxes of a single covr atom, flagged as JPEG.
	Covers [][]byte
	// Freeform become ---- atoms in the com.apple.iTunes namespace.
	Freeform map[string]string
}

// BuildM4A returns ftyp, mdat and a moov box holding a sample table and
// udta.meta.ilst. mdat precedes moov so growing the item list never moves
// sample data.
func BuildM4A(fixture M4ATag) []byte {
	buf := &bytes.Buffer{}

	buf.Write(atom("ftyp", []byte("M4A "), u32(0x200), []byte("M4A "), []byte("isom")))
	buf.Write(atom("mdat", M4AAudio))

	stco := atom("stco", u32(0), u32(0))
	trak := atom("trak", atom("mdia", atom("minf", atom("stbl", stco))))

	var items [][]byte
	if fixture.Title != "" {
		items = append(items, textItem("\xa9nam", fixture.Title))
	}
	if fixture.Artist != "" {
		items = append(items, textItem("\xa9ART", fixture.Artist))
	}
	if fixture.Lyrics != "" {
		items = append(items, textItem("\xa9lyr", fixture.Lyrics))
	}
	if len(fixture.Covers) > 0 {
		var covers [][]byte
		for _, c := range fixture.Covers {
			covers = append(covers, atom("data", u32(0x0D), u32(0), c))
		}
		items = append(items, atom("covr", covers...))
	}

	names := make([]string, 0, len(fixture.Freeform))
	for name := range fixture.Freeform {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		items = append(items, atom("----",
			atom("mean", u32(0), []byte("com.apple.iTunes")),
			atom("name", u32(0), []byte(name)),
			atom("data", u32(1), u32(0), []byte(fixture.Freeform[name])),
		))
	}

	// meta is a full box: version and flags precede its children.
	meta := atom("meta", u32(0), atom("ilst", items...))
	buf.Write(atom("moov", trak, atom("udta", meta)))

	return buf.Bytes()
}

// WriteM4A writes an M4A fixture named name into dir and returns its path.
func WriteM4A(t testing.TB, dir, name string, fixture M4ATag) string {
	t.Helper()
	return write(t, filepath.Join(dir, name), BuildM4A(fixture))
}

func textItem(name, value string) []byte {
	return atom(name, atom("data", u32(1), u32(0), []byte(value)))
}

func atom(name string, payload ...[]byte) []byte {
	size := 8
	for _, p := range payload {
		size += len(p)
	}
	out := make([]byte, 0, size)
	out = append(out, u32(uint32(size))...)
	out = append(out, name...)
	for _, p := range payload {
		out = append(out, p...)
	}
	return out
}

func u32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}
