package vorbis

import (
	"slices"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		comment   string
		key, val  string
		wantSplit bool
	}{
		{"simple", "TITLE=Song", "TITLE", "Song", true},
		{"value with equals", "COMMENT=a=b", "COMMENT", "a=b", true},
		{"empty value", "LYRICS=", "LYRICS", "", true},
		{"multiline value", "LYRICS=line1\nline2", "LYRICS", "line1\nline2", true},
		{"no separator", "garbage", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, v, ok := Split(tc.comment)
			if ok != tc.wantSplit || k != tc.key || v != tc.val {
				t.Errorf("Split(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tc.comment, k, v, ok, tc.key, tc.val, tc.wantSplit)
			}
		})
	}
}

func TestGet_CaseInsensitive(t *testing.T) {
	comments := []string{"TITLE=Song", "lyrics=la la", "LYRICS=second"}

	v, ok := Get(comments, LyricsKey)
	if !ok {
		t.Fatal("expected lyrics to be found")
	}
	if v != "la la" {
		t.Errorf("Get() = %q, want first match %q", v, "la la")
	}

	if Has(comments, "ARTIST") {
		t.Error("Has(ARTIST) = true, want false")
	}
	if !Has(comments, "Title") {
		t.Error("Has(Title) = false, want true")
	}
}

func TestSet_ReplacesAllMatches(t *testing.T) {
	comments := []string{"TITLE=Song", "Lyrics=old one", "ARTIST=Band", "LYRICS=old two"}

	got := Set(comments, LyricsKey, "new")
	want := []string{"TITLE=Song", "ARTIST=Band", "LYRICS=new"}
	if !slices.Equal(got, want) {
		t.Errorf("Set() = %q, want %q", got, want)
	}

	// Input is not modified.
	if comments[1] != "Lyrics=old one" {
		t.Errorf("input mutated: %q", comments)
	}
}

func TestSet_Empty(t *testing.T) {
	got := Set(nil, LyricsKey, "text")
	if !slices.Equal(got, []string{"LYRICS=text"}) {
		t.Errorf("Set(nil) = %q", got)
	}
}
