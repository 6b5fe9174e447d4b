// Package vorbis provides Vorbis comment helpers.
//
// Vorbis comments are "KEY=VALUE" UTF-8 strings. Field names are
// case-insensitive ASCII; values may contain anything, including '=' and
// newlines.
package vorbis

import "strings"

// LyricsKey is the field name used for unsynchronized lyrics.
const LyricsKey = "LYRICS"

// Split splits a comment at the first '='.
//
// ok is false when the comment has no separator.
func Split(comment string) (key, value string, ok bool) {
	eq := strings.IndexByte(comment, '=')
	if eq == -1 {
		return "", "", false
	}
	return comment[:eq], comment[eq+1:], true
}

// Has reports whether any comment has the given field name.
func Has(comments []string, key string) bool {
	_, ok := Get(comments, key)
	return ok
}

// Get returns the value of the first comment with the given field name.
func Get(comments []string, key string) (string, bool) {
	for _, c := range comments {
		k, v, ok := Split(c)
		if ok && strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// Set removes every comment named key and appends a single KEY=value entry,
// keeping the remaining comments in their original order.
func Set(comments []string, key, value string) []string {
	out := make([]string, 0, len(comments)+1)
	for _, c := range comments {
		k, _, ok := Split(c)
		if ok && strings.EqualFold(k, key) {
			continue
		}
		out = append(out, c)
	}
	return append(out, key+"="+value)
}
