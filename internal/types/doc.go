// Package types provides the core data structures shared by the lyric
// embedder and its format adapters: the container Format, the AudioFile
// being processed, and the typed errors each stage reports.
package types
