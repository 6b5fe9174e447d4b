package lrcembed

import (
	_ "github.com/simonhull/lrcembed/internal/flac" // Register FLAC tagger
	_ "github.com/simonhull/lrcembed/internal/m4a"  // Register M4A tagger
	_ "github.com/simonhull/lrcembed/internal/mp3"  // Register MP3 tagger
)
