// Package lrcembed embeds .lrc sidecar lyrics into audio file tags.
//
// For every audio file, lrcembed looks for a sidecar with the same stem and
// a ".lrc" extension, and copies its text verbatim into the container's
// lyrics tag. Three containers are supported:
//
//   - FLAC: a LYRICS Vorbis comment
//   - MP3: a single ID3v2 USLT frame (all existing USLT frames are replaced)
//   - M4A: the iTunes ©lyr atom
//
// # Quick Start
//
//	e := lrcembed.New(lrcembed.DefaultOptions())
//	result := e.Run(ctx, []string{"album/01.flac", "album/02.mp3"})
//	fmt.Printf("%d/%d embedded (%.2f%%)\n", result.Embedded, result.Total, result.Percentage())
//
// # Outcomes
//
// Each file ends in exactly one Status: Embedded, Skipped, NoSidecar or
// Failed. Failures never abort a run. When a file fails after its sidecar
// was found, the sidecar is renamed to "<name>.lrc.failed" so the text is
// kept and the next run does not retry it.
//
// Sidecar deletion (Options.DeleteSidecar) happens only after the written
// lyrics have been read back from disk and compared. A failed delete is
// attached to the outcome as a CleanupWarning; the file still counts as
// embedded.
//
// # Audio Safety
//
// Only the lyrics tag is touched. FLAC files are rewritten through a
// temporary file that is fsynced and renamed over the original; the MP3 and
// M4A libraries rewrite their files in place of the original the same way.
// A failed write leaves the original container readable.
//
// # Architecture
//
//	[Embedder]            - EmbedFile / Run
//	  ├─ [sidecar]        - locate, decode, delete, mark failed
//	  └─ [registry]       - Tagger per Format
//	       ├─ flac        - go-flac + flacvorbis
//	       ├─ mp3         - bogem/id3v2
//	       └─ m4a         - go-mp4tag
//
// Adapters register themselves from init functions; importing this package
// links all three.
package lrcembed
