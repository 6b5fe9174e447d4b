// Command lrcembed embeds .lrc sidecar lyrics into FLAC, MP3 and M4A files.
//
// Usage:
//
//	lrcembed embed [-s] [-r] [-R] DIR...
//	lrcembed show FILE...
//	lrcembed watch DIR...
//	lrcembed config init|show
//	lrcembed version
//
// Exit status is 0 on success, 1 when the run could not start (bad
// configuration, unreadable directory, directory locked by another run),
// and 2 when --strict is set and at least one file failed.
package main
