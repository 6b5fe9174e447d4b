package atomicfile

// Option configures behavior when replacing a file.
//
// Example:
//
//	err := atomicfile.Write(path, data,
//	    atomicfile.WithBackup(".bak"),
//	    atomicfile.WithPreserveModTime(),
//	)
type Option func(*options)

type options struct {
	backupSuffix    string // Suffix for backup file (e.g., ".bak")
	preserveModTime bool   // Keep original modification time
}

func defaultOptions() *options {
	return &options{}
}

// WithBackup keeps the previous content of the file next to it.
//
// WithBackup(".bak") renames "song.flac" to "song.flac.bak" right before the
// new content takes its place. An existing backup is overwritten.
func WithBackup(suffix string) Option {
	return func(o *options) {
		o.backupSuffix = suffix
	}
}

// WithPreserveModTime keeps the original file modification time.
//
// Library scanners that reindex on mtime change then leave the file alone.
func WithPreserveModTime() Option {
	return func(o *options) {
		o.preserveModTime = true
	}
}
