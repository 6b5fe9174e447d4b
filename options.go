package lrcembed

import (
	"go.uber.org/zap"
)

// Options controls what the Embedder does with each file.
//
// SkipIfPresent and DeleteSidecar are independent.
type Options struct {
	// SkipIfPresent leaves files that already carry lyrics untouched.
	SkipIfPresent bool

	// DeleteSidecar removes the .lrc file once the embedded lyrics have been
	// read back and match. Implies Verify.
	DeleteSidecar bool

	// Verify re-opens each container after writing and compares the stored
	// lyrics against the sidecar text.
	Verify bool

	// PreserveModTime keeps the audio file's modification time.
	PreserveModTime bool

	// BackupSuffix, when not empty, keeps each audio file's previous content
	// next to it under this suffix before lyrics are written.
	BackupSuffix string
}

// DefaultOptions returns the options used by the CLI when no flags are set.
func DefaultOptions() Options {
	return Options{Verify: true}
}

// Option configures an Embedder.
//
// Example:
//
//	e := lrcembed.New(lrcembed.DefaultOptions(),
//	    lrcembed.WithLogger(logger),
//	    lrcembed.WithObserver(func(o lrcembed.Outcome) { bar.Add(1) }),
//	)
type Option func(*Embedder)

// WithLogger sets the logger used for per-file diagnostics.
//
// The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Embedder) {
		if logger != nil {
			e.log = logger
		}
	}
}

// WithObserver registers fn to be called with every outcome, after the file
// has been fully handled. fn runs on the processing goroutine.
func WithObserver(fn func(Outcome)) Option {
	return func(e *Embedder) {
		e.observer = fn
	}
}

// WithTagger overrides the registered tagger for format.
func WithTagger(format Format, t Tagger) Option {
	return func(e *Embedder) {
		e.taggers[format] = t
	}
}

// WithRunID sets the identifier attached to every log line.
//
// By default a random UUID is generated.
func WithRunID(id string) Option {
	return func(e *Embedder) {
		e.runID = id
	}
}

