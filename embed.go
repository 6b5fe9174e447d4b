package lrcembed

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/simonhull/lrcembed/internal/registry"
	"github.com/simonhull/lrcembed/internal/sidecar"
	"github.com/simonhull/lrcembed/internal/types"
)

// Embedder copies sidecar lyrics into audio containers.
//
// An Embedder holds no per-file state and may be reused for any number of
// files and runs. It is not safe for concurrent use.
type Embedder struct {
	opts     Options
	log      *zap.Logger
	observer func(Outcome)
	taggers  map[Format]Tagger
	runID    string
}

// New returns an Embedder configured by opts.
func New(opts Options, options ...Option) *Embedder {
	e := &Embedder{
		opts:    opts,
		log:     zap.NewNop(),
		taggers: make(map[Format]Tagger),
	}
	for _, opt := range options {
		opt(e)
	}
	if e.runID == "" {
		e.runID = uuid.NewString()
	}
	e.log = e.log.With(zap.String("run_id", e.runID))
	return e
}

// Options returns the options the Embedder was built with.
func (e *Embedder) Options() Options {
	return e.opts
}

// RunID returns the identifier attached to this Embedder's log lines.
func (e *Embedder) RunID() string {
	return e.runID
}

// EmbedFile embeds the sidecar lyrics of the audio file at path.
//
// It never returns an error: every failure is reported as a StatusFailed
// outcome. When a file fails after its sidecar was found, the sidecar is
// renamed to "<name>.lrc.failed". Files without a sidecar are not opened.
func (e *Embedder) EmbedFile(path string) Outcome {
	file := types.NewAudioFile(path)
	out := e.embed(file)

	fields := []zap.Field{
		zap.String("path", out.Path),
		zap.String("format", out.Format.String()),
		zap.String("status", out.Status.String()),
	}
	switch out.Status {
	case StatusFailed:
		e.log.Warn("embed failed", append(fields, zap.Error(out.Err))...)
	case StatusSkipped:
		e.log.Debug("embed skipped", append(fields, zap.String("reason", out.Reason))...)
	default:
		e.log.Debug("file processed", fields...)
	}

	if e.observer != nil {
		e.observer(out)
	}
	return out
}

func (e *Embedder) embed(file types.AudioFile) Outcome {
	out := Outcome{Path: file.Path, Format: file.Format}

	tagger, err := e.lookup(file)
	if err != nil {
		out.Status = StatusFailed
		out.Err = err
		return out
	}

	lrc, err := sidecar.Resolve(file.Path)
	if err != nil {
		return e.fail(out, file, err)
	}
	if lrc == nil {
		out.Status = StatusNoSidecar
		return out
	}

	skipped, err := e.write(tagger, file, lrc.Text)
	if err != nil {
		return e.fail(out, file, err)
	}
	if skipped {
		out.Status = StatusSkipped
		out.Reason = ReasonAlreadyTagged
		return out
	}

	if e.opts.Verify || e.opts.DeleteSidecar {
		if err := e.verify(tagger, file, lrc.Text); err != nil {
			return e.fail(out, file, err)
		}
	}

	out.Status = StatusEmbedded
	if e.opts.DeleteSidecar {
		if err := sidecar.Remove(lrc.Path); err != nil {
			out.Warnings = append(out.Warnings, e.warn(lrc.Path, "delete", err))
		}
	}
	return out
}

func (e *Embedder) lookup(file types.AudioFile) (Tagger, error) {
	if t, ok := e.taggers[file.Format]; ok && file.Format != types.FormatUnknown {
		return t, nil
	}
	return registry.Lookup(file)
}

// write opens the container, applies the skip check and replaces the lyrics.
// The container is closed before write returns.
func (e *Embedder) write(tagger Tagger, file types.AudioFile, text string) (skipped bool, err error) {
	c, err := tagger.Open(file.Path, WriteOptions{
		PreserveModTime: e.opts.PreserveModTime,
		BackupSuffix:    e.opts.BackupSuffix,
	})
	if err != nil {
		return false, err
	}
	defer func() {
		if cerr := c.Close(); cerr != nil {
			e.log.Debug("close container", zap.String("path", file.Path), zap.Error(cerr))
		}
	}()

	if e.opts.SkipIfPresent && c.HasLyrics() {
		return true, nil
	}
	return false, c.WriteLyrics(text)
}

// verify re-opens the file and checks that the stored lyrics equal want.
func (e *Embedder) verify(tagger Tagger, file types.AudioFile, want string) error {
	c, err := tagger.Open(file.Path, WriteOptions{})
	if err != nil {
		return &types.TagWriteError{Path: file.Path, Format: file.Format, Err: fmt.Errorf("read back: %w", err)}
	}
	defer c.Close() //nolint:errcheck // Read-only handle

	if got := c.Lyrics(); got != want {
		return &types.TagWriteError{
			Path:   file.Path,
			Format: file.Format,
			Err:    fmt.Errorf("read back: stored lyrics differ (%d bytes, want %d)", len(got), len(want)),
		}
	}
	return nil
}

// fail turns err into a StatusFailed outcome and moves the sidecar aside.
func (e *Embedder) fail(out Outcome, file types.AudioFile, err error) Outcome {
	out.Status = StatusFailed
	out.Err = err

	if _, statErr := os.Stat(file.SidecarPath); errors.Is(statErr, fs.ErrNotExist) {
		return out
	}
	if rerr := sidecar.MarkFailed(file.SidecarPath); rerr != nil {
		out.Warnings = append(out.Warnings, e.warn(file.SidecarPath, "rename", rerr))
	}
	return out
}

func (e *Embedder) warn(path, op string, err error) *CleanupWarning {
	w := &types.CleanupWarning{Path: path, Op: op, Err: err}
	e.log.Warn("sidecar cleanup failed",
		zap.String("path", path),
		zap.String("op", op),
		zap.Error(err),
	)
	return w
}
