// Package watch re-embeds lyrics when sidecar files appear or change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/simonhull/lrcembed"
	"github.com/simonhull/lrcembed/internal/types"
)

// DefaultDebounce is how long a sidecar must be quiet before it is embedded.
const DefaultDebounce = 500 * time.Millisecond

// FileEmbedder embeds one audio file. *lrcembed.Embedder satisfies it.
type FileEmbedder interface {
	EmbedFile(path string) lrcembed.Outcome
}

// Options configures a Watcher.
type Options struct {
	Recursive bool
	Debounce  time.Duration
	Logger    *zap.Logger

	// Ready, if set, is called once every directory is being watched.
	Ready func()
}

// Watcher embeds the matching audio file whenever a .lrc file is created or
// written. Only sidecar events trigger work, so rewriting audio files does
// not feed back into the watcher. Files are embedded one at a time.
type Watcher struct {
	dirs     []string
	embedder FileEmbedder
	opts     Options
	log      *zap.Logger
}

// New returns a Watcher for dirs.
func New(embedder FileEmbedder, dirs []string, opts Options) *Watcher {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{dirs: dirs, embedder: embedder, opts: opts, log: log}
}

// Run watches until ctx is done. It returns an error only if watching
// cannot start.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	for _, dir := range w.dirs {
		if err := w.add(fw, dir); err != nil {
			return err
		}
	}
	if w.opts.Ready != nil {
		w.opts.Ready()
	}

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.opts.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) && w.opts.Recursive {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.add(fw, event.Name); err != nil {
						w.log.Warn("watch new directory", zap.String("path", event.Name), zap.Error(err))
					}
					continue
				}
			}
			if !isSidecar(event.Name) || !(event.Has(fsnotify.Create) || event.Has(fsnotify.Write)) {
				continue
			}
			pending[event.Name] = struct{}{}
			timer.Reset(w.opts.Debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", zap.Error(err))

		case <-timer.C:
			w.flush(pending)
			clear(pending)
		}
	}
}

func (w *Watcher) add(fw *fsnotify.Watcher, root string) error {
	if !w.opts.Recursive {
		if err := fw.Add(root); err != nil {
			return fmt.Errorf("watch %s: %w", root, err)
		}
		return nil
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("watch %s: %w", root, err)
			}
			w.log.Warn("skip unreadable directory", zap.String("path", path), zap.Error(err))
			return fs.SkipDir
		}
		if !d.IsDir() {
			return nil
		}
		if err := fw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) flush(pending map[string]struct{}) {
	sidecars := make([]string, 0, len(pending))
	for path := range pending {
		sidecars = append(sidecars, path)
	}
	sort.Strings(sidecars)

	for _, lrc := range sidecars {
		audio := AudioFor(lrc)
		if len(audio) == 0 {
			w.log.Debug("sidecar without audio file", zap.String("path", lrc))
			continue
		}
		for _, path := range audio {
			out := w.embedder.EmbedFile(path)
			w.log.Info("watch embed",
				zap.String("path", path),
				zap.String("status", out.Status.String()),
			)
		}
	}
}

// isSidecar matches the extension exactly, as sidecar resolution does:
// Song.LRC is never the sidecar of Song.flac.
func isSidecar(path string) bool {
	return filepath.Ext(path) == types.SidecarExt
}

// AudioFor lists the supported audio files, in lexical order, whose sidecar
// is lrc.
func AudioFor(lrc string) []string {
	dir := filepath.Dir(lrc)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if types.FormatFromPath(path) == types.FormatUnknown {
			continue
		}
		if types.SidecarPathFor(path) == lrc {
			out = append(out, path)
		}
	}
	return out
}
