// Package discover finds the audio files to process under a set of roots.
package discover

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/lrcembed/internal/types"
)

// Options configures a scan.
type Options struct {
	// Recursive descends into subdirectories.
	Recursive bool

	// FollowSymlinks descends into symlinked directories. Symlinked files are
	// always included. Each real directory is visited at most once per root.
	FollowSymlinks bool

	// OnError is called for entries below a root that cannot be read. Those
	// entries are skipped. It may be called from several goroutines.
	OnError func(path string, err error)
}

// Walk returns the supported audio files under roots.
//
// Roots are scanned concurrently, but the result lists each root's files in
// lexical order, concatenated in the order the roots were given. A file
// reachable from more than one root appears once, at its first position.
// A root that does not exist or cannot be read fails the whole scan.
func Walk(ctx context.Context, roots []string, opts Options) ([]string, error) {
	if len(roots) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([][]string, len(roots))
	for i, root := range roots {
		g.Go(func() error {
			files, err := scan(ctx, root, opts)
			if err != nil {
				return err
			}
			results[i] = files
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var out []string
	for _, files := range results {
		for _, file := range files {
			key, err := filepath.Abs(file)
			if err != nil {
				key = file
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, file)
		}
	}
	return out, nil
}

func scan(ctx context.Context, root string, opts Options) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	if !info.IsDir() {
		if supported(root) {
			return []string{root}, nil
		}
		return nil, nil
	}

	w := &walker{ctx: ctx, opts: opts, visited: make(map[string]bool)}
	if err := w.dir(root, true); err != nil {
		return nil, err
	}
	return w.files, nil
}

type walker struct {
	ctx     context.Context
	opts    Options
	files   []string
	visited map[string]bool
}

func (w *walker) dir(path string, root bool) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}

	if real, err := filepath.EvalSymlinks(path); err == nil {
		if w.visited[real] {
			return nil
		}
		w.visited[real] = true
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		if root {
			return fmt.Errorf("scan %s: %w", path, err)
		}
		w.report(path, err)
		return nil
	}

	for _, entry := range entries {
		full := filepath.Join(path, entry.Name())

		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(full)
			if err != nil {
				w.report(full, err)
				continue
			}
			isDir = target.IsDir()
			if isDir && !w.opts.FollowSymlinks {
				continue
			}
		}

		if isDir {
			if !w.opts.Recursive {
				continue
			}
			if err := w.dir(full, false); err != nil {
				return err
			}
			continue
		}

		if supported(entry.Name()) {
			w.files = append(w.files, full)
		}
	}
	return nil
}

func (w *walker) report(path string, err error) {
	if w.opts.OnError != nil {
		w.opts.OnError(path, err)
	}
}

// supported also excludes temporary files left by interrupted writes, which
// never carry an audio extension.
func supported(name string) bool {
	return types.FormatFromPath(name) != types.FormatUnknown
}
