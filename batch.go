package lrcembed

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Run embeds every file in paths, one at a time, in order.
//
// A failing file never stops the run. ctx is checked before each file; once
// it is done the run stops, Canceled is set, and the result covers only the
// files already processed. A file in progress is always finished.
func (e *Embedder) Run(ctx context.Context, paths []string) BatchResult {
	var result BatchResult
	start := time.Now()

	e.log.Info("run started", zap.Int("files", len(paths)))
	for _, path := range paths {
		if ctx.Err() != nil {
			result.Canceled = true
			break
		}
		result.add(e.EmbedFile(path))
	}

	e.log.Info("run finished",
		zap.Int("total", result.Total),
		zap.Int("embedded", result.Embedded),
		zap.Int("skipped", result.Skipped),
		zap.Int("no_sidecar", result.NoSidecar),
		zap.Int("failed", result.Failed()),
		zap.Bool("canceled", result.Canceled),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result
}
