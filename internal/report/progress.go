package report

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/simonhull/lrcembed"
)

// Progress follows a run. On a terminal it draws a progress bar; otherwise
// it logs one line per file.
type Progress struct {
	bar *progressbar.ProgressBar
	log *zap.Logger
}

// NewProgress returns a Progress for total files. When bar is false, or w
// is nil, outcomes are logged instead.
func NewProgress(total int, w io.Writer, bar bool, log *zap.Logger) *Progress {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Progress{log: log}
	if bar && w != nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("embedding"),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}
	return p
}

// Observe records one finished file. It has the signature expected by
// lrcembed.WithObserver.
func (p *Progress) Observe(o lrcembed.Outcome) {
	if p.bar != nil {
		_ = p.bar.Add(1)
		return
	}
	fields := []zap.Field{
		zap.String("path", o.Path),
		zap.String("status", o.Status.String()),
	}
	if o.Status == lrcembed.StatusFailed {
		p.log.Warn("file failed", append(fields, zap.Error(o.Err))...)
		return
	}
	p.log.Info("file done", fields...)
}

// Finish clears the progress bar.
func (p *Progress) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
