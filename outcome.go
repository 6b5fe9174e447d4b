package lrcembed

// Status is the terminal state of one file.
type Status int

const (
	// StatusEmbedded means the lyrics were written to the container.
	StatusEmbedded Status = iota + 1
	// StatusSkipped means the file was left alone; see Outcome.Reason.
	StatusSkipped
	// StatusNoSidecar means no .lrc file exists for the audio file.
	StatusNoSidecar
	// StatusFailed means the file could not be embedded; see Outcome.Err.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusEmbedded:
		return "embedded"
	case StatusSkipped:
		return "skipped"
	case StatusNoSidecar:
		return "no-sidecar"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ReasonAlreadyTagged is the skip reason for files that already carry lyrics.
const ReasonAlreadyTagged = "already tagged"

// Outcome is the result of embedding one file.
type Outcome struct {
	Path   string
	Format Format
	Status Status

	// Reason is set for StatusSkipped.
	Reason string

	// Err is set for StatusFailed.
	Err error

	// Warnings lists sidecar cleanup failures. They never change Status.
	Warnings []*CleanupWarning
}

// Failure pairs a failed file with its error.
type Failure struct {
	Path string
	Err  error
}

// BatchResult accumulates the outcomes of a run.
type BatchResult struct {
	Total     int
	Embedded  int
	Skipped   int
	NoSidecar int

	// Failures is in processing order.
	Failures []Failure

	// Warnings collects every cleanup warning, in processing order.
	Warnings []*CleanupWarning

	// Canceled is set when the run stopped early. Counts cover only the
	// files processed before cancellation.
	Canceled bool
}

// Failed returns the number of failed files.
func (r BatchResult) Failed() int {
	return len(r.Failures)
}

// Percentage returns Embedded / Total * 100, or 0 for an empty run.
func (r BatchResult) Percentage() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Embedded) / float64(r.Total) * 100
}

func (r *BatchResult) add(o Outcome) {
	r.Total++
	switch o.Status {
	case StatusEmbedded:
		r.Embedded++
	case StatusSkipped:
		r.Skipped++
	case StatusNoSidecar:
		r.NoSidecar++
	case StatusFailed:
		r.Failures = append(r.Failures, Failure{Path: o.Path, Err: o.Err})
	}
	r.Warnings = append(r.Warnings, o.Warnings...)
}
