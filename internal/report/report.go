// Package report renders run progress and the end-of-run summary.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/simonhull/lrcembed"
	"github.com/simonhull/lrcembed/internal/config"
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ShouldColor resolves a color mode ("auto", "always", "never") for w.
func ShouldColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return IsTerminal(w) && os.Getenv("NO_COLOR") == ""
	}
}

func paint(s string, color bool, c ...text.Color) string {
	if !color {
		return s
	}
	return text.Colors(c).Sprint(s)
}

// Summary writes the totals of r, the embedded percentage with two decimals,
// and a table of failed files in processing order.
func Summary(w io.Writer, r lrcembed.BatchResult, color bool) error {
	var b strings.Builder

	if r.Canceled {
		b.WriteString(paint("Run canceled; totals cover processed files only.", color, text.FgYellow))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Processed %d files: %s embedded, %d skipped, %d without sidecar, %s failed\n",
		r.Total,
		paint(fmt.Sprint(r.Embedded), color, text.FgGreen),
		r.Skipped,
		r.NoSidecar,
		paint(fmt.Sprint(r.Failed()), color && r.Failed() > 0, text.FgRed),
	)
	fmt.Fprintf(&b, "Embedded: %.2f%%\n", r.Percentage())

	if len(r.Failures) > 0 {
		rows := make([][]string, 0, len(r.Failures))
		for _, f := range r.Failures {
			rows = append(rows, []string{f.Path, reason(f.Err)})
		}
		b.WriteString("\n")
		b.WriteString(paint("Failed files:", color, text.FgRed, text.Bold))
		b.WriteString("\n")
		b.WriteString(renderTable([]string{"File", "Reason"}, rows))
		b.WriteString("\n")
	}

	if len(r.Warnings) > 0 {
		rows := make([][]string, 0, len(r.Warnings))
		for _, warn := range r.Warnings {
			rows = append(rows, []string{warn.Path, warn.Op, reason(warn.Err)})
		}
		b.WriteString("\n")
		b.WriteString(paint("Sidecar warnings:", color, text.FgYellow))
		b.WriteString("\n")
		b.WriteString(renderTable([]string{"Sidecar", "Operation", "Reason"}, rows))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderTable(headers []string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range headers {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}
	return tw.Render()
}

// reason strips the leading path from typed errors, since the table
// already names the file.
func reason(err error) string {
	if err == nil {
		return ""
	}
	var (
		load    *lrcembed.ContainerLoadError
		write   *lrcembed.TagWriteError
		decode  *lrcembed.SidecarDecodeError
		unsupp  *lrcembed.UnsupportedFormatError
		cleanup *lrcembed.CleanupWarning
	)
	switch {
	case errors.As(err, &load):
		return fmt.Sprintf("cannot load %s container: %v", load.Format, load.Err)
	case errors.As(err, &write):
		return fmt.Sprintf("cannot write %s lyrics: %v", write.Format, write.Err)
	case errors.As(err, &decode):
		return fmt.Sprintf("sidecar is not valid UTF-8 (byte %d)", decode.Offset)
	case errors.As(err, &unsupp):
		return "unsupported format: " + unsupp.Reason
	case errors.As(err, &cleanup):
		return cleanup.Err.Error()
	default:
		return err.Error()
	}
}
