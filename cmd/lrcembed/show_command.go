package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/simonhull/lrcembed/internal/inspect"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE...",
		Short: "Show embedded lyrics and sidecar state of audio files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for i, path := range args {
				if i > 0 {
					fmt.Fprintln(out)
				}
				r, err := inspect.Inspect(path)
				if err != nil {
					fmt.Fprintf(out, "%s\n  Error:    %v\n", path, err)
					failed++
					continue
				}
				printReport(out, r)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files could not be read", failed, len(args))
			}
			return nil
		},
	}
}

func printReport(out io.Writer, r inspect.Report) {
	fmt.Fprintln(out, r.Path)
	fmt.Fprintf(out, "  Format:   %s (%s)\n", r.Format, r.TagFormat)
	if r.Title != "" {
		fmt.Fprintf(out, "  Title:    %s\n", r.Title)
	}
	if r.Artist != "" {
		fmt.Fprintf(out, "  Artist:   %s\n", r.Artist)
	}
	if r.Album != "" {
		fmt.Fprintf(out, "  Album:    %s\n", r.Album)
	}
	if r.HasLyrics {
		fmt.Fprintf(out, "  Lyrics:   yes (%d lines)\n", r.LyricsLines)
		if r.Preview != "" {
			fmt.Fprintf(out, "  Preview:  %s\n", r.Preview)
		}
	} else {
		fmt.Fprintln(out, "  Lyrics:   no")
	}
	fmt.Fprintf(out, "  Sidecar:  %s (%s)\n", r.SidecarPath, presence(r.SidecarExists))
	fmt.Fprintf(out, "  Failed:   %s\n", yesNo(r.FailedExists))
}

func presence(exists bool) string {
	if exists {
		return "present"
	}
	return "absent"
}
