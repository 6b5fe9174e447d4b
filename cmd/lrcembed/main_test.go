package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/simonhull/lrcembed/internal/testsupport"
)

// isolateCLI keeps user configuration and .env files out of the test.
func isolateCLI(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	return filepath.Join(t.TempDir(), "absent.toml")
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	configPath := isolateCLI(t)
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestEmbedCommand(t *testing.T) {
	dir := t.TempDir()
	flac := testsupport.WriteFLAC(t, dir, "song.flac", "TITLE=Song")
	lrc := testsupport.WriteText(t, filepath.Join(dir, "song.lrc"), "line1\nline2")
	testsupport.WriteMP3(t, dir, "track.mp3", testsupport.MP3Tag{Title: "Track"})

	out, _, err := runCLI(t, "embed", dir)
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	requireContains(t, out, "Processed 2 files: 1 embedded, 0 skipped, 1 without sidecar, 0 failed")
	requireContains(t, out, "Embedded: 50.00%")

	if !testsupport.Exists(lrc) {
		t.Error("sidecar removed without --reduce")
	}
	if testsupport.Exists(filepath.Join(dir, ".lrcembed.lock")) {
		t.Error("lock file left behind")
	}

	out, _, err = runCLI(t, "show", flac)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Lyrics:   yes (2 lines)")
	requireContains(t, out, "Preview:  line1")
	requireContains(t, out, "(present)")
}

func TestEmbedCommandSkipAndReduce(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFLAC(t, dir, "song.flac")
	lrc := testsupport.WriteText(t, filepath.Join(dir, "song.lrc"), "words")

	if _, _, err := runCLI(t, "embed", dir); err != nil {
		t.Fatalf("first embed: %v", err)
	}

	out, _, err := runCLI(t, "embed", "--skip", "--reduce", dir)
	if err != nil {
		t.Fatalf("second embed: %v", err)
	}
	requireContains(t, out, "1 skipped")
	if !testsupport.Exists(lrc) {
		t.Error("skipped file's sidecar was deleted")
	}

	out, _, err = runCLI(t, "embed", "-r", dir)
	if err != nil {
		t.Fatalf("reduce embed: %v", err)
	}
	requireContains(t, out, "1 embedded")
	if testsupport.Exists(lrc) {
		t.Error("sidecar kept with --reduce")
	}
}

func TestEmbedCommandBackup(t *testing.T) {
	dir := t.TempDir()
	flac := testsupport.WriteFLAC(t, dir, "song.flac")
	testsupport.WriteText(t, filepath.Join(dir, "song.lrc"), "words")
	before := testsupport.ReadFile(t, flac)

	out, _, err := runCLI(t, "embed", "--backup", ".bak", dir)
	if err != nil {
		t.Fatalf("embed --backup: %v", err)
	}
	requireContains(t, out, "1 embedded")
	if !bytes.Equal(testsupport.ReadFile(t, flac+".bak"), before) {
		t.Error("backup does not hold the previous content")
	}

	// The backup must not be discovered as audio on the next run.
	out, _, err = runCLI(t, "embed", "--backup", ".bak", dir)
	if err != nil {
		t.Fatalf("second embed: %v", err)
	}
	requireContains(t, out, "Processed 1 files")

	_, _, err = runCLI(t, "embed", "--backup", ".mp3", dir)
	if err == nil || !strings.Contains(err.Error(), "--backup") {
		t.Fatalf("expected --backup validation error, got %v", err)
	}
}

func TestEmbedCommandRecursive(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFLAC(t, filepath.Join(dir, "disc1"), "01.flac")
	testsupport.WriteText(t, filepath.Join(dir, "disc1", "01.lrc"), "words")

	out, _, err := runCLI(t, "embed", dir)
	if err != nil {
		t.Fatalf("flat embed: %v", err)
	}
	requireContains(t, out, "Processed 0 files")
	requireContains(t, out, "Embedded: 0.00%")

	out, _, err = runCLI(t, "embed", "-R", dir)
	if err != nil {
		t.Fatalf("recursive embed: %v", err)
	}
	requireContains(t, out, "Processed 1 files: 1 embedded")
}

func TestEmbedCommandStrict(t *testing.T) {
	dir := t.TempDir()
	broken := testsupport.WriteText(t, filepath.Join(dir, "broken.flac"), "not flac")
	testsupport.WriteText(t, filepath.Join(dir, "broken.lrc"), "words")

	out, _, err := runCLI(t, "embed", dir)
	if err != nil {
		t.Fatalf("non-strict embed should succeed: %v", err)
	}
	requireContains(t, out, broken)
	requireContains(t, out, "1 failed")
	if !testsupport.Exists(filepath.Join(dir, "broken.lrc.failed")) {
		t.Error("sidecar not renamed to .failed")
	}

	// The .lrc is gone now, so recreate it for the strict run.
	testsupport.WriteText(t, filepath.Join(dir, "broken.lrc"), "words")
	_, _, err = runCLI(t, "embed", "--strict", dir)
	if err == nil {
		t.Fatal("expected strict run to fail")
	}
	if code := exitCode(err); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
}

func TestEmbedCommandErrors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, _, err := runCLI(t, "embed", filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("expected not-exist error, got %v", err)
		}
		if exitCode(err) != 1 {
			t.Fatalf("exit code = %d, want 1", exitCode(err))
		}
	})

	t.Run("no arguments", func(t *testing.T) {
		if _, _, err := runCLI(t, "embed"); err == nil {
			t.Fatal("expected argument error")
		}
	})

	t.Run("bad log level", func(t *testing.T) {
		_, _, err := runCLI(t, "--log-level", "loud", "embed", t.TempDir())
		if err == nil || !strings.Contains(err.Error(), "logging.level") {
			t.Fatalf("expected log level error, got %v", err)
		}
	})
}

func TestShowCommandErrors(t *testing.T) {
	_, _, err := runCLI(t, "show", filepath.Join(t.TempDir(), "missing.flac"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestConfigCommands(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, _, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if !testsupport.Exists(target) {
		t.Fatalf("expected config file at %s", target)
	}

	if _, _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error for existing file")
	}
	if _, _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "[embed]")
	requireContains(t, out, "# Config path:")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "lrcembed 0.1.0")
}

func TestExitCode(t *testing.T) {
	if exitCode(errors.New("x")) != 1 {
		t.Error("default exit code should be 1")
	}
	if exitCode(&exitError{code: 2, err: errors.New("x")}) != 2 {
		t.Error("exitError code not used")
	}
}

func TestVersionLine(t *testing.T) {
	info := &debug.BuildInfo{
		GoVersion: "go1.26.0",
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	want := "lrcembed 0.1.0 (commit 0123456789ab-dirty, built 2026-01-02T03:04:05Z, go1.26.0)"
	if got := versionLine(info); got != want {
		t.Errorf("versionLine() = %q, want %q", got, want)
	}

	requireContains(t, versionLine(nil), "commit unknown, built unknown")
}
