package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/simonhull/lrcembed/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"", zapcore.InfoLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{"warning", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"trace", zapcore.InfoLevel, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLevel(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNew_JSONConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := New(config.Logging{Level: "info", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer cleanup()

	logger.Debug("hidden")
	logger.Info("embedded", zap.String("path", "song.flac"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if entry["msg"] != "embedded" || entry["path"] != "song.flac" || entry["level"] != "info" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := New(config.Logging{Level: "debug", Format: "console"}, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer cleanup()

	logger.Debug("scanning", zap.Int("files", 3))

	out := buf.String()
	if !strings.Contains(out, "DEBUG") || !strings.Contains(out, "scanning") {
		t.Errorf("console output = %q", out)
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "lrcembed.log")
	var buf bytes.Buffer
	logger, cleanup, err := New(config.Logging{Level: "info", Format: "console", File: path, MaxSizeMB: 1}, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Warn("embed failed", zap.String("path", "a.mp3"))
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"embed failed"`) {
		t.Errorf("log file = %q", data)
	}
	if !strings.Contains(buf.String(), "embed failed") {
		t.Errorf("console missing entry: %q", buf.String())
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, _, err := New(config.Logging{Level: "loud"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error")
	}
}
