package logging

import (
	"bytes"
	"encoding/json"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"trace":   LevelTrace,
		"bogus":   slog.LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Config{Level: "warn", Format: "json"})

	logger.Info("hidden")
	logger.Warn("shown", slog.String("table", "T01"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["msg"] != "shown" || entry["table"] != "T01" {
		t.Fatalf("unexpected entry %#v", entry)
	}
}

func TestDailyFileNaming(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	now := time.Date(2025, 3, 9, 23, 30, 0, 0, time.FixedZone("ICT", 7*3600))

	file, err := DailyFile(dir, now)
	if err != nil {
		t.Fatalf("DailyFile: %v", err)
	}
	defer file.Close()

	if got, want := filepath.Base(file.Name()), "2025-03-09.log"; got != want {
		t.Fatalf("file name = %s, want %s", got, want)
	}
}

func TestSetupTeesToConsoleAndFile(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	file, logger, err := Setup(&console, dir, Config{Level: "info", Format: "text"})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	logger.Info("booted")
	name := file.Name()
	file.Close()

	raw, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(raw), "msg=booted") {
		t.Fatalf("file missing entry: %q", raw)
	}
	if !strings.Contains(console.String(), "msg=booted") {
		t.Fatalf("console missing entry: %q", console.String())
	}
}
