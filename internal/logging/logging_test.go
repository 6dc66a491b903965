package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Fatalf("ParseFormat(json) = %v, %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatText {
		t.Fatalf("ParseFormat(\"\") = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestInitJSON(t *testing.T) {
	old := defaultLogger
	defer func() {
		defaultLogger = old
		slog.SetDefault(old)
	}()
	var buf bytes.Buffer
	logger := Init(slog.LevelInfo, FormatJSON, &buf)
	if logger != Logger() {
		t.Fatalf("expected Init to install the returned logger")
	}
	logger.Debug("hidden")
	logger.Info("shown", "line", 3)
	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record should be filtered: %s", out)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("decode record: %v (%s)", err, out)
	}
	if rec["msg"] != "shown" || rec["line"] != float64(3) {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestInitText(t *testing.T) {
	old := defaultLogger
	defer func() {
		defaultLogger = old
		slog.SetDefault(old)
	}()
	var buf bytes.Buffer
	Init(slog.LevelWarn, FormatText, &buf).Warn("skipping directive", "name", "bogus")
	if !strings.Contains(buf.String(), "name=bogus") {
		t.Fatalf("unexpected text output: %q", buf.String())
	}
}
