package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func decodeLine(t *testing.T, line string) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not JSON: %q: %v", line, err)
	}
	return entry
}

func TestJSONLogger_Basic(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	logger.Info("model loaded", Model("out_0001"), Count(42))

	entry := decodeLine(t, strings.TrimSpace(buf.String()))
	if entry["level"] != "INFO" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["msg"] != "model loaded" {
		t.Errorf("msg = %v", entry["msg"])
	}
	fields := entry["fields"].(map[string]any)
	if fields["model"] != "out_0001" {
		t.Errorf("model field = %v", fields["model"])
	}
	if fields["count"] != float64(42) {
		t.Errorf("count field = %v", fields["count"])
	}
	if _, err := time.Parse(time.RFC3339Nano, entry["time"].(string)); err != nil {
		t.Errorf("bad timestamp: %v", err)
	}
}

func TestJSONLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Error("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}

	logger.SetLevel(DebugLevel)
	logger.Debug("now kept")
	lines = strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Errorf("got %d lines after SetLevel, want 3", len(lines))
	}
}

func TestJSONLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	child := logger.With(Component("loader"))
	child.Info("working", String("extra", "x"))

	entry := decodeLine(t, strings.TrimSpace(buf.String()))
	fields := entry["fields"].(map[string]any)
	if fields["component"] != "loader" {
		t.Errorf("inherited field missing: %v", fields)
	}
	if fields["extra"] != "x" {
		t.Errorf("call-site field missing: %v", fields)
	}

	// Parent stays clean.
	buf.Reset()
	logger.Info("plain")
	entry = decodeLine(t, strings.TrimSpace(buf.String()))
	if _, ok := entry["fields"]; ok {
		t.Errorf("parent logger inherited child fields: %v", entry)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"warning": WarnLevel,
		"error":   ErrorLevel,
		"bogus":   InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestErrorField(t *testing.T) {
	f := Error(errors.New("boom"))
	if f.Key != "error" || f.Value != "boom" {
		t.Errorf("error field = %+v", f)
	}
	if f := Error(nil); f.Value != nil {
		t.Errorf("nil error field = %+v", f)
	}
}
