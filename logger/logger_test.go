package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "info", "json")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	printer := Component(l, "printer")
	printer.Info().Str("menu", "Pizza").Msg("printed")
	l.Debug().Msg("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("unmarshal %q: %v", lines[0], err)
	}
	for key, want := range map[string]string{
		"level":     "info",
		"component": "printer",
		"menu":      "Pizza",
		"message":   "printed",
	} {
		if entry[key] != want {
			t.Errorf("%s = %v, want %q", key, entry[key], want)
		}
	}
	if _, ok := entry["time"]; !ok {
		t.Error("missing time field")
	}
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "", "console")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Warn().Msg("careful")
	if !strings.Contains(buf.String(), "careful") {
		t.Errorf("console output = %q, want message", buf.String())
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		level, format string
	}{
		{"loud", "json"},
		{"info", "xml"},
	}
	for _, tt := range tests {
		if _, err := New(&bytes.Buffer{}, tt.level, tt.format); err == nil {
			t.Errorf("New(%q, %q): want error", tt.level, tt.format)
		}
	}
}
