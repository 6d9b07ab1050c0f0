package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"not-a-level", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := New(tt.level, &bytes.Buffer{}).GetLevel(); got != tt.want {
			t.Errorf("New(%q): expected %s, got %s", tt.level, tt.want, got)
		}
	}
}

func TestNew_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", &buf)

	logger.Info().Int("answer", 7).Msg("solved")
	logger.Debug().Msg("filtered")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a single JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "solved" {
		t.Errorf("unexpected message: %v", entry["message"])
	}
	if entry["answer"] != float64(7) {
		t.Errorf("unexpected answer field: %v", entry["answer"])
	}
	for _, field := range []string{"time", "caller", "level"} {
		if _, ok := entry[field]; !ok {
			t.Errorf("expected %q field in log entry", field)
		}
	}
}
