package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"WARN", zerolog.WarnLevel, false},
		{"warning", zerolog.WarnLevel, false},
		{" error ", zerolog.ErrorLevel, false},
		{"loud", zerolog.InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestZerologAdapter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, FormatJSON, zerolog.InfoLevel)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	log.Debug("board", "hidden", nil)
	log.With("session", "abc").Info("launcher", "game started", map[string]interface{}{"mode": "Easy"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1 (debug must be filtered): %q", len(lines), buf.String())
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("unmarshal %q: %v", lines[0], err)
	}
	for key, want := range map[string]string{
		"component": "launcher",
		"message":   "game started",
		"mode":      "Easy",
		"session":   "abc",
		"level":     "info",
	} {
		if entry[key] != want {
			t.Errorf("%s = %v, want %q", key, entry[key], want)
		}
	}
}

func TestZerologAdapter_Error(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)
	log.Error("audio", errors.New("no device"), map[string]interface{}{"file": "background_music.wav"})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry["error"] != "no device" || entry["file"] != "background_music.wav" || entry["component"] != "audio" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	if _, err := New(nil, "xml", zerolog.InfoLevel); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestNop(t *testing.T) {
	var l Logger = Nop{}
	l.Info("x", "y", nil)
	l.Error("x", errors.New("z"), nil)
}
