package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"chatty", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestNewLoggerJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(LoggerConfig{Level: "warn", Output: buf})

	logger.Info().Msg("hidden")
	logger.Warn().Int("block", 3).Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %q", buf.String())
	}
	if got := gjson.Get(lines[0], "message").String(); got != "shown" {
		t.Errorf("expected message shown, got %q", got)
	}
	if got := gjson.Get(lines[0], "block").Int(); got != 3 {
		t.Errorf("expected block 3, got %d", got)
	}
}

func TestNewLoggerConsole(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(LoggerConfig{Level: "debug", Output: buf, Console: true})

	logger.Debug().Msg("hello")

	if gjson.Valid(buf.String()) {
		t.Errorf("console output should not be JSON: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("expected message in output, got %q", buf.String())
	}
}
