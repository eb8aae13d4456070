package app

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Console forces the human-readable writer. When false, the console
	// writer is still used if Output is a terminal.
	Console bool
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  "info",
		Output: os.Stderr,
	}
}

// ParseLogLevel parses a level name, falling back to info.
func ParseLogLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger builds a logger from cfg.
func NewLogger(cfg LoggerConfig) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Console || isTerminal(out) {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: !isTerminal(out)}
	}
	return zerolog.New(out).Level(ParseLogLevel(cfg.Level)).With().Timestamp().Logger()
}

// InstallLogger makes a logger built from cfg the global zerolog logger.
func InstallLogger(cfg LoggerConfig) zerolog.Logger {
	logger := NewLogger(cfg)
	log.Logger = logger
	return logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
