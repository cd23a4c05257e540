package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls the rotating log file used while the terminal UI owns
// stdout and stderr.
type FileConfig struct {
	Dir        string
	SessionID  string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel maps a config level name to a zerolog level. Unknown names
// fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	}
	return zerolog.InfoLevel
}

// New creates a new zerolog logger writing to stderr
func New(cfg Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter creates a logger writing to w in the configured format
func NewWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	output := w
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
			NoColor:    w != os.Stderr && w != os.Stdout,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromConfigValues builds a logger from the string values of the config file
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// DATAGRID_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// DATAGRID_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("DATAGRID_LOG_LEVEL"), os.Getenv("DATAGRID_LOG_FORMAT"))
}

// NewWithFile creates a logger writing to a rotating session file under
// fc.Dir. The returned cleanup closes the file.
func NewWithFile(cfg Config, fc FileConfig) (zerolog.Logger, func(), error) {
	if err := os.MkdirAll(fc.Dir, 0o755); err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("create log dir: %w", err)
	}
	if fc.SessionID == "" {
		fc.SessionID = GenerateSessionID()
	}

	rotator, err := NewLogRotator(RotatorConfig{
		Dir:        fc.Dir,
		BaseName:   SessionFilename(fc.SessionID),
		MaxSizeMB:  fc.MaxSizeMB,
		MaxBackups: fc.MaxBackups,
		MaxAgeDays: fc.MaxAgeDays,
		Compress:   fc.Compress,
	})
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	logger := NewWithWriter(cfg, rotator).With().
		Str("session", ShortSessionID(fc.SessionID)).
		Logger()
	cleanup := func() {
		if err := rotator.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close log file %s: %v\n", filepath.Join(fc.Dir, rotator.baseName), err)
		}
	}
	return logger, cleanup, nil
}
