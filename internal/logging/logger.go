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

const (
	logFilePerm = 0o600
	logDirPerm  = 0o755
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// LogDir enables a per-session log file when non-empty.
	LogDir string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	return zerolog.New(consoleOrJSON(cfg, os.Stderr)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewWithFile creates a logger that writes to stderr and to a session log file
// under cfg.LogDir. The returned closer releases the file.
func NewWithFile(cfg Config, sessionID string) (zerolog.Logger, io.Closer, error) {
	if cfg.LogDir == "" {
		return New(cfg), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(cfg.LogDir, logDirPerm); err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(cfg.LogDir, SessionFilename(sessionID))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("open session log: %w", err)
	}

	// The file always gets JSON so `viewshell logs` style tooling can parse it.
	writer := zerolog.MultiLevelWriter(consoleOrJSON(cfg, os.Stderr), file)
	logger := zerolog.New(writer).
		Level(cfg.Level).
		With().
		Timestamp().
		Str("session", ShortSessionID(sessionID)).
		Logger()
	return logger, file, nil
}

func consoleOrJSON(cfg Config, out io.Writer) io.Writer {
	if cfg.Format == "json" {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: cfg.TimeFormat,
	}
}

// ParseLevel maps a config string to a zerolog level, defaulting to info.
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
	default:
		return zerolog.InfoLevel
	}
}

// SetLevel sets the process-wide minimum level. It can only restrict what a
// logger built by New emits, so build with TraceLevel to adjust it live.
func SetLevel(level string) {
	zerolog.SetGlobalLevel(ParseLevel(level))
}

// NewFromEnv creates a logger based on environment variables
// VIEWSHELL_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// VIEWSHELL_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("VIEWSHELL_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("VIEWSHELL_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}
