package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the process-wide logger. It discards everything until Init runs.
var Logger = zerolog.Nop()

// Level is a --log-level value.
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

var levels = map[Level]zerolog.Level{
	DebugLevel: zerolog.DebugLevel,
	InfoLevel:  zerolog.InfoLevel,
	WarnLevel:  zerolog.WarnLevel,
	ErrorLevel: zerolog.ErrorLevel,
}

// Config holds logging configuration
type Config struct {
	Level      Level
	JSONOutput bool
	// Output defaults to stderr. Stdout is left alone.
	Output io.Writer
}

// ParseLevel converts a --log-level flag value to a Level
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(s))
	if _, ok := levels[l]; !ok {
		return "", fmt.Errorf("invalid log level %q (expected debug, info, warn or error)", s)
	}
	return l, nil
}

// Init replaces Logger according to cfg.
func Init(cfg Config) {
	zerolog.SetGlobalLevel(cfg.Level.zerolog())

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if !cfg.JSONOutput {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	Logger = zerolog.New(out).With().Timestamp().Logger()
}

// WithComponent creates a child logger with component field
func WithComponent(component string) zerolog.Logger {
	return with("component", component)
}

// WithNodeID creates a child logger with node_id field
func WithNodeID(nodeID string) zerolog.Logger {
	return with("node_id", nodeID)
}

// WithVolumeID creates a child logger with volume_id field
func WithVolumeID(volumeID string) zerolog.Logger {
	return with("volume_id", volumeID)
}

// WithVolumeGroup creates a child logger with volume_group field
func WithVolumeGroup(vg string) zerolog.Logger {
	return with("volume_group", vg)
}

func with(key, value string) zerolog.Logger {
	return Logger.With().Str(key, value).Logger()
}

func (l Level) zerolog() zerolog.Level {
	if zl, ok := levels[l]; ok {
		return zl
	}
	return zerolog.InfoLevel
}
