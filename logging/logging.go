package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/0xalexb/hjarta-conf/access"
	"github.com/0xalexb/hjarta-conf/document"
)

// DefaultLevel is used when a logging section sets no level.
const DefaultLevel = "info"

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level string
	// AddSource includes the caller position in each record.
	AddSource bool
}

// Load reads the logger settings from a "logging" style section:
//
//	{"level": "debug", "add_source": true}
//
// Both keys are optional; an absent key keeps the value already in c, and an
// unset level falls back to DefaultLevel.
func (c *LoggerConfig) Load(section *document.Object) error {
	def := c.Level
	if def == "" {
		def = DefaultLevel
	}

	level, err := access.GetOptionalString(section, "level", def)
	if err != nil {
		return err
	}

	addSource, err := access.GetOptionalBool(section, "add_source", c.AddSource)
	if err != nil {
		return err
	}

	c.Level = level
	c.AddSource = addSource

	return nil
}

// NewLogger creates a new slog.Logger with JSON handler writing to w.
// The level is parsed from the config; defaults to INFO if invalid or empty.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	level := parseLevel(config.Level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   config.AddSource,
		Level:       level,
		ReplaceAttr: nil,
	})

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
