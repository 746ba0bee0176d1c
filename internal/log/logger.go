// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package log builds the zerolog loggers used by the CLI. Diagnostics go to
// stderr as JSON lines so that command output on stdout stays clean.
package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// service is attached to every entry.
const service = "quote-context"

// Field names shared by all components.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldCommand   = "command"
	FieldURL       = "url"
	FieldBytes     = "bytes"
)

// Config captures options for building a logger.
type Config struct {
	Level   string    // "debug", "info", ...; falls back to LOG_LEVEL, then "warn"
	Output  io.Writer // defaults to os.Stderr
	Console bool      // human-readable output instead of JSON
}

// New returns a logger for cfg. An unparsable level falls back to warn.
func New(cfg Config) zerolog.Logger {
	level := parseLevel(cfg.Level)

	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}
	if cfg.Console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	}

	return zerolog.New(w).Level(level).With().
		Timestamp().
		Str(FieldService, service).
		Logger()
}

func parseLevel(s string) zerolog.Level {
	if s == "" {
		s = os.Getenv("LOG_LEVEL")
	}
	if s == "" {
		return zerolog.WarnLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

// WithComponent returns a child of l annotated with the component name.
func WithComponent(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str(FieldComponent, component).Logger()
}
