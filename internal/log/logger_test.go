// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "default is warn", level: "", want: zerolog.WarnLevel},
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "upper case", level: "INFO", want: zerolog.InfoLevel},
		{name: "invalid falls back to warn", level: "loud", want: zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(Config{Level: tt.level, Output: &bytes.Buffer{}})
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestNew_LevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	l := New(Config{Output: &bytes.Buffer{}})
	assert.Equal(t, zerolog.ErrorLevel, l.GetLevel())
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := WithComponent(New(Config{Level: "debug", Output: &buf}), "escape")
	l.Debug().Int(FieldBytes, 12).Msg("escaped input")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "escape", entry[FieldComponent])
	assert.Equal(t, "quote-context", entry[FieldService])
	assert.Equal(t, "escaped input", entry["message"])
	assert.EqualValues(t, 12, entry[FieldBytes])
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Output: &buf})
	l.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	l.Warn().Msg("shown")
	assert.True(t, strings.Contains(buf.String(), "shown"))
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Output: &buf, Console: true})
	l.Info().Str(FieldCommand, "diff").Msg("done")
	assert.Contains(t, buf.String(), "done")
	assert.Contains(t, buf.String(), "command=diff")
}
