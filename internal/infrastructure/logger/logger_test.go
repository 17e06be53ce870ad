package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("whatever"))
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info", "json")

	l.Debug("hidden")
	l.Info("catalog loaded", "locale", "ro")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "catalog loaded", rec["msg"])
	assert.Equal(t, "ro", rec["locale"])
}

func TestNewConsoleHasNoColourOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", "console")

	l.Warn("load failed", "error", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "load failed")
	assert.Contains(t, out, "boom")
	assert.NotContains(t, out, "\x1b[")
}
