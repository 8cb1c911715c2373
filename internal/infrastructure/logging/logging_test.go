package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		out = append(out, entry)
	}
	return out
}

func TestTextLoggerJSONFormatterFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewText(Options{
		Writer:    &buf,
		Level:     "debug",
		Format:    FormatJSON,
		Component: "file_storage",
	})
	require.NoError(t, err)

	ctx := ports.WithCorrelationID(context.Background(), "abc123")
	logger.Info(ctx, "preference saved", "key", "theme-preference")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	require.Equal(t, "preference saved", entries[0]["msg"])
	require.Equal(t, "infrastructure", entries[0]["layer"])
	require.Equal(t, "file_storage", entries[0]["component"])
	require.Equal(t, "abc123", entries[0]["correlation_id"])
	require.Equal(t, "theme-preference", entries[0]["key"])
}

func TestTextLoggerHumanOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	logger.With("component", "store").Warn(context.Background(), "theme not found", "theme_id", "nope")
	out := buf.String()
	require.Contains(t, out, "theme not found")
	require.Contains(t, out, "theme_id=nope")
	require.Contains(t, out, "component=store")
}

func TestJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Format: FormatJSON, Level: "info", Layer: "application"})
	require.NoError(t, err)

	ctx := ports.WithCorrelationID(context.Background(), "corr-1")
	child := logger.With("component", "store")
	child.Debug(ctx, "hidden")
	child.Error(ctx, "failed to persist theme preference", "error", errors.New("quota"), "attempt", 2)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	require.Equal(t, "error", entry["level"])
	require.Equal(t, "failed to persist theme preference", entry["message"])
	require.Equal(t, "application", entry["layer"])
	require.Equal(t, "store", entry["component"])
	require.Equal(t, "corr-1", entry["correlation_id"])
	require.Equal(t, "quota", entry["error"])
	require.EqualValues(t, 2, entry["attempt"])
}

func TestNewRejectsUnknownInput(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Format: "xml"})
	require.Error(t, err)

	_, err = New(Options{Level: "loud"})
	require.Error(t, err)

	_, err = New(Options{Format: FormatJSON, Level: "loud"})
	require.Error(t, err)
}

func TestBufferFlushesInOrder(t *testing.T) {
	t.Parallel()

	buffer := NewBuffer(10)
	early := buffer.Logger()
	ctx := ports.WithCorrelationID(context.Background(), "boot")
	early.Debug(ctx, "reading config", "path", "folio.yaml")
	early.With("component", "config").Warn(ctx, "no config file")
	require.Equal(t, 2, buffer.Len())

	var buf bytes.Buffer
	delegate, err := NewJSON(Options{Writer: &buf, Level: "debug"})
	require.NoError(t, err)
	buffer.Flush(delegate)
	require.Zero(t, buffer.Len())

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	require.Equal(t, "reading config", entries[0]["message"])
	require.Equal(t, "folio.yaml", entries[0]["path"])
	require.Equal(t, "no config file", entries[1]["message"])
	require.Equal(t, "config", entries[1]["component"])
	require.Equal(t, "boot", entries[1]["correlation_id"])
}

func TestBufferDropsOldest(t *testing.T) {
	t.Parallel()

	buffer := NewBuffer(2)
	l := buffer.Logger()
	l.Info(context.Background(), "one")
	l.Info(context.Background(), "two")
	l.Info(context.Background(), "three")

	var buf bytes.Buffer
	delegate, err := NewJSON(Options{Writer: &buf})
	require.NoError(t, err)
	buffer.Flush(delegate)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	require.Equal(t, "two", entries[0]["message"])
	require.Equal(t, "three", entries[1]["message"])
}

func TestMergeFieldsOverridesAndSkipsEmpty(t *testing.T) {
	t.Parallel()

	got := mergeFields(
		[]interface{}{"component", "store", "layer", "x"},
		[]interface{}{"component", "applier", 42, "ignored", "dangling"},
		map[string]interface{}{"layer": "application", "correlation_id": ""},
	)
	require.Equal(t, []interface{}{"component", "applier", "layer", "application"}, got)
}

func TestNop(t *testing.T) {
	t.Parallel()

	logger := Nop()
	require.NotPanics(t, func() {
		logger.Info(context.Background(), "ignored")
		logger.With("k", "v").Error(context.Background(), "ignored")
	})
	require.Equal(t, logger, logger.With("k", "v"))
}
