package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests replace the process-wide slog default, so none of them run in
// parallel.

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any

	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))

		out = append(out, entry)
	}

	return out
}

func TestGet_Attributes(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{Subsystem: "lookup-test", JSON: true, Output: &buf})

	Get().Info("default subsystem")

	ctx := WithSubsystem(t.Context(), "overridden")
	ctx = With(ctx, "lookup_id", "abc")
	Get(ctx).Info("scoped")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "lookup-test", lines[0]["subsystem"])
	assert.Equal(t, "overridden", lines[1]["subsystem"])
	assert.Equal(t, "abc", lines[1]["lookup_id"])
}

func TestGet_Muted(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{Subsystem: "lookup-test", JSON: true, Output: &buf})

	Get(WithMuted(t.Context(), true)).Error("should not appear")
	Get(WithMuted(t.Context(), false)).Info("should appear")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "should appear", lines[0]["msg"])
}

func TestGet_NilContext(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{Subsystem: "nil-ctx", JSON: true, Output: &buf})

	var nilCtx context.Context //nolint:staticcheck

	Get(nilCtx).Info("still logs")
	assert.Equal(t, "nil-ctx", GetSubsystem(nilCtx))
	assert.Len(t, decodeLines(t, &buf), 1)
}

func TestWith_DoesNotAlias(t *testing.T) { //nolint:paralleltest
	base := With(t.Context(), "a", 1)
	left := With(base, "b", 2)
	right := With(base, "c", 3)

	assert.Equal(t, []any{"a", 1, "b", 2}, getValues(left))
	assert.Equal(t, []any{"a", 1, "c", 3}, getValues(right))
	assert.Equal(t, base, With(base))
}

func TestConfigureLogging_Env(t *testing.T) {
	t.Setenv("LOG_JSON", "true")
	t.Setenv("LOG_LEVEL", "warn")

	var buf bytes.Buffer

	logger, err := ConfigureLogging("env-app", WithOutput(&buf))
	require.NoError(t, err)

	logger.Info("filtered out")
	logger.Warn("kept")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "kept", lines[0]["msg"])
	assert.Equal(t, "env-app", GetSubsystem(t.Context()))
}

func TestConfigureLogging_BadOutput(t *testing.T) {
	t.Setenv("LOG_OUTPUT", "syslog")

	_, err := ConfigureLogging("env-app")
	require.ErrorIs(t, err, ErrInvalidLogOutput)
}

func TestConfigureLogging_TextFormat(t *testing.T) {
	t.Setenv("LOG_JSON", "false")

	var buf bytes.Buffer

	_, err := ConfigureLogging("text-app", WithOutput(&buf))
	require.NoError(t, err)

	slog.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestWithLogger(t *testing.T) { //nolint:paralleltest
	var defaultBuf, scopedBuf bytes.Buffer

	ConfigureLoggingWithOptions(Options{Subsystem: "base", JSON: true, Output: &defaultBuf})

	scoped := slog.New(slog.NewJSONHandler(&scopedBuf, nil))
	ctx := With(WithLogger(t.Context(), scoped), "k", "v")

	Get(ctx).Info("to scoped")

	assert.Zero(t, defaultBuf.Len())

	lines := decodeLines(t, &scopedBuf)
	require.Len(t, lines, 1)
	assert.Equal(t, "v", lines[0]["k"])
	assert.Equal(t, "base", lines[0]["subsystem"])
}
