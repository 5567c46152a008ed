package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{name: "trace", input: "trace", want: LevelTrace},
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "info", input: "info", want: slog.LevelInfo},
		{name: "warn", input: "warn", want: slog.LevelWarn},
		{name: "warning alias", input: "warning", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "mixed case", input: "DeBuG", want: slog.LevelDebug},
		{name: "unknown defaults to info", input: "verbose", want: slog.LevelInfo},
		{name: "empty defaults to info", input: "", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNewWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{
		Level:   "info",
		Format:  "json",
		Service: "dateval",
		Version: "1.2.3",
	}, &buf)

	logger.Info("hello", slog.String("key", "value"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "dateval", entry["service"])
	assert.Equal(t, "1.2.3", entry["version"])
}

func TestNewWithWriter_TextFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{Level: "info", Format: "text"}, &buf)
	logger.Info("text message")

	assert.Contains(t, buf.String(), "msg=\"text message\"")
}

func TestNewWithWriter_PrettyFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{Level: "info", Format: "pretty"}, &buf)
	logger.Info("pretty message")

	assert.Contains(t, buf.String(), "pretty message")
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{Level: "warn", Format: "json"}, &buf)

	logger.Info("suppressed")
	assert.Empty(t, buf.String())

	logger.Warn("emitted")
	assert.Contains(t, buf.String(), "emitted")
}

func TestNewWithWriter_TraceLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{Level: "trace", Format: "json"}, &buf)
	logger.Log(context.Background(), LevelTrace, "wire detail")

	assert.Contains(t, buf.String(), "wire detail")
}

func TestNewWithWriter_FileOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	var buf bytes.Buffer

	logger := NewWithWriter(&Config{
		Level:  "info",
		Format: "pretty",
		File: FileConfig{
			Enabled:   true,
			Path:      path,
			MaxSizeMB: 1,
		},
	}, &buf)

	logger.Info("dual output")

	// terminal output
	assert.Contains(t, buf.String(), "dual output")

	// file output is JSON regardless of terminal format
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "dual output", entry["msg"])
}

func TestRedaction(t *testing.T) {
	tests := []struct {
		name   string
		attrs  []any
		secret string
	}{
		{
			name:   "password field",
			attrs:  []any{slog.String("password", "hunter2")},
			secret: "hunter2",
		},
		{
			name:   "api_key field",
			attrs:  []any{slog.String("api_key", "sk-12345")},
			secret: "sk-12345",
		},
		{
			name:   "bearer token value",
			attrs:  []any{slog.String("header", "Bearer abc.def.ghi")},
			secret: "Bearer abc.def.ghi",
		},
		{
			name:   "jwt value",
			attrs:  []any{slog.String("raw", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.sig")},
			secret: "eyJhbGciOiJIUzI1NiJ9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			logger := NewWithWriter(&Config{Level: "info", Format: "json"}, &buf)
			logger.Info("event", tt.attrs...)

			assert.NotContains(t, buf.String(), tt.secret)
		})
	}
}

func TestMultiHandler(t *testing.T) {
	var first, second bytes.Buffer

	handler := NewMultiHandler(
		slog.NewJSONHandler(&first, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&second, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	logger := slog.New(handler)

	logger.Info("info event")
	logger.Error("error event")

	assert.Contains(t, first.String(), "info event")
	assert.Contains(t, first.String(), "error event")
	assert.NotContains(t, second.String(), "info event")
	assert.Contains(t, second.String(), "error event")
}

func TestFromContext(t *testing.T) {
	t.Run("nil context returns default", func(t *testing.T) {
		assert.NotNil(t, FromContext(nil)) //nolint:staticcheck // exercising nil safety
	})

	t.Run("empty context returns default", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})

	t.Run("round trip", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(&Config{Level: "info", Format: "json"}, &buf)

		ctx := WithContext(context.Background(), logger)
		FromContext(ctx).Info("from context")

		assert.Contains(t, buf.String(), "from context")
	})
}

func TestContextEnrichment(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&Config{Level: "info", Format: "json"}, &buf)

	ctx := WithContext(context.Background(), logger)
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithCorrelationID(ctx, "corr-1")
	ctx = WithTraceID(ctx, "trace-1")

	FromContext(ctx).Info("enriched")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "corr-1", entry["correlation_id"])
	assert.Equal(t, "trace-1", entry["trace_id"])
}
