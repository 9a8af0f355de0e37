package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, int(slog.LevelInfo), "json")

	l.Debug("hidden")
	l.With("component", "test").Info("Test: hello", "key", "value")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Test: hello", record["msg"])
	assert.Equal(t, "value", record["key"])
	assert.Equal(t, "test", record["component"])
}

func TestNewWithWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, int(slog.LevelDebug), "text")

	l.Debug("visible", "n", 1)

	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "n=1")
}
