package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestLogger_InfoFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZapLogger("test-app", "test", "debug", &buf)

	l.Info("fetched feed", map[string]any{"city": "Testville", "entries": 40})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "fetched feed", entries[0]["msg"])
	assert.Equal(t, "Testville", entries[0]["city"])
	assert.Equal(t, "test-app", entries[0]["app_name"])
	assert.Equal(t, "test", entries[0]["app_zone"])
	assert.Contains(t, entries[0]["caller_func"], "TestLogger_InfoFields")
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewZapLogger("test-app", "test", "warn", &buf)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warning("shown")
	l.Error(errors.New("boom"), map[string]any{"city": "Nowhere"})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "error", entries[1]["level"])
	assert.Equal(t, "boom", entries[1]["error"])
	assert.NotEmpty(t, entries[1]["stack"])
}

func TestLogger_MultipleWriters(t *testing.T) {
	var a, b bytes.Buffer
	l := NewZapLogger("test-app", "test", "info", &a, &b)

	l.Info("twice")

	assert.Len(t, decodeLines(t, &a), 1)
	assert.Len(t, decodeLines(t, &b), 1)
}

func TestToZapFields_OddKeyvals(t *testing.T) {
	fields := toZapFields([]any{"a", 1, 2, "b", "dangling"})

	require.Len(t, fields, 2)
	assert.Equal(t, "a", fields[0].Key)
	assert.Equal(t, "invalid-key", fields[1].Key)
}
