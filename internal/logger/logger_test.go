package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastEntry(t *testing.T, data []byte) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "vocab-server")

	l.Info().Msg("hello")

	entry := lastEntry(t, buf.Bytes())
	assert.Equal(t, "vocab-server", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger(t *testing.T) {
	t.Run("writes to the given file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vocab-client.log")
		l := NewClientLogger("vocab-client", path)

		l.Debug().Int64("user_id", 4).Msg("signed in")
		l.Info().Msg("signed out")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		entry := lastEntry(t, data)
		assert.Equal(t, "vocab-client", entry["role"])
		assert.Equal(t, "signed out", entry["message"])
		assert.Len(t, bytes.Split(bytes.TrimSpace(data), []byte("\n")), 2)
	})

	t.Run("appends across launches", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vocab-client.log")
		NewClientLogger("vocab-client", path).Info().Msg("first")
		NewClientLogger("vocab-client", path).Info().Msg("second")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Len(t, bytes.Split(bytes.TrimSpace(data), []byte("\n")), 2)
	})

	t.Run("unopenable path discards output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing-dir", "vocab-client.log")
		l := NewClientLogger("vocab-client", path)
		require.NotNil(t, l)

		l.Info().Msg("lost")

		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestNop(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "vocab-server")

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "t-1")
	})

	child.Info().Msg("child")
	entry := lastEntry(t, buf.Bytes())
	assert.Equal(t, "vocab-server", entry["role"])
	assert.Equal(t, "t-1", entry["trace_id"])

	parent.Info().Msg("parent")
	assert.NotContains(t, lastEntry(t, buf.Bytes()), "trace_id")
}

func TestFromContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-2").Logger()

	FromContext(zl.WithContext(context.Background())).Info().Msg("ctx")

	assert.Equal(t, "t-2", lastEntry(t, buf.Bytes())["trace_id"])
}

func TestFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/words/1/", nil)
	require.NotNil(t, FromRequest(req))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Int64("user_id", 9).Logger()
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("req")

	assert.EqualValues(t, 9, lastEntry(t, buf.Bytes())["user_id"])
}
