package logger

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewLogger_WritesRoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "daoyi-gateway", "info")

	l.Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"role":"daoyi-gateway"`)
	assert.Contains(t, out, `"ts":`)
	assert.Contains(t, out, `"func":`)
	assert.Contains(t, out, `"message":"hello"`)
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "test", "warn")

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewLogger_RepeatedCallsKeepGlobals(t *testing.T) {
	var first, second bytes.Buffer
	newLogger(&first, "a", "info").Info().Msg("one")
	newLogger(&second, "b", "debug").Info().Msg("two")

	assert.Equal(t, "ts", zerolog.TimestampFieldName)
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Contains(t, second.String(), `"role":"b"`)
}

func TestChildLoggerDoesNotAffectParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "parent", "info")

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("request_id", "abc")
	})

	parent.Info().Msg("from parent")
	assert.NotContains(t, buf.String(), "request_id")

	buf.Reset()
	child.Info().Msg("from child")
	assert.Contains(t, buf.String(), `"request_id":"abc"`)
}

func TestFromContextAndRequest(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "ctx", "info")

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("via context")
	assert.Contains(t, buf.String(), "via context")

	req := httptest.NewRequest("GET", "/", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("via request")
	assert.Contains(t, buf.String(), "via request")
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}
