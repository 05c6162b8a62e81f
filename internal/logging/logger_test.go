package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestWithComponentAddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := WithComponent(WithContext(context.Background(), logger), "resolver")
	FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"resolver"`)
}

func TestFromContextWithoutLoggerIsNoop(t *testing.T) {
	log := FromContext(context.Background())
	assert.NotPanics(t, func() { log.Info().Msg("dropped") })
}

func TestContextFieldsStack(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := WithContext(context.Background(), logger)
	ctx = WithPreset(ctx, "stage")
	ctx = WithTabIndex(ctx, 2)
	ctx = WithDragSession(ctx, "s1")
	FromContext(ctx).Info().Msg("drop")

	out := buf.String()
	assert.Contains(t, out, `"preset":"stage"`)
	assert.Contains(t, out, `"tab":2`)
	assert.Contains(t, out, `"drag_session":"s1"`)
}

func TestWithDragSessionEmptyID(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := WithDragSession(WithContext(context.Background(), logger), "")
	FromContext(ctx).Info().Msg("no drag")

	assert.NotContains(t, buf.String(), FieldDragSession)
}
