package logging

import (
	"context"
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
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"off", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestParseFields(t *testing.T) {
	fields := parseFields("service=pokedex, region = eu ,broken")
	assert.Equal(t, map[string]any{"service": "pokedex", "region": "eu"}, fields)
	assert.Empty(t, parseFields(""))
}

func TestRequestIDContext(t *testing.T) {
	tl := NewTestLogger(t)

	ctx := WithLogger(context.Background(), tl.Logger)
	ctx = WithRequestID(ctx, "req-123")

	assert.Equal(t, "req-123", RequestID(ctx))
	FromContext(ctx).Info().Msg("hello")

	lines := tl.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"request_id":"req-123"`)
}

func TestFromContextDefaults(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))
	assert.Empty(t, RequestID(context.Background()))
}

func TestWithField(t *testing.T) {
	tl := NewTestLogger(t)
	ctx := WithField(WithLogger(context.Background(), tl.Logger), "records", 151)
	FromContext(ctx).Debug().Msg("loaded")
	assert.True(t, tl.Contains(`"records":151`))
}
