package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name      string
		setupCtx  func() context.Context
		wantKeys  []string
		wantEmpty []string
	}{
		{
			name: "both entry_id and action",
			setupCtx: func() context.Context {
				return WithAction(WithEntryID(context.Background(), "e-1"), "save")
			},
			wantKeys: []string{"entry_id", "action"},
		},
		{
			name: "only entry_id",
			setupCtx: func() context.Context {
				return WithEntryID(context.Background(), "e-1")
			},
			wantKeys:  []string{"entry_id"},
			wantEmpty: []string{"action"},
		},
		{
			name: "only action",
			setupCtx: func() context.Context {
				return WithAction(context.Background(), "save")
			},
			wantKeys:  []string{"action"},
			wantEmpty: []string{"entry_id"},
		},
		{
			name:      "no context values",
			setupCtx:  context.Background,
			wantEmpty: []string{"entry_id", "action"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			logger := zerolog.New(&buf).Hook(ContextHook{})
			logger.Info().Ctx(tt.setupCtx()).Msg("test")

			var logEntry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

			for _, key := range tt.wantKeys {
				assert.Contains(t, logEntry, key)
			}
			for _, key := range tt.wantEmpty {
				assert.NotContains(t, logEntry, key)
			}
		})
	}
}
