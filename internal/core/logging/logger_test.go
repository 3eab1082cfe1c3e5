package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	logger := Component("modal")
	ctx := WithEntryID(context.Background(), "entry-1")
	logger.Info().Ctx(ctx).Msg("opened")

	var logEntry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	assert.Equal(t, "modal", logEntry["cmp"])
	assert.Equal(t, "opened", logEntry["message"])
	assert.Equal(t, "entry-1", logEntry["entry_id"], "component loggers carry the context hook")
}
