package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts entry_id and action from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if entryID := GetEntryID(ctx); entryID != "" {
		e.Str("entry_id", entryID)
	}

	if action := GetAction(ctx); action != "" {
		e.Str("action", action)
	}
}
