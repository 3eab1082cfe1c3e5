package logging

import "context"

type contextKey string

const (
	entryIDKey contextKey = "entry_id"
	actionKey  contextKey = "action"
)

// WithEntryID adds a modal entry ID to the context.
func WithEntryID(ctx context.Context, entryID string) context.Context {
	return context.WithValue(ctx, entryIDKey, entryID)
}

// WithAction adds the name of a workflow action to the context.
func WithAction(ctx context.Context, action string) context.Context {
	return context.WithValue(ctx, actionKey, action)
}

// GetEntryID retrieves the modal entry ID from the context.
// Returns empty string if not present.
func GetEntryID(ctx context.Context) string {
	if id, ok := ctx.Value(entryIDKey).(string); ok {
		return id
	}
	return ""
}

// GetAction retrieves the action name from the context.
// Returns empty string if not present.
func GetAction(ctx context.Context) string {
	if a, ok := ctx.Value(actionKey).(string); ok {
		return a
	}
	return ""
}
