// Package notify defines notification records and the store that keeps
// the history shown by the notification history modal.
package notify

import (
	"context"
	"time"
)

// Level represents the severity of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification represents a single notification event.
type Notification struct {
	ID        int64
	Level     Level
	Title     string
	Message   string
	CreatedAt time.Time
}

// Store keeps notification history.
type Store interface {
	Save(ctx context.Context, n Notification) (int64, error)
	List(ctx context.Context) ([]Notification, error)
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
