// Package notify is the in-process notification bus. Every notice shown by
// the modal workflows is published here so the notification history modal
// can list it after the toast is gone.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hay-kot/campus/internal/core/logging"
	"github.com/hay-kot/campus/internal/core/notify"
)

// Subscriber is a callback invoked when a notification is published.
type Subscriber func(notify.Notification)

// Bus dispatches notifications to subscribers inline and persists them to
// a Store. It satisfies modal.Publisher.
type Bus struct {
	store       notify.Store
	subscribers []Subscriber
	mu          sync.Mutex
	logger      zerolog.Logger
}

// NewBus creates a notification bus backed by the given store.
// If store is nil, notifications are dispatched to subscribers but not persisted.
func NewBus(store notify.Store) *Bus {
	return &Bus{
		store:  store,
		logger: logging.Component("notify"),
	}
}

// Subscribe registers a callback that will be invoked on every Publish.
func (b *Bus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Publish dispatches a notification to all subscribers and persists it to the store.
func (b *Bus) Publish(n notify.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	// Persist first so the notification has an ID for subscribers.
	if b.store != nil {
		id, err := b.store.Save(context.Background(), n)
		if err != nil {
			b.logger.Error().Err(err).Str("message", n.Message).Msg("failed to persist notification")
		} else {
			n.ID = id
		}
	}

	b.mu.Lock()
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(n)
	}
}

func (b *Bus) Successf(format string, args ...any) {
	b.publishf(notify.LevelSuccess, format, args...)
}

func (b *Bus) Errorf(format string, args ...any) {
	b.publishf(notify.LevelError, format, args...)
}

func (b *Bus) Warnf(format string, args ...any) {
	b.publishf(notify.LevelWarning, format, args...)
}

func (b *Bus) Infof(format string, args ...any) {
	b.publishf(notify.LevelInfo, format, args...)
}

func (b *Bus) publishf(level notify.Level, format string, args ...any) {
	b.Publish(notify.Notification{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}

// History returns all persisted notifications (newest first).
// Returns nil if no store is configured.
func (b *Bus) History() ([]notify.Notification, error) {
	if b.store == nil {
		return nil, nil
	}
	return b.store.List(context.Background())
}

// Count returns the number of persisted notifications.
func (b *Bus) Count() int {
	if b.store == nil {
		return 0
	}
	n, err := b.store.Count(context.Background())
	if err != nil {
		b.logger.Error().Err(err).Msg("failed to count notifications")
		return 0
	}
	return int(n)
}

// Clear deletes all persisted notifications.
func (b *Bus) Clear() error {
	if b.store == nil {
		return nil
	}
	return b.store.Clear(context.Background())
}
