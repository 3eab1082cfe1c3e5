package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/campus/internal/core/modal"
	"github.com/hay-kot/campus/internal/core/notify"
	"github.com/hay-kot/campus/internal/core/styles"
	tuinotify "github.com/hay-kot/campus/internal/tui/notify"
)

// stubStore is a minimal notify.Store for testing that can optionally return errors.
type stubStore struct {
	items    []notify.Notification
	nextID   int64
	listErr  error
	clearErr error
}

func (s *stubStore) Save(_ context.Context, n notify.Notification) (int64, error) {
	s.nextID++
	n.ID = s.nextID
	s.items = append(s.items, n)
	return n.ID, nil
}

func (s *stubStore) List(_ context.Context) ([]notify.Notification, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]notify.Notification, len(s.items))
	for i, n := range s.items {
		out[len(s.items)-1-i] = n
	}
	return out, nil
}

func (s *stubStore) Clear(_ context.Context) error {
	if s.clearErr != nil {
		return s.clearErr
	}
	s.items = nil
	return nil
}

func (s *stubStore) Count(_ context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

func newHistoryModal(bus *tuinotify.Bus) Component {
	return newNotificationModal(bus)(modal.NotificationHistoryProps{}, Handlers{})
}

func TestNotificationModal_empty_history(t *testing.T) {
	m := newHistoryModal(tuinotify.NewBus(&stubStore{}))

	out := m.View(100, 40)
	assert.Contains(t, out, "Notifications")
	assert.Contains(t, out, "No notifications")
}

func TestNotificationModal_nil_bus(t *testing.T) {
	m := newHistoryModal(nil)

	assert.Contains(t, m.View(100, 40), "No notifications")
	assert.Nil(t, m.Update(keyRunes("D")))
}

func TestNotificationModal_custom_title(t *testing.T) {
	m := newNotificationModal(nil)(modal.NotificationHistoryProps{Title: "Recent Activity"}, Handlers{})

	assert.Contains(t, m.View(100, 40), "Recent Activity")
}

func TestNotificationModal_populated_history(t *testing.T) {
	bus := tuinotify.NewBus(&stubStore{})

	bus.Infof("first message")
	bus.Errorf("second message")
	bus.Successf("third message")

	out := newHistoryModal(bus).View(100, 40)

	assert.Contains(t, out, "first message")
	assert.Contains(t, out, "second message")
	assert.Contains(t, out, "third message")
}

func TestNotificationModal_history_error(t *testing.T) {
	bus := tuinotify.NewBus(&stubStore{listErr: errors.New("db connection failed")})

	out := newHistoryModal(bus).View(100, 40)

	assert.Contains(t, out, "failed to load notifications")
	assert.Contains(t, out, "db connection failed")
}

func TestNotificationModal_D_clears_history(t *testing.T) {
	store := &stubStore{}
	bus := tuinotify.NewBus(store)
	bus.Infof("will be cleared")

	m := newHistoryModal(bus)
	require.Contains(t, m.View(100, 40), "will be cleared")

	m.Update(keyRunes("D"))

	assert.Empty(t, store.items)
	assert.Contains(t, m.View(100, 40), "No notifications")
}

func TestNotificationModal_clear_error_keeps_history(t *testing.T) {
	store := &stubStore{clearErr: errors.New("clear failed")}
	bus := tuinotify.NewBus(store)
	bus.Infof("still here")

	m := newHistoryModal(bus)
	m.View(100, 40)
	m.Update(keyRunes("D"))

	assert.Contains(t, m.View(100, 40), "still here")
}

func TestNotificationModal_formatNotification_levels(t *testing.T) {
	now := time.Date(2026, 1, 15, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		level notify.Level
		icon  string
	}{
		{notify.LevelInfo, styles.IconNotifyInfo},
		{notify.LevelSuccess, styles.IconNotifySuccess},
		{notify.LevelWarning, styles.IconNotifyWarning},
		{notify.LevelError, styles.IconNotifyError},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			n := notify.Notification{
				Level:     tt.level,
				Message:   "test",
				CreatedAt: now,
			}
			out := formatNotification(n)
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, "14:30:45")
			assert.Contains(t, out, "test")
		})
	}
}

func TestNotificationModal_formatNotification_title(t *testing.T) {
	out := formatNotification(notify.Notification{
		Level:   notify.LevelSuccess,
		Title:   "Saved",
		Message: "Student added",
	})

	assert.Contains(t, out, "Saved: Student added")
}

func TestCalcNotificationModalWidth(t *testing.T) {
	assert.Equal(t, 60, calcNotificationModalWidth(80))
	assert.Equal(t, 130, calcNotificationModalWidth(200))
	assert.Equal(t, 46, calcNotificationModalWidth(50))
}
