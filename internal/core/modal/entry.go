package modal

import (
	"time"

	"github.com/google/uuid"
)

// EntryID identifies one activation of a modal. Ids are never reused, so
// timers and renderer handlers can tell whether the entry they were bound
// to is still on the stack.
type EntryID string

func newEntryID() EntryID {
	return EntryID(uuid.NewString())
}

// Entry is a snapshot of one activation record.
type Entry struct {
	ID        EntryID
	Kind      Kind
	Open      bool
	Props     Props
	OnClose   func()
	OnConfirm func(payload any)
	OpenedAt  time.Time
}

// IsZero reports whether e is the closed sentinel.
func (e Entry) IsZero() bool {
	return e.ID == ""
}

// record is the manager-owned activation. settled flips once the entry
// has been confirmed or closed so neither callback can run twice.
type record struct {
	Entry
	settled bool
}

func (r *record) settle() bool {
	if r.settled {
		return false
	}
	r.settled = true
	return true
}

// OpenOption configures the callbacks of an opened entry.
type OpenOption func(*Entry)

// WithOnClose sets the callback run when the entry is dismissed.
func WithOnClose(fn func()) OpenOption {
	return func(e *Entry) { e.OnClose = fn }
}

// WithOnConfirm sets the callback run when the entry is confirmed.
func WithOnConfirm(fn func(payload any)) OpenOption {
	return func(e *Entry) { e.OnConfirm = fn }
}

// Callbacks bundles both entry callbacks.
type Callbacks struct {
	OnClose   func()
	OnConfirm func(payload any)
}

// WithCallbacks sets both callbacks at once.
func WithCallbacks(cb Callbacks) OpenOption {
	return func(e *Entry) {
		e.OnClose = cb.OnClose
		e.OnConfirm = cb.OnConfirm
	}
}
