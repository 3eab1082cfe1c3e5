package modal

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"dario.cat/mergo"
	"github.com/rs/zerolog"
)

var (
	// ErrNoActiveModal is returned by operations that target the active
	// entry while the stack is closed.
	ErrNoActiveModal = errors.New("no active modal")
	// ErrKindMismatch is returned when a props patch is for a different
	// kind than the active entry.
	ErrKindMismatch = errors.New("props kind does not match active modal")
)

// State is the coarse state of the stack.
type State int

const (
	StateClosed State = iota
	StateActive
	StateActiveWithSuspended
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateActive:
		return "active"
	case StateActiveWithSuspended:
		return "active-with-suspended"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Op names the operation behind a Transition.
type Op string

const (
	OpOpen    Op = "open"
	OpClose   Op = "close"
	OpConfirm Op = "confirm"
	OpDiscard Op = "discard" // a suspended entry was closed in place
	OpUpdate  Op = "update"
)

// Transition describes one change of the stack, delivered to observers
// after the change has been applied.
type Transition struct {
	Op      Op
	Subject Entry // the entry the operation applied to
	Current Entry // the active entry afterwards, zero when closed
	Depth   int
}

// Manager holds the active modal and the history of suspended ones.
//
// A Manager is not safe for concurrent use. The TUI owns the only
// instance and calls it from the Bubble Tea Update loop; anything running
// on another goroutine must send a message instead of touching it.
type Manager struct {
	current   *record
	history   History[*record]
	observers []func(Transition)
	logger    zerolog.Logger
	now       func() time.Time
}

// NewManager returns a closed stack.
func NewManager(logger zerolog.Logger) *Manager {
	return &Manager{
		logger: logger,
		now:    time.Now,
	}
}

// Subscribe registers fn to be called after every transition.
func (m *Manager) Subscribe(fn func(Transition)) {
	m.observers = append(m.observers, fn)
}

// Open activates a new entry for props. An entry that is already active
// is suspended onto the history with its props and callbacks untouched.
func (m *Manager) Open(props Props, opts ...OpenOption) EntryID {
	e := Entry{
		ID:       newEntryID(),
		Kind:     props.Kind(),
		Open:     true,
		Props:    props,
		OpenedAt: m.now(),
	}
	for _, opt := range opts {
		opt(&e)
	}

	if m.current != nil {
		m.history.Push(m.current)
	}
	m.current = &record{Entry: e}

	m.logger.Debug().
		Str("entry_id", string(e.ID)).
		Stringer("kind", e.Kind).
		Int("depth", m.Depth()).
		Msg("modal opened")

	m.emit(OpOpen, e)
	return e.ID
}

// Close dismisses the active entry, running its OnClose callback, and
// restores the most recently suspended entry if there is one. Closing an
// already closed stack does nothing.
func (m *Manager) Close() {
	if m.current == nil {
		return
	}
	m.finish(m.current, OpClose, nil)
}

// Confirm settles the active entry through its OnConfirm callback and
// removes it like Close, without running OnClose.
func (m *Manager) Confirm(payload any) {
	if m.current == nil {
		return
	}
	m.finish(m.current, OpConfirm, payload)
}

// CloseEntry closes the entry with the given id. The active entry is
// closed as with Close; a suspended entry is removed from the history in
// place. It reports false if no such entry is on the stack.
func (m *Manager) CloseEntry(id EntryID) bool {
	if m.current != nil && m.current.ID == id {
		m.finish(m.current, OpClose, nil)
		return true
	}

	rec, ok := m.history.Remove(func(r *record) bool { return r.ID == id })
	if !ok {
		return false
	}

	if rec.settle() && rec.OnClose != nil {
		rec.OnClose()
	}

	m.logger.Debug().
		Str("entry_id", string(id)).
		Stringer("kind", rec.Kind).
		Msg("suspended modal discarded")

	m.emit(OpDiscard, rec.Entry)
	return true
}

// ConfirmEntry confirms the entry with the given id if it is active.
func (m *Manager) ConfirmEntry(id EntryID, payload any) bool {
	if m.current == nil || m.current.ID != id {
		return false
	}
	m.finish(m.current, OpConfirm, payload)
	return true
}

// finish detaches rec, restores history and then runs the callback for
// op. Callbacks observe the stack after the entry is gone, so they may
// open another modal safely.
func (m *Manager) finish(rec *record, op Op, payload any) {
	if prev, ok := m.history.Pop(); ok {
		m.current = prev
	} else {
		m.current = nil
	}

	m.logger.Debug().
		Str("entry_id", string(rec.ID)).
		Stringer("kind", rec.Kind).
		Str("op", string(op)).
		Int("depth", m.Depth()).
		Msg("modal finished")

	if rec.settle() {
		switch op { //nolint:exhaustive // only settling ops reach here
		case OpConfirm:
			if rec.OnConfirm != nil {
				rec.OnConfirm(payload)
			}
		case OpClose:
			if rec.OnClose != nil {
				rec.OnClose()
			}
		}
	}

	closed := rec.Entry
	closed.Open = false
	m.emit(op, closed)
}

// UpdateProps merges the non-zero fields of partial into the active
// entry's props. Fields left at their zero value keep their current
// value; use Accessor.Update to clear a field.
func (m *Manager) UpdateProps(partial Props) error {
	if m.current == nil {
		return ErrNoActiveModal
	}
	if partial.Kind() != m.current.Kind {
		return fmt.Errorf("%w: active %s, got %s", ErrKindMismatch, m.current.Kind, partial.Kind())
	}

	merged, err := mergeProps(m.current.Props, partial)
	if err != nil {
		return fmt.Errorf("merge %s props: %w", m.current.Kind, err)
	}
	m.current.Props = merged

	m.emit(OpUpdate, m.current.Entry)
	return nil
}

// replaceProps swaps the active props wholesale.
func (m *Manager) replaceProps(props Props) error {
	if m.current == nil {
		return ErrNoActiveModal
	}
	if props.Kind() != m.current.Kind {
		return fmt.Errorf("%w: active %s, got %s", ErrKindMismatch, m.current.Kind, props.Kind())
	}
	m.current.Props = props
	m.emit(OpUpdate, m.current.Entry)
	return nil
}

func mergeProps(dst, partial Props) (Props, error) {
	ptr := reflect.New(reflect.TypeOf(dst))
	ptr.Elem().Set(reflect.ValueOf(dst))

	if err := mergo.Merge(ptr.Interface(), partial, mergo.WithOverride, mergo.WithTransformers(propsTransformers{})); err != nil {
		return nil, err
	}

	merged, ok := ptr.Elem().Interface().(Props)
	if !ok {
		return nil, fmt.Errorf("merged value %T is not Props", ptr.Elem().Interface())
	}
	return merged, nil
}

var timeType = reflect.TypeOf(time.Time{})

// propsTransformers adjust mergo for props fields.
//
// A zero time.Time in a patch keeps the current value; mergo treats
// structs without exported fields as set. A non-nil pointer replaces the
// current pointer instead of being merged into the record it points at,
// which belongs to the caller and to earlier snapshots of the entry.
type propsTransformers struct{}

func (propsTransformers) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	switch {
	case typ == timeType:
		return func(dst, src reflect.Value) error {
			if dst.CanSet() && !src.Interface().(time.Time).IsZero() {
				dst.Set(src)
			}
			return nil
		}
	case typ.Kind() == reflect.Pointer:
		return func(dst, src reflect.Value) error {
			if dst.CanSet() && !src.IsNil() {
				dst.Set(src)
			}
			return nil
		}
	}
	return nil
}

// IsOpen reports whether the active entry is of the given kind. Suspended
// entries are never open.
func (m *Manager) IsOpen(kind Kind) bool {
	return m.current != nil && m.current.Open && m.current.Kind == kind
}

// Current returns the active entry, or the zero Entry when closed.
func (m *Manager) Current() Entry {
	if m.current == nil {
		return Entry{}
	}
	return m.current.Entry
}

// Depth returns the number of entries on the stack, active included.
func (m *Manager) Depth() int {
	if m.current == nil {
		return 0
	}
	return m.history.Len() + 1
}

// History returns the suspended entries, oldest first.
func (m *Manager) History() []Entry {
	recs := m.history.Items()
	out := make([]Entry, len(recs))
	for i, r := range recs {
		out[i] = r.Entry
	}
	return out
}

// State returns the coarse stack state.
func (m *Manager) State() State {
	switch {
	case m.current == nil:
		return StateClosed
	case m.history.Len() == 0:
		return StateActive
	default:
		return StateActiveWithSuspended
	}
}

// Reset discards every entry without running callbacks. The provider
// calls it when the program shuts down.
func (m *Manager) Reset() {
	m.current = nil
	m.history.Clear()
}

func (m *Manager) emit(op Op, subject Entry) {
	if len(m.observers) == 0 {
		return
	}
	t := Transition{
		Op:      op,
		Subject: subject,
		Current: m.Current(),
		Depth:   m.Depth(),
	}
	for _, fn := range m.observers {
		fn(t)
	}
}
