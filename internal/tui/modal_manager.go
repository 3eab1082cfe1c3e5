package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/hay-kot/campus/internal/core/logging"
	"github.com/hay-kot/campus/internal/core/modal"
	"github.com/hay-kot/campus/internal/tui/components"
)

// ModalManager owns the live component of every entry on the modal stack
// and draws the active one over the background. It is the only place
// that turns stack entries into pixels.
//
// OnConfirm and OnClose callbacks run synchronously inside Update, so
// they cannot return commands. They hand follow-up work to Defer and the
// model collects it with Drain after routing each message.
type ModalManager struct {
	stack      *modal.Manager
	registry   *Registry
	components map[modal.EntryID]Component
	deferred   []tea.Cmd
	cancelKey  string
	logger     zerolog.Logger

	// Sizing
	width, height int
}

// NewModalManager creates a manager drawing the entries of stack with
// the renderers in registry.
func NewModalManager(stack *modal.Manager, registry *Registry, cancelKey string) *ModalManager {
	if cancelKey == "" {
		cancelKey = "esc"
	}

	mm := &ModalManager{
		stack:      stack,
		registry:   registry,
		components: make(map[modal.EntryID]Component),
		cancelKey:  cancelKey,
		logger:     logging.Component("modal-manager"),
	}
	stack.Subscribe(mm.onTransition)
	return mm
}

// SetSize updates the available dimensions for modal rendering.
func (mm *ModalManager) SetSize(w, h int) {
	mm.width = w
	mm.height = h
}

// Active reports whether a modal is on screen.
func (mm *ModalManager) Active() bool {
	return !mm.stack.Current().IsZero()
}

// Defer queues cmd to run after the current message is handled.
func (mm *ModalManager) Defer(cmd tea.Cmd) {
	if cmd != nil {
		mm.deferred = append(mm.deferred, cmd)
	}
}

// Drain returns every deferred command and clears the queue.
func (mm *ModalManager) Drain() tea.Cmd {
	if len(mm.deferred) == 0 {
		return nil
	}
	cmds := mm.deferred
	mm.deferred = nil
	return tea.Batch(cmds...)
}

// HandleKey routes a key press to the active modal. The cancel key closes
// the modal unless its component wants the key itself.
func (mm *ModalManager) HandleKey(msg tea.KeyMsg) tea.Cmd {
	entry := mm.stack.Current()
	if entry.IsZero() {
		return nil
	}

	comp := mm.component(entry)
	if msg.String() == mm.cancelKey && !capturesCancel(comp, msg) {
		mm.logger.Debug().
			Str("entry_id", string(entry.ID)).
			Stringer("kind", entry.Kind).
			Msg("cancel key closed modal")
		mm.stack.CloseEntry(entry.ID)
		return nil
	}

	return comp.Update(msg)
}

// capturesCancel reports whether comp wants the cancel key msg itself.
func capturesCancel(comp Component, msg tea.KeyMsg) bool {
	if c, ok := comp.(cancelCapturer); ok && c.CapturesCancel() {
		return true
	}
	printable := (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && !msg.Alt
	if t, ok := comp.(textEntry); ok && printable {
		return t.TakesText()
	}
	return false
}

// Update forwards a non-key message, such as a spinner tick, to the
// active component.
func (mm *ModalManager) Update(msg tea.Msg) tea.Cmd {
	entry := mm.stack.Current()
	if entry.IsZero() {
		return nil
	}
	return mm.component(entry).Update(msg)
}

// Overlay draws the active modal over bg. Notices appear as a toast in
// the lower right corner, everything else is centered.
func (mm *ModalManager) Overlay(bg string) string {
	entry := mm.stack.Current()
	if entry.IsZero() {
		return bg
	}

	w, h := mm.width, mm.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	fg := mm.component(entry).View(w, h)

	pos := components.Center
	if entry.Kind.IsNotice() {
		pos = components.BottomRight
	}
	return components.Overlay(bg, fg, w, h, pos)
}

func (mm *ModalManager) component(entry modal.Entry) Component {
	if c, ok := mm.components[entry.ID]; ok {
		return c
	}

	id := entry.ID
	c := mm.registry.Render(entry, Handlers{
		Close:   func() { mm.stack.CloseEntry(id) },
		Confirm: func(payload any) { mm.stack.ConfirmEntry(id, payload) },
	})
	mm.components[id] = c
	return c
}

// Init returns the start command of the active component, if it has one.
// Spinners need a first tick before they animate.
func (mm *ModalManager) Init() tea.Cmd {
	entry := mm.stack.Current()
	if entry.IsZero() {
		return nil
	}
	if c, ok := mm.component(entry).(interface{ Init() tea.Cmd }); ok {
		return c.Init()
	}
	return nil
}

func (mm *ModalManager) onTransition(t modal.Transition) {
	switch t.Op {
	case modal.OpDiscard:
		delete(mm.components, t.Subject.ID)
	case modal.OpClose, modal.OpConfirm:
		delete(mm.components, t.Subject.ID)
		// a restored entry may have a spinner that stopped while suspended
		mm.Defer(mm.Init())
	case modal.OpUpdate:
		if c, ok := mm.components[t.Subject.ID].(propsReceiver); ok {
			c.SetProps(t.Subject.Props)
		}
	case modal.OpOpen:
		mm.Defer(mm.Init())
	}
}
