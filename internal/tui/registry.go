package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/campus/internal/core/modal"
	"github.com/hay-kot/campus/internal/core/styles"
)

// Handlers are the callbacks a component uses to settle its entry. They
// are bound to one entry id, so a stale component can never close the
// entry that replaced it.
type Handlers struct {
	Close   func()
	Confirm func(payload any)
}

// Component is the live view of one modal entry. A component is created
// once per entry and kept while the entry is on the stack, so cursor
// positions and typed text survive a nested modal opening above it.
type Component interface {
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// cancelCapturer is implemented by components that sometimes need the
// cancel key themselves, for example to leave list filtering.
type cancelCapturer interface {
	CapturesCancel() bool
}

// textEntry is implemented by components with a focused text input.
// A printable cancel key, such as "q", is typed into it instead of
// closing the modal.
type textEntry interface {
	TakesText() bool
}

// propsReceiver is implemented by components that follow props updates
// made through UpdateProps while they are displayed.
type propsReceiver interface {
	SetProps(p modal.Props)
}

// Renderer builds the component for an entry.
type Renderer func(entry modal.Entry, h Handlers) Component

// Typed adapts a render function that takes the concrete props type of a
// kind. Props of any other type render the fallback instead of panicking.
func Typed[P modal.Props](fn func(props P, h Handlers) Component) Renderer {
	return func(entry modal.Entry, h Handlers) Component {
		props, ok := entry.Props.(P)
		if !ok {
			var want P
			return newFallback(entry.Kind, fmt.Sprintf("props %T, renderer expects %T", entry.Props, want), h)
		}
		return fn(props, h)
	}
}

// Registry maps each modal kind to its renderer.
type Registry struct {
	renderers map[modal.Kind]Renderer
}

func NewRegistry() *Registry {
	return &Registry{renderers: make(map[modal.Kind]Renderer)}
}

// Register sets the renderer for kind, replacing any previous one.
func (r *Registry) Register(kind modal.Kind, fn Renderer) {
	r.renderers[kind] = fn
}

// Has reports whether kind has a renderer.
func (r *Registry) Has(kind modal.Kind) bool {
	_, ok := r.renderers[kind]
	return ok
}

// Render returns the component for entry. Kinds without a renderer get a
// visible placeholder naming the kind.
func (r *Registry) Render(entry modal.Entry, h Handlers) Component {
	fn, ok := r.renderers[entry.Kind]
	if !ok {
		return newFallback(entry.Kind, "no renderer registered", h)
	}
	return fn(entry, h)
}

// fallback is shown for misconfigured kinds.
type fallback struct {
	kind   modal.Kind
	reason string
	h      Handlers
}

func newFallback(kind modal.Kind, reason string, h Handlers) *fallback {
	return &fallback{kind: kind, reason: reason, h: h}
}

func (f *fallback) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		f.h.Close()
	}
	return nil
}

func (f *fallback) View(_, _ int) string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.TextWarningStyle.Bold(true).Render(styles.IconNotifyWarning+" Unknown modal: "+f.kind.String()),
		"",
		styles.TextMutedStyle.Render(f.reason),
		"",
		styles.ModalHelpStyle.Render("enter/esc close"),
	)
	return styles.FallbackStyle.Render(content)
}
