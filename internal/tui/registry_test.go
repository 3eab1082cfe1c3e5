package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/campus/internal/core/modal"
)

func TestRegistry_unregistered_kind_renders_fallback(t *testing.T) {
	r := NewRegistry()
	spy := &handlerSpy{}

	c := r.Render(modal.Entry{Kind: modal.KindHelp, Props: modal.HelpProps{}}, spy.handlers())

	out := c.View(80, 24)
	assert.Contains(t, out, "Unknown modal: help")
	assert.Contains(t, out, "no renderer registered")

	c.Update(enterKey)
	assert.Equal(t, 1, spy.closed)
}

func TestRegistry_Register_and_Has(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.Has(modal.KindHelp))

	r.Register(modal.KindHelp, Typed(renderHelp))
	assert.True(t, r.Has(modal.KindHelp))

	c := r.Render(modal.Entry{Kind: modal.KindHelp, Props: modal.HelpProps{Title: "Shortcuts"}}, Handlers{})
	assert.Contains(t, c.View(80, 24), "Shortcuts")
}

func TestRegistry_Register_replaces(t *testing.T) {
	r := NewRegistry()
	r.Register(modal.KindHelp, Typed(renderHelp))
	r.Register(modal.KindHelp, func(e modal.Entry, h Handlers) Component {
		return newFallback(e.Kind, "replaced", h)
	})

	c := r.Render(modal.Entry{Kind: modal.KindHelp, Props: modal.HelpProps{}}, Handlers{})
	assert.Contains(t, c.View(80, 24), "replaced")
}

func TestTyped_props_mismatch_renders_fallback(t *testing.T) {
	r := NewRegistry()
	r.Register(modal.KindHelp, Typed(renderHelp))

	c := r.Render(modal.Entry{Kind: modal.KindHelp, Props: modal.LoadingProps{}}, Handlers{})

	out := c.View(80, 24)
	assert.Contains(t, out, "Unknown modal: help")
	assert.Contains(t, out, "renderer expects modal.HelpProps")
}

func TestFallback_ignores_other_keys(t *testing.T) {
	spy := &handlerSpy{}
	c := newFallback(modal.KindUnknown, "nope", spy.handlers())

	c.Update(keyRunes("y"))
	c.Update(spaceKey)

	assert.Equal(t, 0, spy.closed)
}
