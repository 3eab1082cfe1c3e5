package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/campus/internal/core/modal"
)

func TestHelpModal_renders_sections(t *testing.T) {
	spy := &handlerSpy{}
	c := renderHelp(modal.HelpProps{Sections: []modal.HelpSection{
		{Title: "Records", Entries: [][2]string{{"a", "add student"}}},
	}}, spy.handlers())

	out := c.View(100, 40)
	assert.Contains(t, out, "Keyboard Shortcuts")
	assert.Contains(t, out, "Records")
	assert.Contains(t, out, "add student")

	c.Update(keyRunes("x"))
	assert.Equal(t, 0, spy.closed)

	c.Update(keyRunes("?"))
	assert.Equal(t, 1, spy.closed)
}

func TestLoadingModal_progress(t *testing.T) {
	c := renderLoading(modal.LoadingProps{}, Handlers{})

	out := c.View(100, 40)
	assert.Contains(t, out, "Working...")
	assert.NotContains(t, out, "%")

	r, ok := c.(propsReceiver)
	require.True(t, ok)
	r.SetProps(modal.LoadingProps{Message: "Importing", Progress: 75})

	out = c.View(100, 40)
	assert.Contains(t, out, "Importing")
	assert.Contains(t, out, "75%")
}

func TestLoadingModal_ignores_other_props(t *testing.T) {
	c := renderLoading(modal.LoadingProps{Message: "Exporting"}, Handlers{})

	c.(propsReceiver).SetProps(modal.HelpProps{})

	assert.Contains(t, c.View(100, 40), "Exporting")
}

func TestLoadingModal_keys_do_not_close(t *testing.T) {
	spy := &handlerSpy{}
	c := renderLoading(modal.LoadingProps{}, spy.handlers())

	c.Update(enterKey)

	assert.Equal(t, 0, spy.closed)
}

func TestLoadingModal_Init_ticks(t *testing.T) {
	c := renderLoading(modal.LoadingProps{}, Handlers{})

	starter, ok := c.(interface{ Init() tea.Cmd })
	require.True(t, ok)
	assert.NotNil(t, starter.Init())
}

func TestConfirmModal_accept_and_reject(t *testing.T) {
	t.Run("y confirms", func(t *testing.T) {
		spy := &handlerSpy{}
		c := newConfirmModal(modal.ConfirmProps{Title: "Publish results?", Variant: modal.VariantWarning}, spy.handlers())

		assert.Contains(t, c.View(80, 24), "Publish results?")

		c.Update(keyRunes("y"))
		assert.Equal(t, []any{nil}, spy.confirmed)
	})

	t.Run("n closes", func(t *testing.T) {
		spy := &handlerSpy{}
		c := newConfirmModal(modal.ConfirmProps{Title: "Publish results?"}, spy.handlers())

		c.Update(keyRunes("n"))
		assert.Equal(t, 1, spy.closed)
		assert.Empty(t, spy.confirmed)
	})

	t.Run("non key messages ignored", func(t *testing.T) {
		spy := &handlerSpy{}
		c := newConfirmModal(modal.ConfirmProps{}, spy.handlers())

		assert.Nil(t, c.Update(struct{}{}))
		assert.Equal(t, 0, spy.closed)
	})
}

func TestDeleteModal_default_message(t *testing.T) {
	c := newDeleteModal(modal.DeleteConfirmProps{Title: "Delete", EntityType: "student", EntityName: "Amani Otieno"}, Handlers{})

	assert.Contains(t, c.View(100, 24), `Delete student "Amani Otieno"?`)
}

func TestLogoutModal_names_user(t *testing.T) {
	c := newLogoutModal(modal.LogoutConfirmProps{UserName: "Admin"}, Handlers{})

	out := c.View(80, 24)
	assert.Contains(t, out, "Log Out")
	assert.Contains(t, out, "Sign out Admin?")
}
