package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/campus/internal/core/modal"
)

func TestDefaultRegistry_covers_every_kind(t *testing.T) {
	r := DefaultRegistry(RendererEnv{Currency: "KES"})

	for _, k := range modal.Kinds() {
		if k == modal.KindUnknown {
			assert.False(t, r.Has(k), "unknown kind must not have a renderer")
			continue
		}
		assert.True(t, r.Has(k), "missing renderer for %s", k)
	}
}

func TestDefaultRegistry_unknown_kind_renders_fallback(t *testing.T) {
	stack := newTestStack()
	mm := NewModalManager(stack, DefaultRegistry(RendererEnv{}), "esc")

	stack.Open(modal.UnknownProps{Name: "mystery"})

	out := mm.Overlay("")
	assert.Contains(t, out, "Unknown modal: unknown")

	mm.HandleKey(enterKey)
	assert.False(t, mm.Active())
}

func TestDefaultRegistry_every_kind_views(t *testing.T) {
	r := DefaultRegistry(RendererEnv{Currency: "KES", FileRoot: t.TempDir()})

	samples := []modal.Props{
		modal.ConfirmProps{Title: "Sure?"},
		modal.DeleteConfirmProps{EntityType: "student", EntityName: "Amani"},
		modal.LogoutConfirmProps{UserName: "Admin"},
		modal.SuccessNotice{Notice: modal.Notice{Title: "Done"}},
		modal.NotificationHistoryProps{},
		modal.HelpProps{},
		modal.LoadingProps{Message: "Importing"},
		modal.SettingsProps{Theme: "tokyo-night", Themes: []string{"tokyo-night"}},
		modal.ChangePasswordProps{UserID: "usr-admin"},
		modal.DataExportProps{EntityType: "students"},
		modal.FilterProps{Field: "Status", Options: []string{"active"}},
		modal.AdvancedSearchProps{},
	}

	for _, p := range samples {
		t.Run(p.Kind().String(), func(t *testing.T) {
			c := r.Render(modal.Entry{Kind: p.Kind(), Props: p}, Handlers{})
			out := c.View(100, 40)
			assert.NotEmpty(t, out)
			assert.NotContains(t, out, "Unknown modal")
		})
	}
}
