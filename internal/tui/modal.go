package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hay-kot/campus/internal/core/modal"
	"github.com/hay-kot/campus/internal/tui/components"
)

// confirmModal renders the confirm, delete and logout kinds. Accepting
// confirms the entry with a nil payload, rejecting closes it.
type confirmModal struct {
	dialog *components.ConfirmDialog
	h      Handlers
}

func newConfirmModal(p modal.ConfirmProps, h Handlers) Component {
	d := components.NewConfirmDialog(p.Title, p.Message, p.ConfirmText, p.CancelText)
	d.Danger = p.Variant == modal.VariantDanger
	d.Warning = p.Variant == modal.VariantWarning
	return &confirmModal{dialog: d, h: h}
}

func newDeleteModal(p modal.DeleteConfirmProps, h Handlers) Component {
	msg := p.Message
	if msg == "" {
		msg = fmt.Sprintf("Delete %s %q? This action cannot be undone.", p.EntityType, p.EntityName)
	}
	d := components.NewConfirmDialog(p.Title, msg, p.ConfirmText, p.CancelText)
	d.Danger = true
	return &confirmModal{dialog: d, h: h}
}

func newLogoutModal(p modal.LogoutConfirmProps, h Handlers) Component {
	msg := "Sign out of campus?"
	if p.UserName != "" {
		msg = fmt.Sprintf("Sign out %s?", p.UserName)
	}
	d := components.NewConfirmDialog("Log Out", msg, "Log Out", "Stay")
	d.Warning = true
	return &confirmModal{dialog: d, h: h}
}

func (m *confirmModal) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.dialog.Update(key) {
	case components.ConfirmAccept:
		m.h.Confirm(nil)
	case components.ConfirmReject:
		m.h.Close()
	case components.ConfirmNone:
	}
	return nil
}

func (m *confirmModal) View(width, _ int) string {
	return m.dialog.View(width)
}
