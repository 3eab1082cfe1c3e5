package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/campus/internal/core/styles"
)

// ConfirmAction is the outcome of a key press in a ConfirmDialog.
type ConfirmAction int

const (
	ConfirmNone ConfirmAction = iota
	ConfirmAccept
	ConfirmReject
)

// ConfirmDialog is a two-button yes/no dialog.
type ConfirmDialog struct {
	Title       string
	Message     string
	ConfirmText string
	CancelText  string
	Danger      bool
	Warning     bool

	confirmSelected bool
}

// NewConfirmDialog returns a dialog with the confirm button selected.
func NewConfirmDialog(title, message, confirmText, cancelText string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:           title,
		Message:         message,
		ConfirmText:     confirmText,
		CancelText:      cancelText,
		confirmSelected: true,
	}
}

// ConfirmSelected returns true if the confirm button is selected.
func (d *ConfirmDialog) ConfirmSelected() bool {
	return d.confirmSelected
}

// Update handles a key press and reports what the user chose. The cancel
// key itself is handled by the caller.
func (d *ConfirmDialog) Update(msg tea.KeyMsg) ConfirmAction {
	switch msg.String() {
	case "left", "right", "h", "l", "tab", "shift+tab":
		d.confirmSelected = !d.confirmSelected
	case "y", "Y":
		return ConfirmAccept
	case "n", "N":
		return ConfirmReject
	case "enter":
		if d.confirmSelected {
			return ConfirmAccept
		}
		return ConfirmReject
	}
	return ConfirmNone
}

// View renders the dialog box.
func (d *ConfirmDialog) View(width int) string {
	selected := styles.ModalButtonSelectedStyle
	if d.Danger {
		selected = styles.ModalButtonDangerStyle
	}

	var confirmBtn, cancelBtn string
	if d.confirmSelected {
		confirmBtn = selected.Render(d.ConfirmText)
		cancelBtn = styles.ModalButtonStyle.Render(d.CancelText)
	} else {
		confirmBtn = styles.ModalButtonStyle.Render(d.ConfirmText)
		cancelBtn = styles.ModalButtonSelectedStyle.Render(d.CancelText)
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, confirmBtn, "  ", cancelBtn)
	buttonRow := lipgloss.NewStyle().MarginTop(1).Render(buttons)

	boxWidth := min(max(width/2, 40), max(width-4, 20))
	message := lipgloss.NewStyle().Width(boxWidth - 6).Render(d.Message)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(d.Title),
		"",
		message,
		buttonRow,
		styles.ModalHelpStyle.Render("←/→ select  enter choose  y/n  esc cancel"),
	)

	box := styles.ModalStyle
	switch {
	case d.Danger:
		box = styles.ModalDangerStyle
	case d.Warning:
		box = styles.ModalWarningStyle
	}
	return box.Render(content)
}
