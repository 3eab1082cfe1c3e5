package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/campus/internal/core/modal"
	"github.com/hay-kot/campus/internal/core/styles"
)

const toastWidth = 50

// dismissMsg is delivered by the auto-dismiss timer of a notice.
type dismissMsg struct {
	dismissal modal.Dismissal
}

// scheduleDismiss starts the timer for d. Sticky notices get no timer.
func scheduleDismiss(d modal.Dismissal) tea.Cmd {
	if !d.Auto() {
		return nil
	}
	return tea.Tick(d.After, func(time.Time) tea.Msg {
		return dismissMsg{dismissal: d}
	})
}

// toast renders the success, error, warning and info notices.
type toast struct {
	kind   modal.Kind
	notice modal.Notice
	h      Handlers
}

func noticeRenderer(kind modal.Kind) Renderer {
	return func(entry modal.Entry, h Handlers) Component {
		var n modal.Notice
		switch p := entry.Props.(type) {
		case modal.SuccessNotice:
			n = p.Notice
		case modal.ErrorNotice:
			n = p.Notice
		case modal.WarningNotice:
			n = p.Notice
		case modal.InfoNotice:
			n = p.Notice
		default:
			return newFallback(kind, "props are not a notice", h)
		}
		return &toast{kind: kind, notice: n, h: h}
	}
}

func (t *toast) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		t.h.Close()
	}
	return nil
}

func (t *toast) View(_, _ int) string {
	var icon string
	var style lipgloss.Style

	switch t.kind { //nolint:exhaustive // only notice kinds reach here
	case modal.KindSuccess:
		icon = styles.IconNotifySuccess
		style = styles.ToastSuccessStyle
	case modal.KindError:
		icon = styles.IconNotifyError
		style = styles.ToastErrorStyle
	case modal.KindWarning:
		icon = styles.IconNotifyWarning
		style = styles.ToastWarningStyle
	default:
		icon = styles.IconNotifyInfo
		style = styles.ToastInfoStyle
	}

	lines := []string{styles.TextForegroundBoldStyle.Render(icon + " " + t.notice.Title)}
	if t.notice.Message != "" {
		lines = append(lines, t.notice.Message)
	}
	return style.Width(toastWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
