package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/hay-kot/campus/internal/core/logging"
	"github.com/hay-kot/campus/internal/core/modal"
	"github.com/hay-kot/campus/internal/core/notify"
	"github.com/hay-kot/campus/internal/core/styles"
	tuinotify "github.com/hay-kot/campus/internal/tui/notify"
)

const (
	notifyModalWidthPct  = 65
	notifyModalMinWidth  = 60
	notifyModalMaxHeight = 30
	notifyModalMargin    = 4
	notifyModalChrome    = 6 // title + divider + help + spacing
)

// NotificationModal displays a scrollable history of every notice shown.
type NotificationModal struct {
	title    string
	bus      *tuinotify.Bus
	viewport viewport.Model
	logger   zerolog.Logger
	width    int
}

func newNotificationModal(bus *tuinotify.Bus) func(modal.NotificationHistoryProps, Handlers) Component {
	return func(p modal.NotificationHistoryProps, _ Handlers) Component {
		title := p.Title
		if title == "" {
			title = "Notifications"
		}
		return &NotificationModal{
			title:  title,
			bus:    bus,
			logger: logging.Component("notification-modal"),
		}
	}
}

func (m *NotificationModal) resize(width, height int) {
	if width == m.width && m.viewport.Height > 0 {
		return
	}
	modalWidth := calcNotificationModalWidth(width)
	modalHeight := min(height-notifyModalMargin, notifyModalMaxHeight)
	m.viewport = viewport.New(modalWidth-4, max(modalHeight-notifyModalChrome, 1))
	m.width = width
	m.refreshContent()
}

func (m *NotificationModal) refreshContent() {
	if m.bus == nil {
		m.viewport.SetContent(styles.TextMutedStyle.Render("No notifications"))
		return
	}

	history, err := m.bus.History()
	if err != nil {
		m.logger.Error().Err(err).Msg("failed to load notification history")
		m.viewport.SetContent(styles.TextErrorStyle.Render(fmt.Sprintf("failed to load notifications: %v", err)))
		return
	}

	if len(history) == 0 {
		m.viewport.SetContent(styles.TextMutedStyle.Render("No notifications"))
		return
	}

	var b strings.Builder
	for i, n := range history {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(formatNotification(n))
	}

	m.viewport.SetContent(b.String())
}

func formatNotification(n notify.Notification) string {
	ts := styles.TextMutedStyle.Render(n.CreatedAt.Format("15:04:05"))

	var icon string
	var msgStyle lipgloss.Style
	switch n.Level {
	case notify.LevelError:
		icon = styles.IconNotifyError
		msgStyle = styles.TextErrorStyle
	case notify.LevelWarning:
		icon = styles.IconNotifyWarning
		msgStyle = styles.TextWarningStyle
	case notify.LevelSuccess:
		icon = styles.IconNotifySuccess
		msgStyle = styles.TextSuccessStyle
	default:
		icon = styles.IconNotifyInfo
		msgStyle = styles.TextPrimaryStyle
	}

	text := n.Message
	if n.Title != "" {
		text = n.Title + ": " + n.Message
	}
	return fmt.Sprintf("%s %s %s", ts, icon, msgStyle.Render(text))
}

func (m *NotificationModal) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "j", "down":
		m.viewport.ScrollDown(1)
	case "k", "up":
		m.viewport.ScrollUp(1)
	case "D":
		if m.bus == nil {
			return nil
		}
		if err := m.bus.Clear(); err != nil {
			m.logger.Error().Err(err).Msg("failed to clear notifications")
		}
		m.refreshContent()
	}
	return nil
}

func (m *NotificationModal) View(width, height int) string {
	m.resize(width, height)
	modalWidth := calcNotificationModalWidth(width)

	scrollInfo := ""
	if m.viewport.TotalLineCount() > m.viewport.VisibleLineCount() {
		scrollInfo = styles.TextMutedStyle.Render(
			fmt.Sprintf(" (%.0f%%)", m.viewport.ScrollPercent()*100),
		)
	}

	divider := styles.TextSurfaceStyle.Render(strings.Repeat("─", max(modalWidth-6, 1)))
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(m.title+scrollInfo),
		divider,
		m.viewport.View(),
		styles.ModalHelpStyle.Render("[j/k] scroll  [D] clear all  [esc] close"),
	)

	return styles.ModalStyle.Width(modalWidth).Render(content)
}

func calcNotificationModalWidth(termWidth int) int {
	available := max(termWidth-notifyModalMargin, 1)
	target := termWidth * notifyModalWidthPct / 100
	return min(max(target, notifyModalMinWidth), available)
}
