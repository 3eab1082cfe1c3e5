package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/campus/internal/core/modal"
	"github.com/hay-kot/campus/internal/core/styles"
	"github.com/hay-kot/campus/internal/tui/components"
)

type helpModal struct {
	dialog *components.HelpDialog
	h      Handlers
}

func renderHelp(p modal.HelpProps, h Handlers) Component {
	sections := make([]components.HelpDialogSection, 0, len(p.Sections))
	for _, s := range p.Sections {
		entries := make([]components.HelpEntry, 0, len(s.Entries))
		for _, e := range s.Entries {
			entries = append(entries, components.HelpEntry{Key: e[0], Desc: e[1]})
		}
		sections = append(sections, components.HelpDialogSection{Title: s.Title, Entries: entries})
	}

	title := p.Title
	if title == "" {
		title = "Keyboard Shortcuts"
	}
	return &helpModal{dialog: components.NewHelpDialog(title, sections), h: h}
}

func (m *helpModal) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "?", "enter", "q":
			m.h.Close()
		}
	}
	return nil
}

func (m *helpModal) View(_, _ int) string {
	return m.dialog.View()
}

// loadingModal shows a spinner and, once progress is reported through
// UpdateProps, a progress bar. It cannot be dismissed with enter.
type loadingModal struct {
	props    modal.LoadingProps
	spinner  spinner.Model
	progress progress.Model
}

func renderLoading(p modal.LoadingProps, _ Handlers) Component {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.TextPrimaryStyle

	bar := progress.New(
		progress.WithGradient(string(styles.ColorPrimary), string(styles.ColorSecondary)),
		progress.WithWidth(36),
		progress.WithoutPercentage(),
	)

	return &loadingModal{props: p, spinner: s, progress: bar}
}

func (m *loadingModal) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *loadingModal) SetProps(p modal.Props) {
	if lp, ok := p.(modal.LoadingProps); ok {
		m.props = lp
	}
}

func (m *loadingModal) Update(msg tea.Msg) tea.Cmd {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)
		return cmd
	}
	return nil
}

func (m *loadingModal) View(_, _ int) string {
	msg := m.props.Message
	if msg == "" {
		msg = "Working..."
	}

	parts := []string{lipgloss.JoinHorizontal(lipgloss.Left, m.spinner.View(), " "+msg)}
	if m.props.Progress > 0 {
		pct := float64(min(m.props.Progress, 100)) / 100
		parts = append(parts, "", m.progress.ViewAs(pct)+" "+styles.TextMutedStyle.Render(fmt.Sprintf("%d%%", m.props.Progress)))
	}
	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
