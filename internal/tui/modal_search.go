package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/campus/internal/core/modal"
	"github.com/hay-kot/campus/internal/core/school"
	"github.com/hay-kot/campus/internal/core/styles"
)

const searchMaxHits = 12

var scopeTitles = map[school.HitKind]string{
	school.HitStudent: "students",
	school.HitTeacher: "teachers",
	school.HitClass:   "classes",
}

// Searcher ranks records for the advanced search modal.
type Searcher interface {
	Search(query string) []school.Hit
}

// searchModal is a live fuzzy search across people and classes. Enter
// confirms with the selected school.Hit.
type searchModal struct {
	scope  school.HitKind
	input  textinput.Model
	src    Searcher
	hits   []school.Hit
	cursor int
	h      Handlers
}

func advancedSearchRenderer(src Searcher) func(modal.AdvancedSearchProps, Handlers) Component {
	return func(p modal.AdvancedSearchProps, h Handlers) Component {
		ti := textinput.New()
		ti.Prompt = styles.IconSearch + " "
		ti.Placeholder = "name of a student, teacher or class"
		ti.Width = 44
		ti.PromptStyle = styles.TextPrimaryStyle
		ti.SetValue(p.Query)
		ti.Focus()

		m := &searchModal{scope: school.HitKind(p.Scope), input: ti, src: src, h: h}
		m.refresh()
		return m
	}
}

func (m *searchModal) refresh() {
	m.hits = m.hits[:0]
	if m.src == nil {
		return
	}
	for _, hit := range m.src.Search(m.input.Value()) {
		if m.scope != "" && hit.Kind != m.scope {
			continue
		}
		m.hits = append(m.hits, hit)
		if len(m.hits) == searchMaxHits {
			break
		}
	}
	m.cursor = min(m.cursor, max(len(m.hits)-1, 0))
}

func (m *searchModal) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "down", "ctrl+n", "tab":
			m.cursor = min(m.cursor+1, max(len(m.hits)-1, 0))
			return nil
		case "up", "ctrl+p", "shift+tab":
			m.cursor = max(m.cursor-1, 0)
			return nil
		case "enter":
			if len(m.hits) > 0 {
				m.h.Confirm(m.hits[m.cursor])
			}
			return nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.cursor = 0
		m.refresh()
	}
	return cmd
}

// TakesText is always true, the query input keeps focus.
func (m *searchModal) TakesText() bool { return true }

func hitIcon(k school.HitKind) string {
	switch k {
	case school.HitTeacher:
		return styles.IconTeacher
	case school.HitClass:
		return styles.IconSchool
	default:
		return styles.IconStudent
	}
}

func (m *searchModal) View(_, _ int) string {
	rows := make([]string, 0, len(m.hits))
	for i, hit := range m.hits {
		cursor := "  "
		label := styles.TextForegroundStyle.Render(hit.Label)
		if i == m.cursor {
			cursor = "> "
			label = styles.SelectItemSelectedStyle.Render(hit.Label)
		}
		kind := styles.TextMutedStyle.Render(fmt.Sprintf("%-8s", hit.Kind))
		rows = append(rows, cursor+hitIcon(hit.Kind)+" "+kind+label)
	}
	if len(rows) == 0 {
		rows = append(rows, styles.TextMutedStyle.Render("No matches"))
	}

	title := "Search"
	if label, ok := scopeTitles[m.scope]; ok {
		title += " " + label
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(title),
		"",
		m.input.View(),
		"",
		strings.Join(rows, "\n"),
		styles.ModalHelpStyle.Render("↑/↓ move  enter open  esc close"),
	)
	return styles.ModalStyle.Width(60).Render(content)
}
