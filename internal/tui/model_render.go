package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/hay-kot/campus/internal/core/school"
	"github.com/hay-kot/campus/internal/core/styles"
)

// View renders the dashboard with the active modal drawn over it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	header := m.renderHeader(w)
	status := m.renderStatusBar(w)
	bodyHeight := max(h-lipgloss.Height(header)-lipgloss.Height(status)-2, 1)
	body := lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(m.renderBody(w, bodyHeight))

	divider := styles.DividerStyle.Render(strings.Repeat("─", w))
	mainView := lipgloss.JoinVertical(lipgloss.Left, divider, header, divider, body, status)

	return m.modals.Overlay(mainView)
}

func (m Model) renderHeader(width int) string {
	renderTab := func(label string, view ViewType) string {
		if m.view == view {
			return styles.TextPrimaryBoldStyle.Render(label)
		}
		return styles.TextMutedStyle.Render(label)
	}

	tabs := strings.Join([]string{
		renderTab("Students", ViewStudents),
		renderTab("Classes", ViewClasses),
		renderTab("Events", ViewEvents),
	}, " | ")
	if len(m.statusFilter) > 0 {
		tabs = lipgloss.JoinHorizontal(lipgloss.Left, tabs, "  ", styles.TextPrimaryBoldStyle.Render("["+strings.Join(m.statusFilter, ",")+"]"))
	}

	branding := styles.TextPrimaryBoldStyle.Render(styles.IconSchool + " Campus")
	if v := m.build.Version; v != "" {
		branding += styles.TextMutedStyle.Render(" " + v)
	}
	spacer := strings.Repeat(" ", max(width-lipgloss.Width(tabs)-lipgloss.Width(branding)-2, 1))
	return " " + tabs + spacer + branding + " "
}

func (m Model) renderBody(width, height int) string {
	switch m.view {
	case ViewClasses:
		return m.renderClasses(width, height)
	case ViewEvents:
		return m.renderEvents(width, height)
	default:
		return m.renderStudents(width, height)
	}
}

// window returns the slice bounds of the rows visible around the cursor.
func (m Model) window(total, height int) (int, int) {
	visible := max(height-1, 1) // header row
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	return start, min(start+visible, total)
}

func (m Model) renderRows(width, height int, header string, rows []string) string {
	if len(rows) == 0 {
		return styles.TableHeaderStyle.Render(header) + "\n" + styles.TextMutedStyle.Render("  nothing to show")
	}

	start, end := m.window(len(rows), height)
	lines := []string{styles.TableHeaderStyle.Render(header)}
	for i := start; i < end; i++ {
		row := rows[i]
		if pad := width - 2 - lipgloss.Width(row); pad > 0 {
			row += strings.Repeat(" ", pad)
		}
		if i == m.cursor {
			lines = append(lines, styles.RowSelectedStyle.Render(row))
		} else {
			lines = append(lines, styles.RowStyle.Render(row))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) className(id string) string {
	for _, c := range m.classes {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}

func (m Model) renderStudents(width, height int) string {
	const format = "%-24s %-10s %-10s %14s"
	rows := make([]string, 0, len(m.students))
	for _, s := range m.students {
		balance := money(m.cfg.Currency, m.dir.Outstanding(s.ID))
		rows = append(rows, fmt.Sprintf(format, truncate(s.FullName(), 24), truncate(m.className(s.ClassID), 10), s.Status, balance))
	}
	return m.renderRows(width, height, fmt.Sprintf(format, "Name", "Class", "Status", "Balance"), rows)
}

func (m Model) renderClasses(width, height int) string {
	const format = "%-12s %-6s %-20s %8s"
	rows := make([]string, 0, len(m.classes))
	for _, c := range m.classes {
		teacher := c.TeacherID
		if t, err := m.dir.Teacher(c.TeacherID); err == nil {
			teacher = t.Name
		}
		size := m.dir.Students(school.StudentQuery{ClassID: c.ID, Limit: 1}).Total
		rows = append(rows, fmt.Sprintf(format, truncate(c.Name, 12), c.Room, truncate(teacher, 20), fmt.Sprintf("%d/%d", size, c.Capacity)))
	}
	return m.renderRows(width, height, fmt.Sprintf(format, "Class", "Room", "Teacher", "Students"), rows)
}

func (m Model) renderEvents(width, height int) string {
	const format = "%-30s %-16s %s"
	rows := make([]string, 0, len(m.events))
	for _, e := range m.events {
		rows = append(rows, fmt.Sprintf(format, truncate(e.Title, 30), e.Start.Format(dateLayout), humanize.Time(e.Start)))
	}
	return m.renderRows(width, height, fmt.Sprintf(format, "Event", "Date", "When"), rows)
}

func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:max(n-1, 0)]) + "…"
}

func (m Model) renderStatusBar(width int) string {
	parts := []string{
		fmt.Sprintf("%d students", len(m.students)),
		m.user.Name,
	}
	if m.bus != nil {
		if n := m.bus.Count(); n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", styles.IconNotifyInfo, n))
		}
	}
	if depth := m.stack.Depth(); depth > 1 {
		parts = append(parts, fmt.Sprintf("%d dialogs", depth))
	}

	left := strings.Join(parts, " "+iconDot+" ")
	right := styles.KeyStyle.Render("?") + styles.TextMutedStyle.Render(" help  ") +
		styles.KeyStyle.Render("q") + styles.TextMutedStyle.Render(" quit")
	gap := strings.Repeat(" ", max(width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1))
	return styles.StatusBarStyle.Render(left + gap + right)
}
