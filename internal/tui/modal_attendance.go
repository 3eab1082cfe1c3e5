package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/campus/internal/core/modal"
	"github.com/hay-kot/campus/internal/core/school"
	"github.com/hay-kot/campus/internal/core/styles"
)

var attendanceCycle = []school.AttendanceStatus{school.Present, school.Late, school.Absent}

// attendanceModal is a register: one row per student, space cycles the
// mark and enter saves the whole register.
type attendanceModal struct {
	props  modal.MarkAttendanceProps
	marks  []school.AttendanceStatus
	cursor int
	h      Handlers
}

func renderMarkAttendance(p modal.MarkAttendanceProps, h Handlers) Component {
	marks := make([]school.AttendanceStatus, len(p.Students))
	for i := range marks {
		marks[i] = school.Present
	}
	return &attendanceModal{props: p, marks: marks, h: h}
}

func (m *attendanceModal) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "j", "down":
		m.cursor = min(m.cursor+1, max(len(m.marks)-1, 0))
	case "k", "up":
		m.cursor = max(m.cursor-1, 0)
	case " ", "space":
		if len(m.marks) > 0 {
			m.marks[m.cursor] = nextMark(m.marks[m.cursor])
		}
	case "p":
		m.set(school.Present)
	case "l":
		m.set(school.Late)
	case "a":
		m.set(school.Absent)
	case "A":
		for i := range m.marks {
			m.marks[i] = school.Present
		}
	case "enter":
		m.h.Confirm(m.result())
	}
	return nil
}

func (m *attendanceModal) set(s school.AttendanceStatus) {
	if len(m.marks) > 0 {
		m.marks[m.cursor] = s
	}
}

func nextMark(s school.AttendanceStatus) school.AttendanceStatus {
	for i, c := range attendanceCycle {
		if c == s {
			return attendanceCycle[(i+1)%len(attendanceCycle)]
		}
	}
	return school.Present
}

func (m *attendanceModal) result() AttendanceMarks {
	out := AttendanceMarks{
		ClassID: m.props.Class.ID,
		Date:    m.props.Date,
		Marks:   make(map[string]school.AttendanceStatus, len(m.marks)),
	}
	for i, s := range m.props.Students {
		out.Marks[s.ID] = m.marks[i]
	}
	return out
}

func markStyle(s school.AttendanceStatus) lipgloss.Style {
	switch s {
	case school.Absent:
		return styles.TextErrorStyle
	case school.Late:
		return styles.TextWarningStyle
	default:
		return styles.TextSuccessStyle
	}
}

func (m *attendanceModal) View(_, _ int) string {
	var counts [3]int
	rows := make([]string, 0, len(m.props.Students))
	for i, s := range m.props.Students {
		mark := m.marks[i]
		for j, c := range attendanceCycle {
			if c == mark {
				counts[j]++
			}
		}

		cursor := "  "
		name := styles.TextForegroundStyle.Render(s.FullName())
		if i == m.cursor {
			cursor = "> "
			name = styles.SelectItemSelectedStyle.Render(s.FullName())
		}
		badge := markStyle(mark).Render(fmt.Sprintf("%-8s", mark))
		rows = append(rows, cursor+badge+" "+name)
	}
	if len(rows) == 0 {
		rows = append(rows, styles.TextMutedStyle.Render("No students in this class"))
	}

	summary := styles.TextMutedStyle.Render(fmt.Sprintf(
		"present %d  late %d  absent %d", counts[0], counts[1], counts[2],
	))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render("Register - "+m.props.Class.Name),
		styles.TextMutedStyle.Render(m.props.Date.Format(dateLayout)),
		"",
		strings.Join(rows, "\n"),
		"",
		summary,
		styles.ModalHelpStyle.Render("space cycle  p/l/a set  A all present  enter save  esc cancel"),
	)
	return styles.ModalStyle.Render(content)
}
